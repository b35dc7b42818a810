// SPDX-License-Identifier: ice License 1.0

package kyc

import (
	"context"

	"github.com/ice-blockchain/swan-kyc/kyc/internal"
	"github.com/ice-blockchain/swan-kyc/kyc/internal/swan"
)

// Public API.

type (
	File   = internal.File
	Config struct {
		Swan swan.Config `mapstructure:",squash"` //nolint:tagliatelle // .
	}
	KYCRequest struct {
		IDImage *File
		// Sefile is the selfie. It is sent as the `selfile` part.
		Sefile  *File
		Email   string
	}
	// KYCResponse is the answer of the kyc service, as is. Data is opaque.
	KYCResponse struct {
		Data       any     `json:"data,omitempty"`
		Message    string  `json:"message,omitempty"`
		Error      string  `json:"error,omitempty"`
		Similarity float64 `json:"similarity,omitempty"`
		Success    bool    `json:"success"`
		Verified   bool    `json:"verified,omitempty"`
	}
	Client interface {
		// SubmitKYC never fails: every failure is reported as a response with Success == false.
		SubmitKYC(ctx context.Context, payload *KYCRequest) *KYCResponse
		Available(ctx context.Context) error
	}
)

const (
	DefaultBaseURL          = swan.DefaultBaseURL
	FailedSubmissionMessage = "KYC submission failed"
)

//nolint:grouper // .
var ErrNotAvailable = internal.ErrNotAvailable

// Private API.

type (
	client struct {
		client internalClient
	}
	internalClient = internal.Client
)

const (
	applicationYamlKey = "kyc"
	remoteMessageKey   = "message"
)
