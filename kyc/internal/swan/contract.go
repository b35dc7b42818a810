// SPDX-License-Identifier: ice License 1.0

package swan

import (
	"github.com/imroc/req/v3"
	"github.com/pkg/errors"
)

// Public API.

type (
	Config struct {
		Swan struct {
			BaseURL             string `yaml:"baseUrl"`
			UserAgent           string `yaml:"userAgent"`
			MaxResponseBodySize int64  `yaml:"maxResponseBodySize"`
		} `yaml:"swan"`
	}
)

const (
	DefaultBaseURL = "https://aws-kyc-verification.onrender.com"
)

// Private API.

type (
	swan struct {
		client *req.Client
		cfg    *Config
	}
	healthResponse struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
)

const (
	submitPath = "/kyc"
	healthPath = "/health"

	// Part names are the wire contract of the remote service, `selfile` included.
	emailField   = "email"
	idImageField = "id_image"
	selfieField  = "selfile"

	defaultIDImageFileName = "id_image.jpeg"
	defaultSelfieFileName  = "selfie.jpeg"

	requestIDHeader = "X-Request-Id"
	healthyStatus   = "healthy"

	defaultMaxResponseBodySize = 1 << 20
)

var ( //nolint:gofumpt // .
	errResponseTooLarge = errors.New("response body too large")
)
