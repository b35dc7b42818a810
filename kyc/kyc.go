// SPDX-License-Identifier: ice License 1.0

package kyc

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/ice-blockchain/swan-kyc/kyc/internal"
	"github.com/ice-blockchain/swan-kyc/kyc/internal/swan"
	appcfg "github.com/ice-blockchain/wintr/config"
	"github.com/ice-blockchain/wintr/log"
)

func New() Client {
	var cfg Config
	appcfg.MustLoadFromKey(applicationYamlKey, &cfg)

	return &client{client: swan.New(&cfg.Swan)}
}

// NewClient builds a client for baseURL, or for DefaultBaseURL when it is empty.
func NewClient(baseURL string) Client {
	var cfg Config
	cfg.Swan.Swan.BaseURL = baseURL

	return &client{client: swan.New(&cfg.Swan)}
}

func (c *client) Available(ctx context.Context) error {
	return errors.Wrap(c.client.Available(ctx), "kyc service availability check failed")
}

func (c *client) SubmitKYC(ctx context.Context, payload *KYCRequest) *KYCResponse {
	if payload == nil {
		payload = new(KYCRequest)
	}
	body, err := c.client.Submit(ctx, &internal.Submission{
		IDImage: payload.IDImage,
		Selfie:  payload.Sefile,
		Email:   payload.Email,
	})
	if err != nil {
		log.Error(errors.Wrapf(err, "kyc submission failed for email:%v", payload.Email))

		return failedResponse(err)
	}

	return parseResponse(body)
}

func failedResponse(err error) *KYCResponse {
	resp := &KYCResponse{Message: FailedSubmissionMessage}
	var remoteErr *internal.RemoteError
	if !errors.As(err, &remoteErr) || len(remoteErr.Body) == 0 {
		return resp
	}
	resp.Data = decodeOpaque(remoteErr.Body)
	if body, isObject := resp.Data.(map[string]any); isObject {
		if msg, isText := body[remoteMessageKey].(string); isText && msg != "" {
			resp.Message = msg
		}
	}

	return resp
}

// Anything that isn't a json object is handed back in Data, untouched.
func parseResponse(body []byte) *KYCResponse {
	var resp KYCResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return &KYCResponse{Data: decodeOpaque(body)}
	}

	return &resp
}

func decodeOpaque(body []byte) any {
	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		return string(body)
	}

	return data
}
