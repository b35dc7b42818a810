// SPDX-License-Identifier: ice License 1.0

package swan

import (
	"context"
	"io"
	"net/http"
	"strings"

	"dario.cat/mergo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/imroc/req/v3"
	"github.com/pkg/errors"

	"github.com/ice-blockchain/swan-kyc/kyc/internal"
	"github.com/ice-blockchain/wintr/log"
)

func New(cfg *Config) internal.Client {
	if cfg == nil {
		cfg = new(Config)
	}
	if err := mergo.Merge(cfg, defaultConfig()); err != nil {
		log.Panic(errors.Wrapf(err, "failed to merge default config into %#v", cfg))
	}
	cfg.Swan.BaseURL, _ = strings.CutSuffix(cfg.Swan.BaseURL, "/")
	client := req.C().
		SetBaseURL(cfg.Swan.BaseURL).
		SetJsonMarshal(json.Marshal).
		SetJsonUnmarshal(json.Unmarshal).
		DisableAutoReadResponse()
	if cfg.Swan.UserAgent != "" {
		client.SetUserAgent(cfg.Swan.UserAgent)
	}

	return &swan{
		client: client,
		cfg:    cfg,
	}
}

func defaultConfig() Config {
	var cfg Config
	cfg.Swan.BaseURL = DefaultBaseURL
	cfg.Swan.MaxResponseBodySize = defaultMaxResponseBodySize

	return cfg
}

func (s *swan) Available(ctx context.Context) error {
	if resp, err := s.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, uuid.NewString()).
		Get(healthPath); err != nil {
		return errors.Wrapf(err, "failed to check availability of kyc service at %v", s.cfg.Swan.BaseURL)
	} else if data, err2 := s.readBody(resp); err2 != nil {
		return errors.Wrapf(err2, "failed to read body of availability of kyc service")
	} else if statusCode := resp.GetStatusCode(); statusCode != http.StatusOK {
		return errors.Wrapf(internal.ErrNotAvailable, "[%v]kyc service at %v is unhealthy", statusCode, s.cfg.Swan.BaseURL)
	} else { //nolint:revive // .
		return s.isHealthy(data)
	}
}

func (s *swan) isHealthy(data []byte) error {
	var health healthResponse
	if err := json.Unmarshal(data, &health); err != nil {
		return errors.Wrapf(err, "failed to decode %v into health response", string(data))
	}
	if !strings.EqualFold(health.Status, healthyStatus) {
		return errors.Wrapf(internal.ErrNotAvailable, "kyc service at %v reported status `%v`", s.cfg.Swan.BaseURL, health.Status)
	}

	return nil
}

func (s *swan) Submit(ctx context.Context, sub *internal.Submission) ([]byte, error) {
	requestID := uuid.NewString()
	idImage, err := fileContent(sub.IDImage)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %v for requestID:%v", idImageField, requestID)
	}
	selfie, err := fileContent(sub.Selfie)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %v for requestID:%v", selfieField, requestID)
	}
	if resp, err := s.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID).
		SetFormData(map[string]string{emailField: sub.Email}).
		SetFileBytes(idImageField, fileName(sub.IDImage, defaultIDImageFileName), idImage).
		SetFileBytes(selfieField, fileName(sub.Selfie, defaultSelfieFileName), selfie).
		Post(submitPath); err != nil {
		return nil, errors.Wrapf(err, "failed to submit kyc for requestID:%v", requestID)
	} else if body, err2 := s.readBody(resp); err2 != nil {
		return nil, errors.Wrapf(err2, "failed to read body of kyc submission for requestID:%v", requestID)
	} else if statusCode := resp.GetStatusCode(); statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, errors.Wrapf(&internal.RemoteError{Body: body, StatusCode: statusCode}, "kyc submission rejected for requestID:%v", requestID)
	} else { //nolint:revive // .
		return body, nil
	}
}

func (s *swan) readBody(resp *req.Response) ([]byte, error) {
	if resp.Response == nil || resp.Body == nil {
		return nil, nil
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, s.cfg.Swan.MaxResponseBodySize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	if int64(len(body)) > s.cfg.Swan.MaxResponseBodySize {
		return nil, errors.Wrapf(errResponseTooLarge, "limit is %v bytes", s.cfg.Swan.MaxResponseBodySize)
	}

	return body, nil
}

func fileName(file *internal.File, fallback string) string {
	if file == nil || file.Name == "" {
		return fallback
	}

	return file.Name
}

// Missing files are still sent, as empty parts. Images are read fully upfront, so a failing reader aborts the submission.
func fileContent(file *internal.File) ([]byte, error) {
	if file == nil || file.Content == nil {
		return []byte{}, nil
	}
	content, err := io.ReadAll(file.Content)

	return content, errors.Wrapf(err, "failed to read %v", file.Name)
}
