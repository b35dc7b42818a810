// SPDX-License-Identifier: ice License 1.0

package internal

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type (
	Client interface {
		Available(ctx context.Context) error
		Submit(ctx context.Context, sub *Submission) (body []byte, err error)
	}
	File struct {
		Content io.Reader
		Name    string
	}
	Submission struct {
		IDImage *File
		Selfie  *File
		Email   string
	}
	// RemoteError is returned for every non-2xx answer of the kyc service. Body is kept verbatim.
	RemoteError struct {
		Body       []byte
		StatusCode int
	}
)

//nolint:grouper // .
var ErrNotAvailable = errors.Errorf("not available")

func (e *RemoteError) Error() string {
	return fmt.Sprintf("[%v]kyc service responded with body:%v", e.StatusCode, string(e.Body))
}
