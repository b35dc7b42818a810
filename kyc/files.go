// SPDX-License-Identifier: ice License 1.0

package kyc

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// NewKYCRequestFromFiles opens both images for reading. The returned func closes them and must be called once the request was submitted.
func NewKYCRequestFromFiles(email, idImagePath, selfiePath string) (req *KYCRequest, closeFiles func() error, err error) {
	idImage, err := os.Open(idImagePath) //nolint:gosec // Path is provided by the caller on purpose.
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open id image %v", idImagePath)
	}
	selfie, err := os.Open(selfiePath) //nolint:gosec // Path is provided by the caller on purpose.
	if err != nil {
		return nil, nil, multierror.Append( //nolint:wrapcheck // .
			errors.Wrapf(err, "failed to open selfie %v", selfiePath),
			errors.Wrapf(idImage.Close(), "failed to close id image %v", idImagePath),
		).ErrorOrNil()
	}
	closeFiles = func() error {
		return multierror.Append( //nolint:wrapcheck // .
			errors.Wrapf(idImage.Close(), "failed to close id image %v", idImagePath),
			errors.Wrapf(selfie.Close(), "failed to close selfie %v", selfiePath),
		).ErrorOrNil()
	}

	return &KYCRequest{
		IDImage: &File{Content: idImage, Name: filepath.Base(idImagePath)},
		Sefile:  &File{Content: selfie, Name: filepath.Base(selfiePath)},
		Email:   email,
	}, closeFiles, nil
}
