// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrUnsupportedFormat is returned for bit depths other than 8 and 16.
	ErrUnsupportedFormat = errors.New("unsupported format: only 8 and 16 bit PCM")
	ErrUnknownFormat     = errors.New("no decoder registered for format")
	ErrEmptyInput        = errors.New("no audio sources")
	ErrIO                = errors.New("i/o error")
)
