// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedAiffLayout is returned when the COMM chunk describes no
	// usable channel layout.
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
