// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatchedConfiguration is returned when positions and sample
	// sequences do not pair up one to one, or sequences differ in length.
	ErrMismatchedConfiguration = errors.New("mismatched configuration")
	ErrInvalidParams           = errors.New("invalid render parameters")
	ErrRender                  = errors.New("render error")
)

// RenderError reports a numeric fault for one source while rendering one
// chunk. Chunk is -1 when the error comes from a direct RenderChunk call.
type RenderError struct {
	Chunk  int
	Source int
	Reason string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%v: chunk %d, source %d: %s", ErrRender, e.Chunk, e.Source, e.Reason)
}

func (e *RenderError) Unwrap() error { return ErrRender }
