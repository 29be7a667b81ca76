package wav

import (
	"errors"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrNotWavFile, "not a WAV file"},
		{ErrNotPCM, "WAV data is not integer PCM"},
		{ErrChannelLength, "right and left channels differ in length"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			if tt.err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
			}
		})
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	errs := []error{ErrNotWavFile, ErrNotPCM, ErrChannelLength}
	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}
