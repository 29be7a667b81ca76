package wav

import "errors"

var (
	ErrNotWavFile    = errors.New("not a WAV file")
	ErrNotPCM        = errors.New("WAV data is not integer PCM")
	ErrChannelLength = errors.New("right and left channels differ in length")
)
