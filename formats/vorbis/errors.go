package vorbis

import "errors"

var ErrNoChannels = errors.New("vorbis stream has no channels")
