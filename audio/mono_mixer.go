package audio

// MergeChannels joins the channels of p end to end into one mono sequence:
// all of channel 0, then all of channel 1, and so on. Stereo files are not
// averaged; a mono file passes through unchanged.
func MergeChannels(p *PCM) []int {
	total := 0
	for _, ch := range p.Channels {
		total += len(ch)
	}

	mono := make([]int, 0, total)
	for _, ch := range p.Channels {
		mono = append(mono, ch...)
	}

	return mono
}

// Mix merges every source to mono and zero-pads each sequence on the right
// so that all of them share the length of the longest one.
func Mix(sources []*PCM) ([][]int, error) {
	if len(sources) == 0 {
		return nil, ErrEmptyInput
	}

	merged := make([][]int, len(sources))
	frames := 0
	for i, src := range sources {
		merged[i] = MergeChannels(src)
		frames = max(frames, len(merged[i]))
	}

	for i, mono := range merged {
		if len(mono) == frames {
			continue
		}

		// make zero-fills the tail
		padded := make([]int, frames)
		copy(padded, mono)
		merged[i] = padded
	}

	return merged, nil
}
