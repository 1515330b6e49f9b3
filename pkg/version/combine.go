package version

import "errors"

// ErrEmptyCombineInput is returned by Combine when it is given no tags.
// A consumer with no dependencies has nothing to be stale against, so this
// always points at a malformed dependency list.
var ErrEmptyCombineInput = errors.New("version: combine requires at least one tag")

// Combine returns the most recently minted tag among tags. The result is one
// of the inputs; Combine never advances the clock.
func Combine(tags ...Tag) (Tag, error) {
	if len(tags) == 0 {
		return Tag{}, ErrEmptyCombineInput
	}
	out := tags[0]
	for _, t := range tags[1:] {
		if newer(t, out) {
			out = t
		}
	}
	return out, nil
}

// MustCombine is like Combine but panics with ErrEmptyCombineInput when
// given no tags. Use it where the dependency list is fixed in code.
func MustCombine(tags ...Tag) Tag {
	t, err := Combine(tags...)
	if err != nil {
		panic(err)
	}
	return t
}
