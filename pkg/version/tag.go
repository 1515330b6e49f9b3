package version

import (
	"strconv"

	"versiontag/internal/clock"
)

// Tag is a snapshot of the process-wide version clock.
// Two tags are equal if and only if they were produced by the same
// advancement. The zero value is the unset tag.
type Tag struct {
	v uint64
}

// Unset returns the tag for "no value computed yet". It differs from every
// tag returned by Fresh, so the first staleness check against it always fails.
func Unset() Tag {
	return Tag{v: clock.Sentinel}
}

// Fresh advances the process-wide clock and returns a tag no other call
// has returned.
func Fresh() Tag {
	return Tag{v: clock.Advance()}
}

// Notify replaces t with a fresh tag. Producers call it whenever the value
// the tag guards changes.
func (t *Tag) Notify() {
	*t = Fresh()
}

// Equal reports whether t and o are the same version.
func (t Tag) Equal(o Tag) bool {
	return t.v == o.v
}

// IsUnset reports whether t is the unset tag.
func (t Tag) IsUnset() bool {
	return t.v == clock.Sentinel
}

// Uint64 returns the raw clock value, for logs and diagnostics.
func (t Tag) Uint64() uint64 {
	return t.v
}

// String returns "unset" or "v" followed by the clock value.
func (t Tag) String() string {
	if t.IsUnset() {
		return "unset"
	}
	return "v" + strconv.FormatUint(t.v, 10)
}

// newer reports whether a was minted after b.
func newer(a, b Tag) bool {
	return a.v > b.v
}
