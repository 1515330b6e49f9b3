package tracked

import "versiontag/pkg/version"

// Source is anything that owns a version tag for its current value.
type Source interface {
	Version() version.Tag
}

// SourceFunc adapts a function to a Source.
type SourceFunc func() version.Tag

// Version calls f.
func (f SourceFunc) Version() version.Tag {
	return f()
}

// Combine returns the combined version of srcs. It fails with
// version.ErrEmptyCombineInput when srcs is empty.
func Combine(srcs ...Source) (version.Tag, error) {
	tags := make([]version.Tag, len(srcs))
	for i, s := range srcs {
		tags[i] = s.Version()
	}
	return version.Combine(tags...)
}
