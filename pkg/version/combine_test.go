package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		name string
		tags []Tag
		want Tag
	}{
		{
			name: "single tag",
			tags: []Tag{{v: 7}},
			want: Tag{v: 7},
		},
		{
			name: "single unset tag",
			tags: []Tag{Unset()},
			want: Unset(),
		},
		{
			name: "newest last",
			tags: []Tag{{v: 1}, {v: 2}, {v: 3}},
			want: Tag{v: 3},
		},
		{
			name: "newest first",
			tags: []Tag{{v: 9}, {v: 2}, {v: 3}},
			want: Tag{v: 9},
		},
		{
			name: "newest in the middle",
			tags: []Tag{{v: 4}, {v: 11}, {v: 3}},
			want: Tag{v: 11},
		},
		{
			name: "unset among set",
			tags: []Tag{Unset(), {v: 5}, Unset()},
			want: Tag{v: 5},
		},
		{
			name: "all unset",
			tags: []Tag{Unset(), Unset()},
			want: Unset(),
		},
		{
			name: "same tag twice",
			tags: []Tag{{v: 8}, {v: 8}},
			want: Tag{v: 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Combine(tt.tags...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCombine_Empty(t *testing.T) {
	got, err := Combine()
	if !errors.Is(err, ErrEmptyCombineInput) {
		t.Fatalf("Expected ErrEmptyCombineInput, got %v", err)
	}
	if !got.IsUnset() {
		t.Errorf("Expected zero tag alongside the error, got %s", got)
	}

	_, err = Combine([]Tag{}...)
	assert.ErrorIs(t, err, ErrEmptyCombineInput)

	var nilSlice []Tag
	_, err = Combine(nilSlice...)
	assert.ErrorIs(t, err, ErrEmptyCombineInput)
}

func TestMustCombine(t *testing.T) {
	a, b := Fresh(), Fresh()
	assert.Equal(t, b, MustCombine(a, b))

	assert.PanicsWithValue(t, ErrEmptyCombineInput, func() { MustCombine() })
}

func TestCombine_DoesNotAdvanceClock(t *testing.T) {
	a := Fresh()
	b := Fresh()

	for i := 0; i < 10; i++ {
		_, _ = Combine(a, b)
		_ = MustCombine(b)
		_, _ = Combine()
	}

	next := Fresh()
	if next.v != b.v+1 {
		t.Errorf("Combine advanced the clock: expected v%d, got %s", b.v+1, next)
	}
}

func TestCombine_DoesNotModifyInput(t *testing.T) {
	tags := []Tag{{v: 3}, {v: 1}, {v: 2}}
	_, err := Combine(tags...)
	require.NoError(t, err)
	assert.Equal(t, []Tag{{v: 3}, {v: 1}, {v: 2}}, tags)
}
