package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"versiontag/pkg/tracked"
	"versiontag/pkg/version"
)

// runDemo walks two producers and one consumer through the invalidation
// contract and fails if any step behaves differently than expected.
func runDemo(ctx context.Context, log *zap.Logger, out io.Writer) error {
	var x, y tracked.Var[int]
	recomputes := 0

	sum := tracked.NewMemo(func(context.Context) (int, error) {
		recomputes++
		xv, _ := x.Get()
		yv, _ := y.Get()
		return xv + yv, nil
	}, []tracked.Source{&x, &y}, tracked.WithName("sum"), tracked.WithLogger(log))

	say := func(format string, args ...any) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	a := x.Set(1)
	say("x = 1, tag A = %s", a)
	b := y.Set(2)
	say("y = 2, tag B = %s", b)

	if got := version.MustCombine(a, b); got != b {
		return fmt.Errorf("combine(A, B) = %s, want B = %s", got, b)
	}
	say("combine(A, B) = B")

	if !sum.Adopted().IsUnset() {
		return fmt.Errorf("consumer should start unset, has %s", sum.Adopted())
	}

	v, tag, err := sum.Get(ctx)
	if err != nil {
		return err
	}
	if recomputes != 1 || tag != b {
		return fmt.Errorf("first read: %d recomputes, tag %s, want 1 and %s", recomputes, tag, b)
	}
	say("sum = %d, computed against %s", v, tag)

	v, tag, err = sum.Get(ctx)
	if err != nil {
		return err
	}
	if recomputes != 1 {
		return fmt.Errorf("second read recomputed with no mutation")
	}
	say("sum = %d, cached at %s", v, tag)

	c := x.Set(10)
	say("x = 10, tag C = %s", c)
	if got := version.MustCombine(c, b); got != c || got == tag {
		return fmt.Errorf("combine(C, B) = %s, want C = %s and unequal to %s", got, c, tag)
	}

	v, tag, err = sum.Get(ctx)
	if err != nil {
		return err
	}
	if recomputes != 2 || tag != c || v != 12 {
		return fmt.Errorf("after mutation: sum %d, %d recomputes, tag %s", v, recomputes, tag)
	}
	say("sum = %d, recomputed against %s", v, tag)

	log.Info("demo finished", zap.Int("recomputes", recomputes), zap.Stringer("tag", tag))
	return nil
}
