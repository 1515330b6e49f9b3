// Package tracked packages the version tag invalidation contract into
// reusable producers and consumers.
//
// Producers (Var, Store) mint a fresh tag on every mutation. A Memo derives
// a value from a fixed set of Sources and recomputes only when the combined
// tag of those sources differs from the one it last computed against. A Memo
// is itself a Source, so memos can be stacked and a change at the bottom is
// seen at the top without any extra clock advancement in between.
package tracked
