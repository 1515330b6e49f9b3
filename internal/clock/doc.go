// Package clock provides the process-wide logical clock that every version
// tag is minted from. The clock only moves forward: each advancement returns
// a value strictly greater than every value returned before it, and the
// starting value is reserved so it can mark "never computed".
package clock
