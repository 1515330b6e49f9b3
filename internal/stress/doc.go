// Package stress hammers the process-wide version clock from many goroutines
// and checks that every minted tag is distinct and that each goroutine sees
// its tags strictly increase.
package stress
