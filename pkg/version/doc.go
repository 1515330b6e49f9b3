// Package version provides Tag, a cheap comparable value that tells a caller
// whether a previously computed result is still valid.
//
// A producer owns a Tag for the value it guards and replaces it with Fresh
// every time that value changes. A consumer that derives something from
// several producers stores the Tag it computed against and, before reusing
// its result, compares it with Combine over the producers' current tags:
//
//	type Sum struct {
//		v   int
//		tag version.Tag
//	}
//
//	func (s *Sum) Update(x, y *Dep) {
//		required := version.MustCombine(x.tag, y.tag)
//		if required != s.tag {
//			s.v = x.v + y.v
//			s.tag = required
//		}
//	}
//
// The consumer adopts the combined tag rather than minting a new one, so a
// consumer of Sum can in turn combine Sum's tag with others and still see
// every change underneath it.
//
// Tags are only meaningful inside the process that minted them. Their
// numeric value is not a timestamp and their ordering is not part of the API.
package version
