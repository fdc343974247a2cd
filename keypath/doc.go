// Package keypath parses keypaths, the flexible keys used to navigate a
// datastore, and enumerates their possible interpretations.
//
// A keypath component may represent either a path segment on disk or a
// mapping key inside a YAML file; which is which can only be decided by
// probing the filesystem, so this package produces every plausible split in
// a fixed precedence order and leaves the probing to the caller.
//
// # Format
//
// Keypaths are of the form "a.b.c.d", where "a" through "d" are components
// and "." is the delimiter. Components must not contain forward slashes and
// must not be empty, which in effect means the delimiter may not appear
// twice in a row or at either end of the keypath. Whitespace surrounding a
// component is stripped: " a . b " parses as "a.b".
//
// Invalid examples:
//
//	contains/slash
//	empty.component..in.middle
//	whitespace.component. .in.middle
//	.empty.component.at.beginning
//	empty.component.at.end.
//
// # Candidates
//
// A parsed KeyPath yields a Candidates sequence pairing a candidate file
// path with the residual components to look up inside that file:
//
//	kp, _ := keypath.Parse("a.b.c")
//	iter := kp.Candidates().Iter()
//	for candidate, ok := iter.Next(); ok; candidate, ok = iter.Next() {
//		fmt.Printf("%-10s | %v\n", candidate.Path, candidate.Keys)
//	}
//
// The above prints:
//
//	a/b/c.yaml | []
//	a/b/c.yml  | []
//	a/b.yaml   | [c]
//	a/b.yml    | [c]
//	a.yaml     | [b c]
//	a.yml      | [b c]
//
// This order searches a store with the precedence directories > files >
// keys. When the inverse behavior is desired, Reversed returns a cursor
// over the exact mirror order.
package keypath
