// Package cases runs descriptor case suites.
//
// A suite names an origin entity and a list of descriptors, each with the
// directive fields it is expected to resolve to. Suites are written in YAML
// or CUE:
//
//	name: post-descriptors
//	origin: Post
//	cases:
//	  - name: joined exact match
//	    descriptor: ae-Comment-author
//	    expect:
//	      entity: Comment
//	      property: author
//	      action: exactMatch
//	      join: true
//	  - name: too many segments
//	    descriptor: a-b-c-d
//	    expect:
//	      error: SEGMENT_COUNT
//
// Expectations use subset semantics: only the fields present are checked.
// An absent error means the descriptor must parse.
//
// Run reports mismatches per case; RunWithGolden additionally snapshots
// every resolved directive as canonical JSON under testdata/golden.
package cases
