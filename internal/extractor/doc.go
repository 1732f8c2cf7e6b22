// Package extractor reassembles hylite strings from comment fragments.
//
// A hylite starts at the word "hylite" when it is followed by a colon,
// whitespace or the end of the fragment ("hylites" is ignored). Where it ends
// depends on the character right before the trigger:
//
//	// hylite cache: perf: runs to the end of the comment
//	// (hylite a: x) (hylite b: y) two hylites, each bounded by its parens
//
// Ungrouped hylites inside an open block comment continue over the following
// lines until the comment closes. Grouped hylites continue until their closer
// is found, or the comment or file ends. Joined lines are separated by one
// space.
//
// Recognized group openers are ( [ { < « “ ‘ ⟨ ⌈ ⌊ ⧼ ‹ and 【.
package extractor
