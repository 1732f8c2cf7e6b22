// Package parser turns hylite strings into entries of a hylite.Set.
//
// # Grammar
//
//	hylite[ name] [attr ...] [: attr attr ...] [: text]
//
// A string is split on ":" into at most three sections. The first names the
// hylite, the second lists space-separated attribute paths and the third is
// free text. Anything after a third ":" is dropped:
//
//	hylite cache-evict: perf todo: revisit the LRU size
//	// name cache-evict, attributes perf and todo, text "revisit the LRU size"
//
//	hylite x: a: text: more
//	// text is "text"; "more" is dropped
//
// The name is the run of word characters and hyphens right after the trigger.
// Without one the hylite is anonymous:
//
//	hylite: todo: look at this
//
// # Usage
//
//	set := hylite.NewSet()
//	hy := parser.Parse("hylite foo: bar baz: hello", types.Location{File: "a.c", Line: 3}, set)
//	fmt.Println(hy.Name()) // foo
//
// Every call records one location on the hylite it resolves to, even when it
// merges into an existing one.
package parser
