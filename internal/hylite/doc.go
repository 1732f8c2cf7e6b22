// Package hylite holds the in-memory index of hylites: the attribute trie, the
// hylite entities, the Set that owns them and the filtering views over a Set.
//
// # Attribute Trie
//
// Names and attributes share one tree. Paths are segment names joined by "-".
// The root is named _Root and its reserved child _Name holds hylite names, so
// the hylite "net-retry" lives at _Root-_Name-net-retry while the attribute
// "todo-perf" lives at _Root-todo-perf.
//
//	set := hylite.NewSet()
//	n := set.Trie().SeekMake("todo-perf")
//	fmt.Println(n.Path())        // _Root-todo-perf
//	fmt.Println(n.DisplayPath()) // todo-perf true
//
// Nodes live in an arena owned by the Trie and are addressed by NodeID. Each
// node knows its parent by index; children are owned through the child map.
// Traversal always visits children in ascending name order.
//
// # Hylites
//
// A named hylite is created the first time its name is seen and reused for
// every later writing with the same name:
//
//	a := set.Named("net-retry")
//	b := set.Named("net-retry")
//	// a == b
//
// Anonymous hylites are always new and are numbered by the Set (_Anon-1,
// _Anon-2, ...).
//
// A hylite's display name is computed once, on first use.
//
// # Views
//
// Views filter what EachName and EachAnon report and can wrap each other:
//
//	v := set.FilterGroup("net").FilterAttributes("todo")
//	v.EachName(func(n hylite.Node, hy *hylite.Hylite) {
//	    fmt.Println(hy.Name())
//	})
//
// EachAttribute is never filtered; it always walks the whole trie of the
// underlying Set.
package hylite
