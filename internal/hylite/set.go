package hylite

import "regexp"

// Source is anything hylites can be enumerated from: a Set or a View over one
type Source interface {
	// EachName visits the _Name subtree in trie order. hy is the hylite
	// named by the node, or nil for an intermediate node.
	EachName(fn func(n Node, hy *Hylite))

	// EachAnon visits anonymous hylites in creation order
	EachAnon(fn func(hy *Hylite))

	// EachAttribute visits every node below the root in trie order
	EachAttribute(fn func(n Node))

	// Base returns the Set at the bottom of a view chain
	Base() *Set
}

// Set owns the attribute trie and every hylite found during a scan. It is
// filled while scanning and only read afterwards.
type Set struct {
	trie     *Trie
	hylites  []*Hylite
	nextAnon int
}

// NewSet creates an empty set
func NewSet() *Set {
	return &Set{
		trie:     NewTrie(),
		nextAnon: 1,
	}
}

// Trie returns the attribute trie
func (s *Set) Trie() *Trie {
	return s.trie
}

// Hylites returns all hylites in order of first reference
func (s *Set) Hylites() []*Hylite {
	return s.hylites
}

// Len returns the number of hylites
func (s *Set) Len() int {
	return len(s.hylites)
}

// Base returns the set itself
func (s *Set) Base() *Set {
	return s
}

// Named returns the hylite named raw, creating and linking it on first use.
// Hyphens in raw nest the name, so "a-b" lives at _Name-a-b.
func (s *Set) Named(raw string) *Hylite {
	n := s.trie.SeekMake(NameAttribute + PathSeparator + raw)
	if refs := n.Hylites(); len(refs) > 0 {
		return refs[0]
	}

	hy := newHylite(s.trie)
	hy.link(n)
	s.hylites = append(s.hylites, hy)
	return hy
}

// Anonymous creates a new anonymous hylite. Anonymous hylites never merge.
func (s *Set) Anonymous() *Hylite {
	hy := newHylite(s.trie)
	hy.anonID = s.nextAnon
	s.nextAnon++
	s.hylites = append(s.hylites, hy)
	return hy
}

// Attach links hy to the attribute at path, creating the attribute if needed.
// Paths into the reserved _Name namespace and the empty path are refused.
func (s *Set) Attach(hy *Hylite, path string) (Node, bool) {
	segs := splitPath(path)
	if len(segs) == 0 || segs[0] == NameAttribute {
		return Node{}, false
	}
	n := s.trie.SeekMake(path)
	hy.link(n)
	return n, true
}

// EachName visits every node below _Name with the hylite it names
func (s *Set) EachName(fn func(n Node, hy *Hylite)) {
	names, ok := s.trie.Seek(NameAttribute)
	if !ok {
		return
	}
	s.trie.Visit(names, func(n Node) {
		var hy *Hylite
		if refs := n.Hylites(); len(refs) > 0 {
			hy = refs[0]
		}
		fn(n, hy)
	})
}

// EachAnon visits anonymous hylites in creation order
func (s *Set) EachAnon(fn func(hy *Hylite)) {
	for _, hy := range s.hylites {
		if hy.Anonymous() {
			fn(hy)
		}
	}
}

// EachAttribute visits every node of the trie except the root
func (s *Set) EachAttribute(fn func(n Node)) {
	s.trie.Visit(s.trie.Root(), fn)
}

// FilterName returns a view showing only the hylite with the given name
func (s *Set) FilterName(name string) *View {
	return filterName(s, name)
}

// FilterNamePattern returns a view showing hylites whose name matches re
func (s *Set) FilterNamePattern(re *regexp.Regexp) *View {
	return filterNamePattern(s, re)
}

// FilterGroup returns a view showing hylites whose name starts with any prefix
func (s *Set) FilterGroup(prefixes ...string) *View {
	return filterGroup(s, prefixes)
}

// FilterAttributes returns a view showing hylites carrying any of the attributes
func (s *Set) FilterAttributes(paths ...string) *View {
	return filterAttributes(s, paths)
}
