package hylite

import (
	"sort"
	"strings"
)

const (
	// RootName is the segment name of the trie root
	RootName = "_Root"

	// NameAttribute is the reserved child of the root holding hylite names
	NameAttribute = "_Name"

	// PathSeparator separates the segments of an attribute path
	PathSeparator = "-"
)

// NodeID addresses a node inside its Trie
type NodeID int32

const noParent NodeID = -1

// node is one arena slot. The child map owns the children; parent is only a
// back-reference.
type node struct {
	name     string
	parent   NodeID
	children map[string]NodeID
	refs     []*Hylite
}

// Trie is the attribute tree shared by hylite names and attributes.
// Nodes are created once and never removed or renamed, so a path always
// resolves to the same node.
type Trie struct {
	nodes []node
}

// NewTrie creates a trie holding only the root node
func NewTrie() *Trie {
	return &Trie{
		nodes: []node{{name: RootName, parent: noParent}},
	}
}

// Root returns the root node
func (t *Trie) Root() Node {
	return Node{trie: t, id: 0}
}

// Len returns the number of nodes, root included
func (t *Trie) Len() int {
	return len(t.nodes)
}

// Seek resolves a path relative to the root without creating anything
func (t *Trie) Seek(path string) (Node, bool) {
	return t.Root().Seek(path)
}

// SeekMake resolves a path relative to the root, creating missing segments
func (t *Trie) SeekMake(path string) Node {
	return t.Root().SeekMake(path)
}

// Visit calls fn for every node below start in pre-order. Children are
// visited in ascending order of their segment names; start itself is skipped.
func (t *Trie) Visit(start Node, fn func(Node)) {
	for _, child := range start.Children() {
		fn(child)
		t.Visit(child, fn)
	}
}

// Node is a handle to a trie node. The zero Node is not valid.
type Node struct {
	trie *Trie
	id   NodeID
}

// Valid reports whether the handle refers to a node
func (n Node) Valid() bool {
	return n.trie != nil
}

// ID returns the arena index of the node
func (n Node) ID() NodeID {
	return n.id
}

// Name returns the node's own segment name
func (n Node) Name() string {
	return n.trie.nodes[n.id].name
}

// IsRoot reports whether the node is the trie root
func (n Node) IsRoot() bool {
	return n.trie.nodes[n.id].parent == noParent
}

// Parent returns the parent node; the root has none
func (n Node) Parent() (Node, bool) {
	p := n.trie.nodes[n.id].parent
	if p == noParent {
		return Node{}, false
	}
	return Node{trie: n.trie, id: p}, true
}

// Hylites returns the hylites citing this node, in link order.
// The returned slice must not be modified.
func (n Node) Hylites() []*Hylite {
	return n.trie.nodes[n.id].refs
}

// Children returns the child nodes sorted by segment name
func (n Node) Children() []Node {
	children := n.trie.nodes[n.id].children
	names := make([]string, 0, len(children))
	for name := range children {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Node, 0, len(names))
	for _, name := range names {
		result = append(result, Node{trie: n.trie, id: children[name]})
	}
	return result
}

// Seek walks path from this node. It returns false as soon as a segment is
// missing and never creates nodes.
func (n Node) Seek(path string) (Node, bool) {
	id := n.id
	for _, seg := range splitPath(path) {
		child, ok := n.trie.nodes[id].children[seg]
		if !ok {
			return Node{}, false
		}
		id = child
	}
	return Node{trie: n.trie, id: id}, true
}

// SeekMake walks path from this node, creating and linking any missing
// segment. Repeated calls with the same path return the same node.
func (n Node) SeekMake(path string) Node {
	t := n.trie
	id := n.id
	for _, seg := range splitPath(path) {
		child, ok := t.nodes[id].children[seg]
		if !ok {
			child = NodeID(len(t.nodes))
			t.nodes = append(t.nodes, node{name: seg, parent: id})
			if t.nodes[id].children == nil {
				t.nodes[id].children = make(map[string]NodeID)
			}
			t.nodes[id].children[seg] = child
		}
		id = child
	}
	return Node{trie: t, id: id}
}

// Level returns the depth of the node; the root is level 0
func (n Node) Level() int {
	level := 0
	for id := n.id; n.trie.nodes[id].parent != noParent; id = n.trie.nodes[id].parent {
		level++
	}
	return level
}

// Segments returns the segment names from the root to this node, inclusive
func (n Node) Segments() []string {
	segs := make([]string, 0, 4)
	for id := n.id; id != noParent; id = n.trie.nodes[id].parent {
		segs = append(segs, n.trie.nodes[id].name)
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return segs
}

// Path returns the segments from the root to this node joined by "-"
func (n Node) Path() string {
	return strings.Join(n.Segments(), PathSeparator)
}

// DisplayPath returns the path without the root segment, which is how
// attributes are shown to users. The root itself has no display path.
func (n Node) DisplayPath() (string, bool) {
	if n.IsRoot() {
		return "", false
	}
	return strings.Join(n.Segments()[1:], PathSeparator), true
}

// inNameSpace reports whether the node is _Name or below it
func (n Node) inNameSpace() bool {
	segs := n.Segments()
	return len(segs) >= 2 && segs[1] == NameAttribute
}

// splitPath breaks a path into segments. A trailing separator does not
// produce an empty last segment and the empty path has no segments.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	segs := strings.Split(path, PathSeparator)
	if segs[len(segs)-1] == "" {
		segs = segs[:len(segs)-1]
	}
	return segs
}
