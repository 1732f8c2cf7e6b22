package hylite

import (
	"fmt"
	"strings"

	"github.com/dshills/hylite/pkg/types"
)

// AnonPrefix starts the display name of every anonymous hylite
const AnonPrefix = "_Anon"

// Hylite is one named or anonymous entity. It collects the attributes, texts
// and locations of every writing that resolved to it.
type Hylite struct {
	trie       *Trie
	attributes []NodeID
	texts      []string
	locations  []types.Location

	anonID int // 0 for named hylites

	// display name, computed on first use and then fixed
	name       string
	nameCached bool
}

func newHylite(trie *Trie) *Hylite {
	return &Hylite{trie: trie}
}

// Attributes returns the attribute nodes in link order, including the name node
func (h *Hylite) Attributes() []Node {
	nodes := make([]Node, 0, len(h.attributes))
	for _, id := range h.attributes {
		nodes = append(nodes, Node{trie: h.trie, id: id})
	}
	return nodes
}

// Texts returns the text of each writing that had one
func (h *Hylite) Texts() []string {
	return h.texts
}

// Locations returns every place the hylite was written
func (h *Hylite) Locations() []types.Location {
	return h.locations
}

// AddText appends one text entry
func (h *Hylite) AddText(text string) {
	h.texts = append(h.texts, text)
}

// AddLocation appends one location
func (h *Hylite) AddLocation(loc types.Location) {
	h.locations = append(h.locations, loc)
}

// HasAttribute reports whether the node is linked to this hylite
func (h *Hylite) HasAttribute(n Node) bool {
	for _, id := range h.attributes {
		if id == n.id {
			return true
		}
	}
	return false
}

// NameNode returns the hylite's node in the _Name subtree
func (h *Hylite) NameNode() (Node, bool) {
	for _, n := range h.Attributes() {
		if n.inNameSpace() {
			return n, true
		}
	}
	return Node{}, false
}

// Anonymous reports whether the hylite has no name node
func (h *Hylite) Anonymous() bool {
	_, named := h.NameNode()
	return !named
}

// Name returns the display name: the name path below _Name joined by "-", or
// _Anon-N for anonymous hylites. The value is computed on the first call and
// later attribute changes do not alter it.
func (h *Hylite) Name() string {
	if h.nameCached {
		return h.name
	}
	if n, ok := h.NameNode(); ok {
		h.name = strings.Join(n.Segments()[2:], PathSeparator)
	} else {
		h.name = fmt.Sprintf("%s-%d", AnonPrefix, h.anonID)
	}
	h.nameCached = true
	return h.name
}

// link connects the hylite and the node in both directions, once
func (h *Hylite) link(n Node) {
	if !h.HasAttribute(n) {
		h.attributes = append(h.attributes, n.id)
	}
	refs := h.trie.nodes[n.id].refs
	for _, ref := range refs {
		if ref == h {
			return
		}
	}
	h.trie.nodes[n.id].refs = append(refs, h)
}

// String renders the hylite for debugging
func (h *Hylite) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "hylite %s: ", h.Name())
	for _, n := range h.Attributes() {
		sb.WriteString(n.Path())
		sb.WriteByte(' ')
	}
	sb.WriteByte(':')
	for _, text := range h.texts {
		sb.WriteString(text)
		sb.WriteString("``")
	}
	return sb.String()
}
