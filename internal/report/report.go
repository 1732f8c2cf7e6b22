package report

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/dshills/hylite/internal/hylite"
)

const (
	indentUnit = "  "

	// newlineMark replaces each run of newlines in listed texts
	newlineMark = "¶"
)

var newlineRun = regexp.MustCompile(`\n+`)

// Options selects the details shown under each hylite in a listing
type Options struct {
	Attributes bool
	Text       bool
	Locations  bool
}

// Entry is one hylite in structured form
type Entry struct {
	Name       string   `json:"name"`
	Anonymous  bool     `json:"anonymous"`
	Attributes []string `json:"attributes,omitempty"`
	Texts      []string `json:"texts,omitempty"`
	Locations  []string `json:"locations,omitempty"`
}

// DirEntry is one attribute node in structured form
type DirEntry struct {
	Path  string `json:"path"`
	Level int    `json:"level"`
	Count int    `json:"count"`
}

// Listing writes the named hylites of src as an indented name tree, then the
// anonymous ones:
//
//	cache-
//	  :perf todo
//	  “revisit the LRU size
//	  @src/cache.c:42
//	  evict-
//	_Anon-1
//	  @notes.txt:3
func Listing(w io.Writer, src hylite.Source, opts Options) error {
	bw := bufio.NewWriter(w)

	src.EachName(func(n hylite.Node, hy *hylite.Hylite) {
		indent := strings.Repeat(indentUnit, max(n.Level()-2, 0))
		fmt.Fprintf(bw, "%s%s-\n", indent, n.Name())
		if hy != nil {
			writeDetails(bw, indent+indentUnit, hy, n, opts)
		}
	})

	src.EachAnon(func(hy *hylite.Hylite) {
		fmt.Fprintln(bw, hy.Name())
		writeDetails(bw, indentUnit, hy, hylite.Node{}, opts)
	})

	return bw.Flush()
}

func writeDetails(w io.Writer, indent string, hy *hylite.Hylite, nameNode hylite.Node, opts Options) {
	if opts.Attributes {
		if attrs := attributeList(hy, nameNode); len(attrs) > 0 {
			fmt.Fprintf(w, "%s:%s\n", indent, strings.Join(attrs, " "))
		}
	}
	if opts.Text {
		for _, text := range hy.Texts() {
			fmt.Fprintf(w, "%s“%s\n", indent, squeezeNewlines(text))
		}
	}
	if opts.Locations {
		for _, loc := range hy.Locations() {
			fmt.Fprintf(w, "%s@%s\n", indent, loc)
		}
	}
}

// Directory writes every attribute node indented by depth, marking how many
// hylites reference it: nothing for none, "·" for one, "(n)" for more.
func Directory(w io.Writer, src hylite.Source) error {
	bw := bufio.NewWriter(w)

	src.EachAttribute(func(n hylite.Node) {
		indent := strings.Repeat(indentUnit, n.Level()-1)
		switch count := len(n.Hylites()); count {
		case 0:
			fmt.Fprintf(bw, "%s%s\n", indent, n.Name())
		case 1:
			fmt.Fprintf(bw, "%s%s ·\n", indent, n.Name())
		default:
			fmt.Fprintf(bw, "%s%s (%d)\n", indent, n.Name(), count)
		}
	})

	return bw.Flush()
}

// Count writes the number of hylites in set
func Count(w io.Writer, set *hylite.Set) error {
	_, err := fmt.Fprintf(w, "Found %d hylites\n", set.Len())
	return err
}

// Files writes a working set, one path per line
func Files(w io.Writer, files []string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Working set is:")
	for _, f := range files {
		fmt.Fprintf(bw, "%s%s\n", indentUnit, f)
	}
	return bw.Flush()
}

// Entries returns the hylites of src in listing order: named ones in name
// order, then anonymous ones in creation order
func Entries(src hylite.Source) []Entry {
	entries := make([]Entry, 0)

	src.EachName(func(n hylite.Node, hy *hylite.Hylite) {
		if hy != nil {
			entries = append(entries, newEntry(hy, n))
		}
	})
	src.EachAnon(func(hy *hylite.Hylite) {
		entries = append(entries, newEntry(hy, hylite.Node{}))
	})

	return entries
}

// DirEntries returns the attribute trie of src in directory order
func DirEntries(src hylite.Source) []DirEntry {
	entries := make([]DirEntry, 0)
	src.EachAttribute(func(n hylite.Node) {
		path, _ := n.DisplayPath()
		entries = append(entries, DirEntry{
			Path:  path,
			Level: n.Level(),
			Count: len(n.Hylites()),
		})
	})
	return entries
}

func newEntry(hy *hylite.Hylite, nameNode hylite.Node) Entry {
	e := Entry{
		Name:       hy.Name(),
		Anonymous:  hy.Anonymous(),
		Attributes: attributeList(hy, nameNode),
		Texts:      hy.Texts(),
	}
	for _, loc := range hy.Locations() {
		e.Locations = append(e.Locations, loc.String())
	}
	return e
}

// attributeList returns the display paths of hy's attributes without its
// name node
func attributeList(hy *hylite.Hylite, nameNode hylite.Node) []string {
	var attrs []string
	for _, n := range hy.Attributes() {
		if nameNode.Valid() && n.ID() == nameNode.ID() {
			continue
		}
		if path, ok := n.DisplayPath(); ok {
			attrs = append(attrs, path)
		}
	}
	return attrs
}

func squeezeNewlines(s string) string {
	return newlineRun.ReplaceAllString(strings.TrimSpace(s), newlineMark)
}
