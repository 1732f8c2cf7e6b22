package hylite

import (
	"regexp"
	"strings"
)

// Kind selects the visibility rule of a View
type Kind int

const (
	// KindExcludeListed shows everything except listed hylites
	KindExcludeListed Kind = iota
	// KindIncludeListed shows only listed hylites
	KindIncludeListed
	// KindPredicate asks a function
	KindPredicate
	// KindEmpty shows nothing, whatever wraps it
	KindEmpty
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindExcludeListed:
		return "exclude-listed"
	case KindIncludeListed:
		return "include-listed"
	case KindPredicate:
		return "predicate"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// View filters the hylites of another Source. It holds no hylites of its own,
// and nothing is evaluated until the view is enumerated.
type View struct {
	source Source
	kind   Kind
	listed map[*Hylite]struct{}
	pred   func(*Hylite) bool
}

// NewView creates a listed or empty view over src. Use NewPredicateView for
// KindPredicate.
func NewView(src Source, kind Kind) *View {
	v := &View{source: src, kind: kind}
	if kind == KindExcludeListed || kind == KindIncludeListed {
		v.listed = make(map[*Hylite]struct{})
	}
	return v
}

// NewPredicateView creates a view showing hylites for which pred is true
func NewPredicateView(src Source, pred func(*Hylite) bool) *View {
	return &View{source: src, kind: KindPredicate, pred: pred}
}

// Kind returns the visibility rule
func (v *View) Kind() Kind {
	return v.kind
}

// List adds hylites to the listed set. Listed hylites are hidden by an
// exclude-listed view and shown by an include-listed one; other kinds ignore
// the call.
func (v *View) List(hys ...*Hylite) {
	if v.listed == nil {
		return
	}
	for _, hy := range hys {
		v.listed[hy] = struct{}{}
	}
}

// Visible applies this view's rule to one hylite
func (v *View) Visible(hy *Hylite) bool {
	switch v.kind {
	case KindExcludeListed:
		_, hidden := v.listed[hy]
		return !hidden
	case KindIncludeListed:
		_, shown := v.listed[hy]
		return shown
	case KindPredicate:
		return v.pred(hy)
	default:
		return false
	}
}

// Base returns the Set at the bottom of the chain
func (v *View) Base() *Set {
	return v.source.Base()
}

// EachName visits named hylites of the source that this view shows.
// Intermediate name nodes are not reported.
func (v *View) EachName(fn func(n Node, hy *Hylite)) {
	if v.kind == KindEmpty {
		return
	}
	v.source.EachName(func(n Node, hy *Hylite) {
		if hy != nil && v.Visible(hy) {
			fn(n, hy)
		}
	})
}

// EachAnon visits anonymous hylites of the source that this view shows
func (v *View) EachAnon(fn func(hy *Hylite)) {
	if v.kind == KindEmpty {
		return
	}
	v.source.EachAnon(func(hy *Hylite) {
		if v.Visible(hy) {
			fn(hy)
		}
	})
}

// EachAttribute walks the whole attribute trie; views never filter it
func (v *View) EachAttribute(fn func(n Node)) {
	v.Base().EachAttribute(fn)
}

// FilterName returns a view over v showing only the hylite with the given name
func (v *View) FilterName(name string) *View {
	return filterName(v, name)
}

// FilterNamePattern returns a view over v showing hylites whose name matches re
func (v *View) FilterNamePattern(re *regexp.Regexp) *View {
	return filterNamePattern(v, re)
}

// FilterGroup returns a view over v showing hylites whose name starts with any prefix
func (v *View) FilterGroup(prefixes ...string) *View {
	return filterGroup(v, prefixes)
}

// FilterAttributes returns a view over v showing hylites carrying any of the attributes
func (v *View) FilterAttributes(paths ...string) *View {
	return filterAttributes(v, paths)
}

func filterName(src Source, name string) *View {
	return NewPredicateView(src, func(hy *Hylite) bool {
		return hy.Name() == name
	})
}

func filterNamePattern(src Source, re *regexp.Regexp) *View {
	return NewPredicateView(src, func(hy *Hylite) bool {
		return re.MatchString(hy.Name())
	})
}

func filterGroup(src Source, prefixes []string) *View {
	return NewPredicateView(src, func(hy *Hylite) bool {
		name := hy.Name()
		for _, prefix := range prefixes {
			if strings.HasPrefix(name, prefix) {
				return true
			}
		}
		return false
	})
}

// filterAttributes resolves paths once, when the view is built. If none of
// them exists the result is an empty view.
func filterAttributes(src Source, paths []string) *View {
	trie := src.Base().Trie()

	view := NewView(src, KindIncludeListed)
	found := false
	for _, path := range paths {
		if path == "" {
			continue
		}
		n, ok := trie.Seek(path)
		if !ok {
			continue
		}
		found = true
		view.List(n.Hylites()...)
	}

	if !found {
		return NewView(src, KindEmpty)
	}
	return view
}
