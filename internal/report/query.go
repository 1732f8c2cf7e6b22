package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/hylite/internal/hylite"
)

// Query narrows a set the way the hyt filter flags do. Empty fields are not
// applied. Filters chain in field order, so a hylite must pass all of them.
type Query struct {
	// Name is an exact hylite name, or a regular expression written as /re/
	Name string

	// Groups are name prefixes; any one matching is enough
	Groups []string

	// Attributes are attribute paths; carrying any one is enough
	Attributes []string
}

// Empty reports whether the query filters nothing
func (q Query) Empty() bool {
	return q.Name == "" && len(q.Groups) == 0 && len(q.Attributes) == 0
}

// Apply builds the view chain for q over set
func (q Query) Apply(set *hylite.Set) (hylite.Source, error) {
	var src filterable = set

	if q.Name != "" {
		re, isPattern, err := namePattern(q.Name)
		if err != nil {
			return nil, err
		}
		if isPattern {
			src = src.FilterNamePattern(re)
		} else {
			src = src.FilterName(q.Name)
		}
	}
	if len(q.Groups) > 0 {
		src = src.FilterGroup(q.Groups...)
	}
	if len(q.Attributes) > 0 {
		src = src.FilterAttributes(q.Attributes...)
	}

	return src, nil
}

// filterable is what Set and View have in common
type filterable interface {
	hylite.Source
	FilterName(name string) *hylite.View
	FilterNamePattern(re *regexp.Regexp) *hylite.View
	FilterGroup(prefixes ...string) *hylite.View
	FilterAttributes(paths ...string) *hylite.View
}

// namePattern compiles a /re/ name filter
func namePattern(name string) (*regexp.Regexp, bool, error) {
	if len(name) < 2 || !strings.HasPrefix(name, "/") || !strings.HasSuffix(name, "/") {
		return nil, false, nil
	}
	re, err := regexp.Compile(name[1 : len(name)-1])
	if err != nil {
		return nil, true, fmt.Errorf("invalid name pattern %q: %w", name, err)
	}
	return re, true, nil
}
