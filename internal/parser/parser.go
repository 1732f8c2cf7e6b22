package parser

import (
	"regexp"
	"strings"

	"github.com/dshills/hylite/internal/hylite"
	"github.com/dshills/hylite/pkg/types"
)

const (
	// SectionSeparator splits a hylite into name, attribute and text sections
	SectionSeparator = ":"

	// MaxSections is how many sections are read; anything after the third
	// separator is dropped
	MaxSections = 3
)

var namePattern = regexp.MustCompile(`hylite\s*([-\w]*)`)

// Sections are the three parts of a hylite string
type Sections struct {
	RawName    string   // empty for anonymous hylites
	Attributes []string // attribute paths, in written order
	Text       string
}

// Split breaks a hylite string into its sections without touching any set
func Split(s string) Sections {
	parts := strings.SplitN(s, SectionSeparator, MaxSections+1)
	if len(parts) > MaxSections {
		parts = parts[:MaxSections]
	}

	var sec Sections
	if m := namePattern.FindStringSubmatch(parts[0]); m != nil {
		sec.RawName = m[1]
	}
	if len(parts) > 1 {
		for _, attr := range strings.Split(strings.TrimSpace(parts[1]), " ") {
			if attr != "" {
				sec.Attributes = append(sec.Attributes, attr)
			}
		}
	}
	if len(parts) > 2 {
		sec.Text = strings.TrimSpace(parts[2])
	}
	return sec
}

// Parse records one hylite string found at loc in set and returns the hylite
// it resolved to. A named hylite merges with earlier writings of the same
// name; an anonymous one is always new.
func Parse(s string, loc types.Location, set *hylite.Set) *hylite.Hylite {
	sec := Split(s)

	var hy *hylite.Hylite
	if sec.RawName == "" {
		hy = set.Anonymous()
	} else {
		hy = set.Named(sec.RawName)
	}

	for _, attr := range sec.Attributes {
		set.Attach(hy, attr)
	}

	if sec.Text != "" {
		hy.AddText(sec.Text)
	}

	hy.AddLocation(loc)
	return hy
}
