package extractor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/hylite/internal/lexer"
)

// Trigger is the word that starts every hylite
const Trigger = "hylite"

// groupClosers maps an opening delimiter written right before the trigger to
// the delimiter that ends the hylite
var groupClosers = map[rune]string{
	'(': ")",
	'[': "]",
	'{': "}",
	'<': ">",
	'«': "»",
	'“': "”",
	'‘': "’",
	'⟨': "⟩",
	'⌈': "⌉",
	'⌊': "⌋",
	'⧼': "⧽",
	'‹': "›",
	'【': "】",
}

// Annotation is one complete hylite string and the line it starts on
type Annotation struct {
	Line int
	Text string
}

// FragmentSource is the part of a lexer the extractor needs
type FragmentSource interface {
	Next() (lexer.Fragment, bool)
	Err() error
}

// Extractor turns the fragments of one file into hylite strings. It is
// exhausted once Next returns false.
type Extractor struct {
	src         FragmentSource
	hasComments bool

	// unscanned rest of the current fragment
	cur     lexer.Fragment
	haveCur bool
}

// New creates an extractor over a lexer's fragments. hasComments is false for
// plain text, where a hylite always runs to the end of its line.
func New(src FragmentSource, hasComments bool) *Extractor {
	return &Extractor{src: src, hasComments: hasComments}
}

// FromLexer creates an extractor for a lexer, taking the comment rules from
// the lexer's language
func FromLexer(lx *lexer.Lexer) *Extractor {
	return New(lx, lx.Language().HasComments())
}

// Err returns the read error that ended extraction early, if any
func (e *Extractor) Err() error {
	return e.src.Err()
}

// Next returns the next hylite string. Several hylites on one fragment are
// returned one per call before another fragment is read.
func (e *Extractor) Next() (Annotation, bool) {
	for {
		if !e.haveCur {
			frag, ok := e.src.Next()
			if !ok {
				return Annotation{}, false
			}
			e.cur = frag
			e.haveCur = true
		}

		if ann, ok := e.scan(); ok {
			return ann, true
		}
		e.haveCur = false
	}
}

// scan looks for the next accepted trigger in the current fragment and builds
// its hylite, leaving any rescannable rest in e.cur
func (e *Extractor) scan() (Annotation, bool) {
	for e.cur.Text != "" {
		text := e.cur.Text
		pos := strings.Index(text, Trigger)
		if pos < 0 {
			return Annotation{}, false
		}

		after := text[pos+len(Trigger):]
		if !acceptsTrigger(after) {
			e.cur.Text = after
			continue
		}

		closer, grouped := groupCloser(text[:pos])
		if !grouped {
			return e.ungrouped(pos), true
		}
		return e.grouped(pos, closer), true
	}
	return Annotation{}, false
}

// ungrouped takes the rest of the fragment, and the rest of an open block
// comment when the fragment is not terminated
func (e *Extractor) ungrouped(pos int) Annotation {
	ann := Annotation{Line: e.cur.Line, Text: e.cur.Text[pos:]}
	terminated := e.cur.Terminated
	e.haveCur = false
	e.cur.Text = ""

	if terminated || !e.hasComments {
		return ann
	}

	var sb strings.Builder
	sb.WriteString(ann.Text)
	for {
		frag, ok := e.src.Next()
		if !ok {
			break
		}
		sb.WriteByte(' ')
		sb.WriteString(frag.Text)
		if frag.Terminated {
			break
		}
	}
	ann.Text = sb.String()
	return ann
}

// grouped runs to the matching closer. Text after the closer stays in e.cur
// to be scanned again. A missing closer takes whatever the comment holds.
func (e *Extractor) grouped(pos int, closer string) Annotation {
	text := e.cur.Text
	ann := Annotation{Line: e.cur.Line}

	rest := text[pos:]
	if end := strings.Index(rest, closer); end >= 0 {
		ann.Text = rest[:end]
		e.cur.Text = rest[end+len(closer):]
		return ann
	}

	if e.cur.Terminated || !e.hasComments {
		ann.Text = rest
		e.cur.Text = ""
		return ann
	}

	var sb strings.Builder
	sb.WriteString(rest)
	e.cur.Text = ""
	for {
		frag, ok := e.src.Next()
		if !ok {
			break
		}
		sb.WriteByte(' ')
		if end := strings.Index(frag.Text, closer); end >= 0 {
			sb.WriteString(frag.Text[:end])
			frag.Text = frag.Text[end+len(closer):]
			e.cur = frag
			break
		}
		sb.WriteString(frag.Text)
		if frag.Terminated {
			break
		}
	}
	ann.Text = sb.String()
	return ann
}

// acceptsTrigger reports whether the text after a trigger makes it a real one:
// a colon, whitespace or nothing at all
func acceptsTrigger(after string) bool {
	if after == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(after)
	return r == ':' || unicode.IsSpace(r)
}

// groupCloser checks the character right before the trigger
func groupCloser(before string) (string, bool) {
	if before == "" {
		return "", false
	}
	r, _ := utf8.DecodeLastRuneInString(before)
	closer, ok := groupClosers[r]
	return closer, ok
}
