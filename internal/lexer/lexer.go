package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Fragment is at most one line of comment text (or one raw line for plain
// text). Terminated is set when a comment ends on this line.
type Fragment struct {
	Line       int // 1-based
	Text       string
	Terminated bool
}

// Lexer produces the comment fragments of one file
type Lexer struct {
	reader *bufio.Reader
	lang   Language
	delims Delimiters

	lineNo int
	queue  []Fragment
	eof    bool
	err    error
}

// New creates a lexer reading r as the given language
func New(r io.Reader, lang Language) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(r),
		lang:   lang,
		delims: lang.Delimiters(),
	}
}

// Language returns the language the lexer was created for
func (lx *Lexer) Language() Language {
	return lx.lang
}

// Next returns the next fragment. It returns false at end of input or after a
// read error; check Err to tell them apart.
func (lx *Lexer) Next() (Fragment, bool) {
	if len(lx.queue) == 0 {
		lx.fill()
	}
	if len(lx.queue) == 0 {
		return Fragment{}, false
	}
	frag := lx.queue[0]
	lx.queue = lx.queue[1:]
	return frag, true
}

// Err returns the first read error, if any
func (lx *Lexer) Err() error {
	return lx.err
}

// readLine returns the next physical line without its line ending. Lines
// have no length limit.
func (lx *Lexer) readLine() (string, bool) {
	if lx.err != nil || lx.eof {
		return "", false
	}

	line, err := lx.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			lx.err = fmt.Errorf("failed to read line %d: %w", lx.lineNo+1, err)
			return "", false
		}
		lx.eof = true
		if line == "" {
			return "", false
		}
	}

	lx.lineNo++
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

func (lx *Lexer) emit(text string, terminated bool) {
	lx.queue = append(lx.queue, Fragment{Line: lx.lineNo, Text: text, Terminated: terminated})
}

// fill reads lines until at least one fragment is queued or input ends
func (lx *Lexer) fill() {
	for len(lx.queue) == 0 {
		line, ok := lx.readLine()
		if !ok {
			return
		}

		if !lx.delims.HasComments() {
			lx.emit(strings.TrimSpace(line), true)
			return
		}

		lx.scanLine(line)
	}
}

// scanLine queues every comment fragment starting on line. A block comment
// left open consumes following lines up to its closer; whatever follows the
// closer is scanned for more comments.
func (lx *Lexer) scanLine(line string) {
	d := lx.delims

	for line != "" {
		linePos := indexOf(line, d.Line)
		blockPos := indexOf(line, d.BlockOpen)

		switch {
		case linePos < 0 && blockPos < 0:
			return

		case linePos >= 0 && (blockPos < 0 || linePos <= blockPos):
			lx.emit(strings.TrimSpace(line[linePos+len(d.Line):]), true)
			return

		default:
			line = line[blockPos+len(d.BlockOpen):]

			if end := strings.Index(line, d.BlockClose); end >= 0 {
				lx.emit(trimRight(line[:end]), true)
				line = line[end+len(d.BlockClose):]
				continue
			}

			lx.emit(trimRight(line), false)
			line = lx.continueBlock()
		}
	}
}

// continueBlock queues the lines of an open block comment and returns the
// text after its closer. End of input inside the block ends it silently.
func (lx *Lexer) continueBlock() string {
	closer := lx.delims.BlockClose
	for {
		line, ok := lx.readLine()
		if !ok {
			return ""
		}
		if end := strings.Index(line, closer); end >= 0 {
			lx.emit(trimRight(line[:end]), true)
			return line[end+len(closer):]
		}
		lx.emit(strings.TrimSpace(line), false)
	}
}

func indexOf(s, marker string) int {
	if marker == "" {
		return -1
	}
	return strings.Index(s, marker)
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
