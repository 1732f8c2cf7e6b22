package lexer

import "strings"

// Language identifies how comments are written in a file
type Language string

const (
	Java Language = "java"
	C    Language = "c"
	CPP  Language = "cpp"
	Perl Language = "perl"
	Ruby Language = "ruby"
	HTML Language = "html"
	XML  Language = "xml"
	YAML Language = "yaml"
	Text Language = "text" // no comments; every line counts
)

// Delimiters are the comment markers of a language. Empty strings mean the
// language lacks that kind of comment.
type Delimiters struct {
	Line       string
	BlockOpen  string
	BlockClose string
}

// HasComments reports whether any comment marker is defined
func (d Delimiters) HasComments() bool {
	return d.Line != "" || d.BlockOpen != ""
}

var extensionLanguages = map[string]Language{
	"java":  Java,
	"c":     C,
	"h":     C,
	"cpp":   CPP,
	"c++":   CPP,
	"pl":    Perl,
	"perl":  Perl,
	"rb":    Ruby,
	"ruby":  Ruby,
	"rbw":   Ruby,
	"html":  HTML,
	"htm":   HTML,
	"xml":   XML,
	"jtdl":  XML,
	"jtdli": XML,
	"jul":   XML,
	"yaml":  YAML,
	"yml":   YAML,
	"txt":   Text,
	"out":   Text,
}

var commentDelimiters = map[Language]Delimiters{
	Java: {Line: "//", BlockOpen: "/*", BlockClose: "*/"},
	C:    {Line: "//", BlockOpen: "/*", BlockClose: "*/"},
	CPP:  {Line: "//", BlockOpen: "/*", BlockClose: "*/"},
	HTML: {BlockOpen: "<!--", BlockClose: "-->"},
	XML:  {BlockOpen: "<!--", BlockClose: "-->"},
	Perl: {Line: "#"},
	Ruby: {Line: "#"},
	YAML: {Line: "#"},
}

// LanguageForPath picks the language from the text after the last "." of
// path. Unknown or missing extensions are plain text.
func LanguageForPath(path string) Language {
	dot := strings.LastIndex(path, ".")
	if dot < 0 || dot == len(path)-1 {
		return Text
	}
	if lang, ok := extensionLanguages[path[dot+1:]]; ok {
		return lang
	}
	return Text
}

// Delimiters returns the comment markers of the language
func (l Language) Delimiters() Delimiters {
	return commentDelimiters[l]
}

// HasComments reports whether the language has any comment syntax
func (l Language) HasComments() bool {
	return l.Delimiters().HasComments()
}
