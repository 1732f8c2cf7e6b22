// Package lexer finds comment text in source files without parsing them.
//
// A Lexer knows only the comment markers of its Language. It splits a file into
// Fragments: one per line of comment text, flagged Terminated when the comment
// ends on that line.
//
//	lx := lexer.New(f, lexer.LanguageForPath("main.c"))
//	for {
//	    frag, ok := lx.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(frag.Line, frag.Text, frag.Terminated)
//	}
//	if err := lx.Err(); err != nil {
//	    return err
//	}
//
// Given
//
//	int x; /* one */ int y; // two
//	/* three
//	   four */
//
// the fragments are "one" (line 1, terminated), "two" (line 1, terminated),
// "three" (line 2, open) and "four" (line 3, terminated).
//
// Files with an unknown extension are plain text: every line is a terminated
// fragment. Comment markers inside string literals are not recognized.
package lexer
