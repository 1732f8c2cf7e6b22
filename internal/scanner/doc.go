// Package scanner runs the hylite pipeline over a list of files.
//
// # Basic Usage
//
//	set := hylite.NewSet()
//	sc := scanner.New(set, logger)
//
//	stats, err := sc.ScanFiles(ctx, []string{"main.c", "notes.txt"})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d hylites from %d files\n", stats.Hylites, stats.FilesScanned)
//
// # Pipeline
//
// Each file is handled start to finish before the next one is opened:
//
//  1. The extension picks a language (unknown extensions are plain text)
//  2. The lexer yields comment fragments
//  3. The extractor joins fragments into hylite strings
//  4. The parser merges each string into the set with its file and line
//
// # Error Handling
//
// Two kinds of failure are told apart:
//
//	// skipped: missing, unreadable or directory inputs
//	var fe *types.FileError
//	errors.As(err, &fe)
//
//	// fatal: a read error after opening, or a cancelled context
//	errors.Is(err, types.ErrScanAborted)
//
// Skipped files are logged at warn level and listed in
// Statistics.ErrorMessages. A fatal error ends the run, but whatever was
// already merged into the set stays there.
//
// # Concurrency
//
// A Scanner is not safe for concurrent use, and neither is the set it fills.
// ScanLock lets a long-lived process refuse overlapping scans.
package scanner
