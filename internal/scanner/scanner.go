package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dshills/hylite/internal/extractor"
	"github.com/dshills/hylite/internal/hylite"
	"github.com/dshills/hylite/internal/lexer"
	"github.com/dshills/hylite/internal/parser"
	"github.com/dshills/hylite/pkg/types"
)

// Scanner drives the pipeline for each file: lex -> extract -> parse into a Set
type Scanner struct {
	set    *hylite.Set
	logger *slog.Logger
}

// Statistics contains statistics about a scan
type Statistics struct {
	FilesScanned int
	FilesSkipped int
	Annotations  int // hylite strings parsed
	Hylites      int // distinct hylites in the set afterwards
	Duration     time.Duration

	// one entry per skipped file
	ErrorMessages []string
}

// New creates a Scanner that fills set. A nil logger uses slog.Default().
func New(set *hylite.Set, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		set:    set,
		logger: logger,
	}
}

// Set returns the set being filled
func (s *Scanner) Set() *hylite.Set {
	return s.set
}

// ScanFiles scans files in order. Files that cannot be opened are skipped and
// recorded in the statistics. A read failure or a cancelled context stops the
// run with an error wrapping types.ErrScanAborted; hylites found up to that
// point stay in the set and the partial statistics are returned with it.
func (s *Scanner) ScanFiles(ctx context.Context, files []string) (*Statistics, error) {
	startTime := time.Now()
	stats := &Statistics{
		ErrorMessages: make([]string, 0),
	}
	defer func() {
		stats.Hylites = s.set.Len()
		stats.Duration = time.Since(startTime)
	}()

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("%w: %w", types.ErrScanAborted, err)
		}

		count, err := s.ScanFile(path)
		var fileErr *types.FileError
		switch {
		case errors.As(err, &fileErr):
			s.logger.Warn("skipping file", "path", path, "error", fileErr.Err)
			stats.FilesSkipped++
			stats.ErrorMessages = append(stats.ErrorMessages, fileErr.Error())
			continue
		case err != nil:
			stats.Annotations += count
			return stats, err
		}

		stats.FilesScanned++
		stats.Annotations += count
	}

	return stats, nil
}

// ScanFile scans one file and returns the number of hylite strings parsed.
// A file that cannot be opened, or is a directory, yields a *types.FileError.
func (s *Scanner) ScanFile(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, &types.FileError{Path: path, Err: fmt.Errorf("%w: %v", types.ErrUnreadableFile, err)}
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return 0, &types.FileError{Path: path, Err: fmt.Errorf("%w: %v", types.ErrUnreadableFile, err)}
	}
	if info.IsDir() {
		return 0, &types.FileError{Path: path, Err: types.ErrIsDirectory}
	}

	return s.ScanReader(file, path)
}

// ScanReader scans already opened content. path selects the language and is
// recorded in every location.
func (s *Scanner) ScanReader(r io.Reader, path string) (int, error) {
	lang := lexer.LanguageForPath(path)
	ex := extractor.FromLexer(lexer.New(r, lang))

	count := 0
	for {
		ann, ok := ex.Next()
		if !ok {
			break
		}
		parser.Parse(ann.Text, types.Location{File: path, Line: ann.Line}, s.set)
		count++
	}

	if err := ex.Err(); err != nil {
		return count, fmt.Errorf("%w: %s: %w", types.ErrScanAborted, path, err)
	}

	s.logger.Debug("scanned file", "path", path, "language", string(lang), "hylites", count)
	return count, nil
}
