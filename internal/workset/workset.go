package workset

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/dshills/hylite/pkg/types"
)

const (
	// DefaultSetFile is used when no set file or input files are given
	DefaultSetFile = "./.hylite"

	// EnvSetFile overrides DefaultSetFile
	EnvSetFile = "HYLITE_SET"
)

// WorkingSet lists the files a scan should read
type WorkingSet interface {
	// Files returns the paths to scan, in scan order
	Files() ([]string, error)

	// SetCovert includes hidden and backup files when true
	SetCovert(covert bool)
}

// Config is the YAML content of a set file:
//
//	include:
//	  - "src/**/*.java"
//	  - "notes/*.txt"
//	exclude:
//	  - "src/generated/**"
type Config struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// FileSet is a working set described by a set file. Patterns are resolved
// relative to the directory holding the file unless they are absolute.
type FileSet struct {
	baseDir string
	config  Config
	covert  bool
}

// DefaultPath returns $HYLITE_SET, or DefaultSetFile when it is unset
func DefaultPath() string {
	if p := os.Getenv(EnvSetFile); p != "" {
		return p
	}
	return DefaultSetFile
}

// Load reads a set file. A missing or unreadable file yields a
// *types.FileError wrapping types.ErrUnreadableFile.
func Load(setFile string) (*FileSet, error) {
	data, err := os.ReadFile(setFile)
	if err != nil {
		return nil, &types.FileError{Path: setFile, Err: fmt.Errorf("%w: %v", types.ErrUnreadableFile, err)}
	}
	return Parse(data, filepath.Dir(setFile))
}

// Parse builds a set from YAML content and the directory patterns are
// relative to
func Parse(data []byte, baseDir string) (*FileSet, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse working set: %w", err)
	}

	for _, pattern := range append(slices.Clone(cfg.Include), cfg.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q in working set: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	return &FileSet{
		baseDir: baseDir,
		config:  cfg,
	}, nil
}

// BaseDir returns the directory patterns are resolved against
func (s *FileSet) BaseDir() string {
	return s.baseDir
}

// Config returns the parsed include and exclude patterns
func (s *FileSet) Config() Config {
	return s.config
}

// SetCovert includes hidden and backup files when true
func (s *FileSet) SetCovert(covert bool) {
	s.covert = covert
}

// Files returns every regular file matched by an include pattern and by no
// exclude pattern, sorted by path. Absolute patterns are globbed as given.
func (s *FileSet) Files() ([]string, error) {
	fsys := os.DirFS(s.baseDir)

	// output path -> slash-separated path that patterns and covert rules see
	matched := make(map[string]string)
	for _, pattern := range s.config.Include {
		if filepath.IsAbs(pattern) {
			paths, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
			}
			for _, p := range paths {
				matched[p] = s.relative(p)
			}
			continue
		}

		paths, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
		}
		for _, p := range paths {
			matched[filepath.Join(s.baseDir, filepath.FromSlash(p))] = p
		}
	}

	files := make([]string, 0, len(matched))
	for out, p := range matched {
		if s.excluded(out, p) {
			continue
		}
		if !s.covert && covert(p) {
			continue
		}
		files = append(files, out)
	}
	slices.Sort(files)
	return files, nil
}

// relative returns p relative to the base directory in slash form, or p
// itself in slash form when it lies outside
func (s *FileSet) relative(p string) string {
	base, err := filepath.Abs(s.baseDir)
	if err != nil {
		return filepath.ToSlash(p)
	}
	rel, err := filepath.Rel(base, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

// excluded matches absolute exclude patterns against the absolute path and
// the others against the path relative to the base directory
func (s *FileSet) excluded(out, rel string) bool {
	for _, pattern := range s.config.Exclude {
		target := rel
		if filepath.IsAbs(pattern) {
			abs, err := filepath.Abs(out)
			if err != nil {
				continue
			}
			target = filepath.ToSlash(abs)
			pattern = filepath.ToSlash(pattern)
		}
		if ok, err := doublestar.Match(pattern, target); err == nil && ok {
			return true
		}
	}
	return false
}

// covert reports hidden files, files under hidden directories and editor
// backups ending in "~"
func covert(p string) bool {
	if strings.HasSuffix(path.Base(p), "~") {
		return true
	}
	for _, seg := range strings.Split(p, "/") {
		if strings.HasPrefix(seg, ".") && seg != "." && seg != ".." {
			return true
		}
	}
	return false
}

// ManualSet is a working set given as an explicit file list
type ManualSet struct {
	files []string
}

// NewManual keeps the readable paths in order and logs the rest. A nil logger
// uses slog.Default().
func NewManual(logger *slog.Logger, paths ...string) *ManualSet {
	if logger == nil {
		logger = slog.Default()
	}

	files := make([]string, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			logger.Warn("skipping unreadable file", "path", p, "error", err)
			continue
		}
		_ = f.Close()
		files = append(files, p)
	}
	return &ManualSet{files: files}
}

// Files returns the readable paths given to NewManual
func (m *ManualSet) Files() ([]string, error) {
	return m.files, nil
}

// SetCovert is a no-op; named files are always scanned
func (m *ManualSet) SetCovert(bool) {}
