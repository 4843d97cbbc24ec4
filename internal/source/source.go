// Package source collects named blocks of log text from a file, a
// directory tree, or a zip archive. It works against an afero.Fs so tests
// can run on an in-memory filesystem, and zip archives are walked through
// the same filesystem interface as directories, which keeps traversal
// order and source naming identical between the two.
package source

import (
	"archive/zip"
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/afero/zipfs"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNoSources is returned when the input path exists but yields no
// readable log sources (for example an empty directory).
var ErrNoSources = errors.New("no log sources found")

// DefaultExtensions lists the file extensions treated as plain-text logs
// when scanning directories and archives. Files without any extension are
// always included.
var DefaultExtensions = []string{".log", ".txt", ".out", ".err"}

// maxLineBytes bounds a single scanned line. Lines beyond this surface as
// a read error on the source rather than aborting the run.
const maxLineBytes = 1024 * 1024

var zipMagic = []byte{'P', 'K', 0x03, 0x04}

// Source is one logical file's worth of lines. When reading failed
// partway, Err is set and Lines holds whatever was decoded before the
// failure.
type Source struct {
	Name  string
	Lines []string
	Err   error
}

// Options controls directory and archive traversal.
type Options struct {
	// Recursive descends into subdirectories (and zip subfolders).
	Recursive bool
	// IncludeHidden includes dotfiles and descends into dot-directories.
	IncludeHidden bool
	// Extensions overrides DefaultExtensions when non-empty. Matching is
	// case-insensitive and files without an extension always pass.
	Extensions []string
}

// Collector resolves an input path into an ordered list of sources.
type Collector struct {
	fs   afero.Fs
	opts Options
}

// NewCollector creates a collector over the given filesystem. Use
// afero.NewOsFs() for real scans and afero.NewMemMapFs() in tests.
func NewCollector(fs afero.Fs, opts Options) *Collector {
	return &Collector{fs: fs, opts: opts}
}

// Collect resolves path to a single file, a directory, or a zip archive
// and returns its sources in deterministic (lexical) order. It fails only
// when the path does not exist or yields zero sources; per-source read
// failures are reported on the individual Source.
func (c *Collector) Collect(path string) ([]Source, error) {
	info, err := c.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("resolve input path %s: %w", path, err)
	}

	if info.IsDir() {
		sources, err := c.collectDir(c.fs, path, path)
		if err != nil {
			return nil, err
		}
		if len(sources) == 0 {
			return nil, fmt.Errorf("%s: %w", path, ErrNoSources)
		}
		return sources, nil
	}

	isZip, err := c.isZipFile(path)
	if err != nil {
		return nil, fmt.Errorf("resolve input path %s: %w", path, err)
	}
	if isZip {
		return c.collectZip(path)
	}

	// A single explicitly named file is always read, whatever its
	// extension.
	return []Source{c.readSource(c.fs, path, filepath.Base(path))}, nil
}

// collectDir walks root inside fsys, filtering by the traversal options.
// afero.Walk visits names in sorted order, which pins source order (and
// therefore report order) across runs.
func (c *Collector) collectDir(fsys afero.Fs, root, base string) ([]Source, error) {
	var sources []Source
	err := afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		name := info.Name()
		if info.IsDir() {
			if path == root {
				return nil
			}
			if !c.opts.Recursive {
				return filepath.SkipDir
			}
			if !c.opts.IncludeHidden && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !c.opts.IncludeHidden && strings.HasPrefix(name, ".") {
			return nil
		}
		if !c.wantExtension(name) {
			return nil
		}
		rel, relErr := filepath.Rel(base, path)
		if relErr != nil {
			rel = name
		}
		sources = append(sources, c.readSource(fsys, path, filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return sources, nil
}

// collectZip exposes the archive as a read-only filesystem and reuses the
// directory walker, so entry names come out exactly like directory-
// relative paths.
func (c *Collector) collectZip(path string) ([]Source, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	reader, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}

	sources, err := c.collectDir(zipfs.New(reader), "/", "/")
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoSources)
	}
	return sources, nil
}

// readSource loads one file as a best-effort UTF-8 source. Undecodable
// bytes become replacement runes instead of failing the file, and a read
// failure partway through keeps the lines decoded so far.
func (c *Collector) readSource(fsys afero.Fs, path, name string) Source {
	src := Source{Name: name}

	f, err := fsys.Open(path)
	if err != nil {
		src.Err = err
		return src
	}
	defer func() { _ = f.Close() }()

	src.Lines, src.Err = decodeLines(f)
	return src
}

// decodeLines splits r into lines, replacing invalid UTF-8 rather than
// failing the whole source.
func decodeLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, unicode.UTF8.NewDecoder()))
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func (c *Collector) wantExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return true
	}
	allowed := c.opts.Extensions
	if len(allowed) == 0 {
		allowed = DefaultExtensions
	}
	for _, want := range allowed {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

func (c *Collector) isZipFile(path string) (bool, error) {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return true, nil
	}
	f, err := c.fs.Open(path)
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	header := make([]byte, len(zipMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		// Too short to be an archive; treat as a plain file.
		return false, nil
	}
	return bytes.Equal(header, zipMagic), nil
}
