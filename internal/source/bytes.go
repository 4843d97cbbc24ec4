package source

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/spf13/afero/zipfs"
)

// FromBytes turns an in-memory upload into sources. A payload starting
// with the zip magic is expanded entry by entry under the collector's
// traversal options; anything else becomes a single source carrying the
// given name. This is the web drop target's entry point, so archive
// uploads and archive paths go through the same walker and produce the
// same source names.
func (c *Collector) FromBytes(name string, data []byte) ([]Source, error) {
	if !bytes.HasPrefix(data, zipMagic) {
		lines, err := decodeLines(bytes.NewReader(data))
		return []Source{{Name: name, Lines: lines, Err: err}}, nil
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", name, err)
	}
	sources, err := c.collectDir(zipfs.New(reader), "/", "/")
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoSources)
	}
	return sources, nil
}
