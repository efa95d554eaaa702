package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileFormat represents the dictionary file formats LoadFile understands
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // one word per line, optional rank
	FormatTSV                // word<TAB>rank
)

// FormatInfo contains metadata about a dictionary file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt", ".words"},
	},
	FormatTSV: {
		Format:      FormatTSV,
		Description: "Tab Separated Ranked Word List",
		Extensions:  []string{".tsv"},
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "unknown"
}

// DetectFileFormat picks the format from the file extension and checks the file is readable.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e != ext {
				continue
			}
			fi, err := os.Stat(filename)
			if err != nil {
				return FormatUnknown, fmt.Errorf("failed to stat file %s: %w", filename, err)
			}
			if fi.IsDir() {
				return FormatUnknown, fmt.Errorf("%w: %s is a directory", ErrFormat, filename)
			}
			return format, nil
		}
	}
	return FormatUnknown, fmt.Errorf("%w: unsupported extension %q for %s", ErrFormat, ext, filename)
}
