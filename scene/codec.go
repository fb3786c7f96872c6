package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for document files whose extension is
// neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Format is a document file encoding.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// Encode writes doc to w.
func Encode(w io.Writer, doc *Document, f Format) error {
	switch f {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.SetIndentTables(true)
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}
	return ErrUnsupportedFormat
}

// Decode reads a document from r. Unknown keys are rejected so typos in
// hand-edited files surface instead of being dropped.
func Decode(r io.Reader, f Format) (*Document, error) {
	doc := &Document{}
	switch f {
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, ErrUnsupportedFormat
	}
	doc.normalize()
	return doc, nil
}

// normalize fills in defaults for values a file may leave out.
func (d *Document) normalize() {
	if d.Width <= 0 || d.Height <= 0 {
		d.Width, d.Height = DefaultWidth, DefaultHeight
	}
	d.Shapes = slices.DeleteFunc(d.Shapes, func(s *Shape) bool { return s == nil })
	for _, s := range d.Shapes {
		if s.Kind == ShapeText && s.FontSize <= 0 {
			s.FontSize = 30
		}
		s.Bounds.W = max(s.Bounds.W, minShapeSize)
		s.Bounds.H = max(s.Bounds.H, minShapeSize)
		for _, a := range []*Animation{s.Enter, s.Exit} {
			if a == nil {
				continue
			}
			a.Delay = max(a.Delay, 0)
			a.Duration = max(a.Duration, 0)
		}
	}
}

// Save writes doc to path in the format its extension names.
func Save(path string, doc *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc, f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	logger().Info("document saved", "path", path, "format", f.String(), "shapes", len(doc.Shapes))
	return nil
}

// Load reads the document at path.
func Load(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	doc, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	logger().Info("document loaded", "path", path, "format", f.String(), "shapes", len(doc.Shapes))
	return doc, nil
}
