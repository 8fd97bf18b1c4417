// Package manifest loads font requests from fonts.toml, fonts.yaml or
// fonts.json files.
//
// Every format shares one shape: a top-level "families" list whose entries
// are accepted by [fonts.Decode].
//
//	# fonts.toml
//	[[families]]
//	name = "Open Sans"
//	weights = [400, 700]
//
//	[[families]]
//	name = "Roboto"
//	italics = [[0, 400], [1, 700]]
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	ferrors "github.com/matzehuels/fontlink/pkg/errors"
	"github.com/matzehuels/fontlink/pkg/fonts"
)

// FamiliesKey is the top-level key holding the family list.
const FamiliesKey = "families"

// DefaultNames are the filenames Find looks for, in priority order.
var DefaultNames = []string{"fonts.toml", "fonts.yaml", "fonts.yml", "fonts.json"}

// Parser decodes one manifest format into an untyped document.
type Parser interface {
	// Decode parses data into a generic map.
	Decode(data []byte) (map[string]any, error)
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Type returns the format identifier ("toml", "yaml", "json").
	Type() string
}

// Parsers lists every built-in format.
var Parsers = []Parser{TOML{}, YAML{}, JSON{}}

// Result holds the families read from a manifest.
type Result struct {
	Families []fonts.Family
	Type     string // Parser type that produced this result
	Path     string // Source path, empty for in-memory input
}

// Detect finds the parser for path by its extension. Hidden files and
// empty paths are rejected with INVALID_MANIFEST.
func Detect(path string, parsers ...Parser) (Parser, error) {
	if len(parsers) == 0 {
		parsers = Parsers
	}
	if path == "" {
		return nil, ferrors.ValidateManifestFilename(path)
	}
	if err := ferrors.ValidateManifestFilename(filepath.Base(path)); err != nil {
		return nil, err
	}
	name := strings.ToLower(filepath.Base(path))
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, ferrors.New(ferrors.ErrCodeInvalidFormat, "unsupported manifest format: %s", filepath.Base(path))
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Result, error) {
	p, err := Detect(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ferrors.Wrap(ferrors.ErrCodeFileNotFound, err, "manifest not found: %s", path)
	}
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	res, err := Parse(p, data)
	if err != nil {
		return nil, err
	}
	res.Path = path
	return res, nil
}

// Parse decodes data with p and converts the families list.
func Parse(p Parser, data []byte) (*Result, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ferrors.New(ferrors.ErrCodeInvalidManifest, "%s manifest is empty", p.Type())
	}
	doc, err := p.Decode(data)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidManifest, err, "parse %s manifest", p.Type())
	}
	for key := range doc {
		if key != FamiliesKey {
			return nil, ferrors.New(ferrors.ErrCodeInvalidManifest, "unexpected top-level key %q", key)
		}
	}
	families, err := fonts.Decode(doc[FamiliesKey])
	if err != nil {
		return nil, err
	}
	return &Result{Families: families, Type: p.Type()}, nil
}

// Find returns the first manifest from DefaultNames present in dir.
func Find(dir string) (string, error) {
	for _, name := range DefaultNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", ferrors.New(ferrors.ErrCodeFileNotFound, "no font manifest (%s) in %s", strings.Join(DefaultNames, ", "), dir)
}
