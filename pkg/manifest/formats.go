package manifest

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// TOML parses fonts.toml files.
type TOML struct{}

func (TOML) Type() string { return "toml" }

func (TOML) Supports(name string) bool { return strings.HasSuffix(name, ".toml") }

func (TOML) Decode(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// YAML parses fonts.yaml and fonts.yml files.
type YAML struct{}

func (YAML) Type() string { return "yaml" }

func (YAML) Supports(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

func (YAML) Decode(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// JSON parses fonts.json files. Numbers are kept as json.Number so integer
// weights are not routed through float64.
type JSON struct{}

func (JSON) Type() string { return "json" }

func (JSON) Supports(name string) bool { return strings.HasSuffix(name, ".json") }

func (JSON) Decode(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
