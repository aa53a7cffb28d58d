package knowledge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hjson/hjson-go/v4"
)

// FileSchema is the JSON layout of a knowledge file. Arrays keep their
// order, which is the match order. Omitted optional sections fall back
// to the built-in values; an explicit empty array does not.
type FileSchema struct {
	Knowledge         []Entry   `json:"knowledge"`
	Synonyms          []Synonym `json:"synonyms"`
	FallbackTemplates []string  `json:"fallback_templates"`
	FallbackTags      []string  `json:"fallback_tags"`
}

// LoadFile reads and validates a knowledge file. Files ending in .hjson
// are read as HJSON; anything else as JSON.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("opening knowledge file: %w", err)
	}
	defer f.Close()

	parse := Parse
	if strings.EqualFold(filepath.Ext(path), ".hjson") {
		parse = ParseHJSON
	}
	s, err := parse(f)
	if err != nil {
		return Set{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a knowledge file from r.
func Parse(r io.Reader) (Set, error) {
	var schema FileSchema
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&schema); err != nil {
		return Set{}, fmt.Errorf("parsing knowledge JSON: %w", err)
	}
	return schema.Build()
}

// ParseHJSON decodes a knowledge file written in HJSON, which allows
// comments, unquoted keys and multiline answers.
func ParseHJSON(r io.Reader) (Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Set{}, fmt.Errorf("reading knowledge HJSON: %w", err)
	}
	var doc any
	if err := hjson.Unmarshal(data, &doc); err != nil {
		return Set{}, fmt.Errorf("parsing knowledge HJSON: %w", err)
	}
	// Re-encode so the strict JSON decoder applies the same field checks.
	normalized, err := json.Marshal(doc)
	if err != nil {
		return Set{}, fmt.Errorf("parsing knowledge HJSON: %w", err)
	}
	return Parse(bytes.NewReader(normalized))
}

// Build turns the decoded schema into a validated Set.
func (fs FileSchema) Build() (Set, error) {
	synonyms := fs.Synonyms
	if synonyms == nil {
		synonyms = defaultSynonyms
	}
	templates := fs.FallbackTemplates
	if templates == nil {
		templates = defaultTemplates
	}
	tags := fs.FallbackTags
	if tags == nil {
		tags = []string{DefaultFallbackTag}
	}
	return NewSet(fs.Knowledge, synonyms, templates, tags)
}

// Schema exports s in file form. Empty sections are written as [] so a
// reload keeps them empty instead of taking the built-in values.
func (s Set) Schema() FileSchema {
	return FileSchema{
		Knowledge:         orEmpty(s.Entries()),
		Synonyms:          orEmpty(s.Synonyms()),
		FallbackTemplates: orEmpty(s.Templates()),
		FallbackTags:      orEmpty(s.FallbackTags()),
	}
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
