package knowledge

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_OptionalSectionsUseDefaults(t *testing.T) {
	s, err := Parse(strings.NewReader(`{
		"knowledge": [
			{"key": "сад", "answer": "a", "tags": ["x"], "score": 0.88, "verdict": "RECOMMENDED"}
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, Default().Synonyms(), s.Synonyms())
	assert.Equal(t, Default().Templates(), s.Templates())
	assert.Equal(t, []string{DefaultFallbackTag}, s.FallbackTags())
}

func TestParse_ExplicitEmptySynonyms(t *testing.T) {
	s, err := Parse(strings.NewReader(`{
		"knowledge": [{"key": "k", "answer": "a", "score": 0.5, "verdict": "UNDER_REVIEW"}],
		"synonyms": []
	}`))
	require.NoError(t, err)
	assert.Empty(t, s.Synonyms())
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"knowledge": [], "extra": 1}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing knowledge JSON")
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"knowledge": [{"key": "k", "answer": "", "score": 2, "verdict": "RECOMMENDED"}]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKnowledge)
}

func TestLoadFile_RoundTripKeepsOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(Default().Schema()))

	path := filepath.Join(t.TempDir(), "garden.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Entries(), loaded.Entries())
	assert.Equal(t, Default().Synonyms(), loaded.Synonyms())
}

func TestLoadFile_RoundTripKeepsEmptySections(t *testing.T) {
	set, err := NewSet(Default().Entries(), []Synonym{}, Default().Templates(), []string{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(set.Schema()))
	assert.Contains(t, buf.String(), `"synonyms":[]`)
	assert.Contains(t, buf.String(), `"fallback_tags":[]`)

	path := filepath.Join(t.TempDir(), "garden.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Empty(t, loaded.Synonyms())
	assert.Empty(t, loaded.FallbackTags())
	assert.Equal(t, Default().Templates(), loaded.Templates())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseHJSON_CommentsAndQuotelessValues(t *testing.T) {
	s, err := ParseHJSON(strings.NewReader(`{
		# the only concept
		knowledge: [
			{
				key: Грядка
				answer: Грядка — единица Сада.
				tags: ["место", "единица"]
				score: 0.91
				verdict: HIGHLY_RECOMMENDED
			}
		]
		synonyms: []
	}`))
	require.NoError(t, err)

	e, ok := s.Lookup("грядка")
	require.True(t, ok)
	assert.Equal(t, "Грядка — единица Сада.", e.Answer)
	assert.Equal(t, []string{"место", "единица"}, e.Tags)
	assert.Equal(t, VerdictHighlyRecommended, e.Verdict)
	assert.Empty(t, s.Synonyms())
	assert.Equal(t, Default().Templates(), s.Templates())
}

func TestParseHJSON_UnknownField(t *testing.T) {
	_, err := ParseHJSON(strings.NewReader(`{knowledge: [], extra: 1}`))
	require.Error(t, err)
}

func TestLoadFile_HJSONByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.hjson")
	require.NoError(t, os.WriteFile(path, []byte(`{
		// built-in synonyms apply
		knowledge: [
			{key: "сад", answer: "a", score: 0.88, verdict: "RECOMMENDED"}
		]
	}`), 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
	assert.Equal(t, Default().Synonyms(), loaded.Synonyms())
}
