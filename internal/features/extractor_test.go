package features

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-forge/internal/annotate"
)

// fakeAnnotator splits on whitespace and returns scripted entities, keeping
// extraction tests independent of the real NLP model.
type fakeAnnotator struct {
	entities []annotate.Entity
}

func (f *fakeAnnotator) Annotate(text string) (*annotate.Document, error) {
	return &annotate.Document{
		Tokens:   strings.Fields(text),
		Entities: f.entities,
	}, nil
}

func testTaxonomy() Taxonomy {
	return Taxonomy{
		"PROGRAMMING":     {"Python", "Go", "Machine Learning"},
		SoftSkillCategory: {"Leadership"},
	}
}

func parse(t *testing.T, annotator annotate.Annotator, text string) *annotate.ParsedResume {
	t.Helper()
	doc, err := annotator.Annotate(text)
	require.NoError(t, err)
	return &annotate.ParsedResume{RawText: text, Doc: doc}
}

func TestExtractor_MatchesPhrasesCaseInsensitively(t *testing.T) {
	annotator := &fakeAnnotator{}
	extractor, err := NewExtractor(testTaxonomy(), annotator)
	require.NoError(t, err)

	found := extractor.Extract(parse(t, annotator, "Experienced in PYTHON and machine learning projects"))

	assert.Equal(t, []string{"PYTHON", "machine learning"}, found.Skills["PROGRAMMING"])
}

func TestExtractor_RecordsSurfaceFormNotCanonicalForm(t *testing.T) {
	annotator := &fakeAnnotator{}
	extractor, err := NewExtractor(testTaxonomy(), annotator)
	require.NoError(t, err)

	found := extractor.Extract(parse(t, annotator, "strong leadership skills"))

	assert.Equal(t, []string{"leadership"}, found.Skills[SoftSkillCategory])
}

func TestExtractor_DedupesByExactStringPerCategory(t *testing.T) {
	annotator := &fakeAnnotator{}
	extractor, err := NewExtractor(testTaxonomy(), annotator)
	require.NoError(t, err)

	// Same exact string twice collapses; a different surface form of the
	// same skill is kept as its own entry.
	found := extractor.Extract(parse(t, annotator, "Python then Python then python"))

	assert.Equal(t, []string{"Python", "python"}, found.Skills["PROGRAMMING"])
}

func TestExtractor_IsDeterministicAndIdempotent(t *testing.T) {
	annotator := &fakeAnnotator{
		entities: []annotate.Entity{
			{Text: "Google", Label: "ORG"},
			{Text: "London", Label: "GPE"},
		},
	}
	extractor, err := NewExtractor(testTaxonomy(), annotator)
	require.NoError(t, err)

	resume := parse(t, annotator, "Go and Python and Leadership at Google in London")
	first := extractor.Extract(resume)
	second := extractor.Extract(resume)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Go", "Python"}, first.Skills["PROGRAMMING"])
}

func TestExtractor_CollectsOnlyAllowListedEntities(t *testing.T) {
	annotator := &fakeAnnotator{
		entities: []annotate.Entity{
			{Text: "Google", Label: "ORG"},
			{Text: "Google", Label: "ORG"},
			{Text: "2019", Label: "DATE"},
			{Text: "Ada Lovelace", Label: "PERSON"},
		},
	}
	extractor, err := NewExtractor(testTaxonomy(), annotator)
	require.NoError(t, err)

	found := extractor.Extract(parse(t, annotator, "worked at Google since 2019"))

	assert.Equal(t, []string{"Google"}, found.Entities["ORG"])
	assert.Equal(t, []string{"2019"}, found.Entities["DATE"])
	assert.NotContains(t, found.Entities, "PERSON")
}

func TestExtractor_NoDocYieldsEmptyFeatures(t *testing.T) {
	annotator := &fakeAnnotator{}
	extractor, err := NewExtractor(testTaxonomy(), annotator)
	require.NoError(t, err)

	found := extractor.Extract(&annotate.ParsedResume{RawText: "text without annotation"})

	assert.Empty(t, found.Skills)
	assert.Empty(t, found.Entities)
}
