// Package annotate wraps a third-party NLP pipeline behind a narrow interface.
// The rule-based analysis path depends only on the token stream and the named
// entity spans exposed here, so the underlying engine can be swapped or faked.
package annotate

import (
	"fmt"

	prose "github.com/jdkato/prose/v2"
)

// Entity is a named-entity span found in the text, e.g. {Text: "Google", Label: "ORG"}.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Document is the annotated form of a piece of text
type Document struct {
	Tokens   []string `json:"tokens"`
	Entities []Entity `json:"entities"`
}

// ParsedResume pairs the raw extracted text with its annotated form.
// It is created once per request and discarded with the request;
// Doc is nil on the LLM path, which works from raw text alone.
type ParsedResume struct {
	RawText string
	Doc     *Document
}

// Annotator turns raw text into an annotated Document
type Annotator interface {
	Annotate(text string) (*Document, error)
}

// ProseAnnotator backs Annotator with the prose NLP pipeline (tokenization,
// tagging, named-entity recognition). The model is safe for concurrent use.
type ProseAnnotator struct{}

// New constructs the prose-backed annotator and verifies the underlying model
// loads. The check runs once at startup so a broken NLP installation fails
// fast instead of failing on the first request.
func New() (*ProseAnnotator, error) {
	if _, err := prose.NewDocument(""); err != nil {
		return nil, fmt.Errorf("nlp pipeline unavailable: %w", err)
	}
	return &ProseAnnotator{}, nil
}

// Annotate runs the full prose pipeline over text
func (a *ProseAnnotator) Annotate(text string) (*Document, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("failed to annotate text: %w", err)
	}

	out := &Document{}
	for _, tok := range doc.Tokens() {
		out.Tokens = append(out.Tokens, tok.Text)
	}
	for _, ent := range doc.Entities() {
		out.Entities = append(out.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	return out, nil
}
