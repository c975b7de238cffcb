package features

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/career-forge/internal/annotate"
)

// ExtractedFeatures categorizes what was found in a resume. Each list is
// de-duplicated by exact string and preserves first-occurrence order.
type ExtractedFeatures struct {
	Skills   map[string][]string `json:"skills"`
	Entities map[string][]string `json:"entities"`
}

// entityLabels is the allow-list of named-entity types worth collecting:
// organizations, geo-political locations, and dates.
var entityLabels = map[string]bool{
	"ORG":  true,
	"GPE":  true,
	"DATE": true,
}

// pattern is one taxonomy phrase tokenized by the annotator and lowercased,
// tagged with the category it belongs to.
type pattern struct {
	category string
	tokens   []string
}

// Extractor matches the skill taxonomy against annotated resume text.
// Construction tokenizes every taxonomy phrase with the same annotator that
// processes documents, so phrase and document tokens always line up.
// An Extractor is read-only after construction and safe for concurrent use.
type Extractor struct {
	patterns []pattern
}

// NewExtractor compiles the taxonomy into token patterns.
func NewExtractor(taxonomy Taxonomy, annotator annotate.Annotator) (*Extractor, error) {
	categories := make([]string, 0, len(taxonomy))
	for category := range taxonomy {
		categories = append(categories, category)
	}
	// Stable pattern order keeps extraction deterministic.
	sort.Strings(categories)

	e := &Extractor{}
	for _, category := range categories {
		for _, phrase := range taxonomy[category] {
			doc, err := annotator.Annotate(phrase)
			if err != nil {
				return nil, fmt.Errorf("failed to compile taxonomy phrase %q: %w", phrase, err)
			}
			tokens := make([]string, len(doc.Tokens))
			for i, tok := range doc.Tokens {
				tokens[i] = strings.ToLower(tok)
			}
			if len(tokens) == 0 {
				continue
			}
			e.patterns = append(e.patterns, pattern{category: category, tokens: tokens})
		}
	}
	return e, nil
}

// Extract finds taxonomy skills and interesting named entities in an
// annotated resume. The surface form actually present in the text is
// recorded, not the canonical taxonomy form. Deterministic: the same
// document always yields the same features in the same order.
func (e *Extractor) Extract(resume *annotate.ParsedResume) ExtractedFeatures {
	found := ExtractedFeatures{
		Skills:   make(map[string][]string),
		Entities: make(map[string][]string),
	}
	if resume == nil || resume.Doc == nil {
		return found
	}

	lowered := make([]string, len(resume.Doc.Tokens))
	for i, tok := range resume.Doc.Tokens {
		lowered[i] = strings.ToLower(tok)
	}

	seenSkills := make(map[string]map[string]bool)
	for i := range lowered {
		for _, p := range e.patterns {
			if !matchAt(lowered, i, p.tokens) {
				continue
			}
			surface := strings.Join(resume.Doc.Tokens[i:i+len(p.tokens)], " ")
			if seenSkills[p.category] == nil {
				seenSkills[p.category] = make(map[string]bool)
			}
			if seenSkills[p.category][surface] {
				continue
			}
			seenSkills[p.category][surface] = true
			found.Skills[p.category] = append(found.Skills[p.category], surface)
		}
	}

	seenEntities := make(map[string]map[string]bool)
	for _, ent := range resume.Doc.Entities {
		if !entityLabels[ent.Label] {
			continue
		}
		if seenEntities[ent.Label] == nil {
			seenEntities[ent.Label] = make(map[string]bool)
		}
		if seenEntities[ent.Label][ent.Text] {
			continue
		}
		seenEntities[ent.Label][ent.Text] = true
		found.Entities[ent.Label] = append(found.Entities[ent.Label], ent.Text)
	}

	return found
}

// matchAt reports whether the pattern tokens appear at position i.
func matchAt(tokens []string, i int, pattern []string) bool {
	if i+len(pattern) > len(tokens) {
		return false
	}
	for j, want := range pattern {
		if tokens[i+j] != want {
			return false
		}
	}
	return true
}
