package dataset

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"ehds-lens/models"
)

//go:embed findings.yaml
var findingsYAML []byte

type findingEntry struct {
	Finding         string                 `yaml:"finding"`
	Axis            models.ThematicAxis    `yaml:"axis"`
	StudiesFrom     int                    `yaml:"studies_from"`
	StudiesTo       int                    `yaml:"studies_to"`
	MethLimitations models.MethLimitations `yaml:"methodological_limitations"`
	Coherence       models.Coherence       `yaml:"coherence"`
	Adequacy        models.Adequacy        `yaml:"adequacy"`
	Relevance       models.Relevance       `yaml:"relevance"`
	Explanation     string                 `yaml:"explanation"`
}

type findingsDocument struct {
	Findings []findingEntry `yaml:"findings"`
}

// Findings liefert die fünf Referenzbefunde des Reviews als fertig
// bewertete CERQual-Assessments.
func Findings() ([]models.CERQualAssessment, error) {
	var doc findingsDocument
	if err := yaml.Unmarshal(findingsYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse bundled findings: %w", err)
	}

	out := make([]models.CERQualAssessment, 0, len(doc.Findings))
	for _, e := range doc.Findings {
		ids := make([]int, 0, e.StudiesTo-e.StudiesFrom+1)
		for id := e.StudiesFrom; id <= e.StudiesTo; id++ {
			ids = append(ids, id)
		}
		a, err := models.NewCERQualAssessment(
			e.Finding, e.Axis, ids,
			e.MethLimitations, e.Coherence, e.Adequacy, e.Relevance,
			e.Explanation,
		)
		if err != nil {
			return nil, fmt.Errorf("bundled finding %q: %w", e.Finding, err)
		}
		out = append(out, a)
	}
	return out, nil
}
