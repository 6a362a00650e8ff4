package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"ehds-lens/models"
	"ehds-lens/store"
)

// CERQualAssessor applies the GRADE-CERQual methodology to review findings.
// Assessments are caller-supplied data; the assessor only scores and keeps
// an ordered history for batch summarization.
type CERQualAssessor struct {
	db          *store.Database
	logger      *zap.Logger
	assessments []models.CERQualAssessment
}

// NewCERQualAssessor creates an assessor bound to a study database.
func NewCERQualAssessor(db *store.Database, logger *zap.Logger) *CERQualAssessor {
	return &CERQualAssessor{db: db, logger: logger}
}

// AssessFinding scores a finding from its four component gradings and
// retains the resulting assessment.
func (c *CERQualAssessor) AssessFinding(
	finding string,
	axis models.ThematicAxis,
	studyIDs []int,
	meth models.MethLimitations,
	coherence models.Coherence,
	adequacy models.Adequacy,
	relevance models.Relevance,
	explanation string,
) (models.CERQualAssessment, error) {
	a, err := models.NewCERQualAssessment(finding, axis, studyIDs, meth, coherence, adequacy, relevance, explanation)
	if err != nil {
		return models.CERQualAssessment{}, err
	}
	c.assessments = append(c.assessments, a)
	c.logger.Debug("finding assessed",
		zap.String("finding", finding),
		zap.String("confidence", string(a.OverallConfidence)))
	return a, nil
}

// Assessments returns the retained assessments in assessment order.
func (c *CERQualAssessor) Assessments() []models.CERQualAssessment {
	out := make([]models.CERQualAssessment, len(c.assessments))
	copy(out, c.assessments)
	return out
}

// SummaryRow is one line of the GRADE-CERQual summary of findings table.
type SummaryRow struct {
	Finding         string `json:"finding"`
	Studies         string `json:"studies"`
	MethLimitations string `json:"meth_limitations"`
	Coherence       string `json:"coherence"`
	Adequacy        string `json:"adequacy"`
	Relevance       string `json:"relevance"`
	Confidence      string `json:"confidence"`
	Explanation     string `json:"explanation"`
}

// SummaryTable renders assessments as summary-of-findings rows, one per
// assessment, with the confidence level upper-cased for display.
func SummaryTable(assessments []models.CERQualAssessment) []SummaryRow {
	rows := make([]SummaryRow, 0, len(assessments))
	for _, a := range assessments {
		rows = append(rows, SummaryRow{
			Finding:         a.Finding,
			Studies:         fmt.Sprintf("n=%d", len(a.SupportingStudies)),
			MethLimitations: string(a.MethLimitations),
			Coherence:       string(a.Coherence),
			Adequacy:        string(a.Adequacy),
			Relevance:       string(a.Relevance),
			Confidence:      strings.ToUpper(string(a.OverallConfidence)),
			Explanation:     a.Explanation,
		})
	}
	return rows
}
