package services

import (
	"fmt"

	"go.uber.org/zap"

	"ehds-lens/models"
	"ehds-lens/store"
)

// mmatCriteria holds the MMAT 2018 checklists per study methodology.
// Types without a dedicated checklist fall back to the conceptual one.
var mmatCriteria = map[models.StudyType][]string{
	models.TypeQualitative: {
		"Is the qualitative approach appropriate?",
		"Are data collection methods adequate?",
		"Are findings adequately derived from data?",
		"Is interpretation sufficiently substantiated?",
		"Is there coherence between sources, collection, analysis?",
	},
	models.TypeQuantitative: {
		"Is the sampling strategy relevant?",
		"Is the sample representative?",
		"Are measurements appropriate?",
		"Is nonresponse bias low?",
		"Is statistical analysis appropriate?",
	},
	models.TypeMixedMethods: {
		"Is there adequate rationale for mixed methods?",
		"Are different components effectively integrated?",
		"Are outputs adequately interpreted?",
		"Are divergences addressed?",
		"Do components adhere to quality criteria?",
	},
	models.TypeConceptual: {
		"Is the research question clearly stated?",
		"Is there explicit methodology?",
		"Is argumentation logically structured?",
		"Are counterarguments engaged?",
		"Are limitations acknowledged?",
	},
}

// QualityAssessor applies MMAT-based quality assessment to studies.
type QualityAssessor struct {
	db     *store.Database
	logger *zap.Logger
}

// NewQualityAssessor creates an assessor bound to a study database.
func NewQualityAssessor(db *store.Database, logger *zap.Logger) *QualityAssessor {
	return &QualityAssessor{db: db, logger: logger}
}

// Criteria returns the MMAT checklist for a study type.
func (q *QualityAssessor) Criteria(t models.StudyType) []string {
	if c, ok := mmatCriteria[t]; ok {
		return c
	}
	return mmatCriteria[models.TypeConceptual]
}

// AssessCriteria rates a criterion checklist: percentage of criteria met
// mapped onto the three quality levels. An empty checklist is a defined
// edge case and yields NOT_APPLICABLE at 0%.
func AssessCriteria(criteriaMet []bool) (models.QualityRating, float64) {
	if len(criteriaMet) == 0 {
		return models.QualityNotApplicable, 0
	}
	met := 0
	for _, ok := range criteriaMet {
		if ok {
			met++
		}
	}
	score := float64(met) / float64(len(criteriaMet)) * 100

	switch {
	case score >= 80:
		return models.QualityHigh, score
	case score >= 60:
		return models.QualityModerate, score
	}
	return models.QualityLow, score
}

// AssessStudy rates the identified study against the checklist.
// Unknown study ids are a not-found condition, not a validation error.
func (q *QualityAssessor) AssessStudy(studyID int, criteriaMet []bool) (models.QualityRating, float64, error) {
	if _, ok := q.db.Get(studyID); !ok {
		return "", 0, fmt.Errorf("%w: %d", store.ErrStudyNotFound, studyID)
	}
	rating, score := AssessCriteria(criteriaMet)
	return rating, score, nil
}

// QualityBucket is one quality level with count and share.
type QualityBucket struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// TypeQuality is the quality distribution within one study type.
type TypeQuality struct {
	Total    int `json:"total"`
	High     int `json:"high"`
	Moderate int `json:"moderate"`
	Low      int `json:"low"`
}

// QualitySummary aggregates quality ratings over the peer-reviewed subset.
type QualitySummary struct {
	TotalAssessed int                              `json:"total_assessed"`
	High          QualityBucket                    `json:"high"`
	Moderate      QualityBucket                    `json:"moderate"`
	Low           QualityBucket                    `json:"low"`
	ByStudyType   map[models.StudyType]TypeQuality `json:"by_study_type,omitempty"`
}

// Summary computes the quality distribution over all peer-reviewed studies
// (policy documents are grey literature and excluded).
func (q *QualityAssessor) Summary() QualitySummary {
	var peerReviewed []models.Study
	for _, s := range q.db.Studies() {
		if s.PeerReviewed() {
			peerReviewed = append(peerReviewed, s)
		}
	}

	summary := QualitySummary{TotalAssessed: len(peerReviewed)}
	if len(peerReviewed) == 0 {
		return summary
	}

	counts := make(map[models.QualityRating]int)
	for _, s := range peerReviewed {
		counts[s.QualityRating]++
	}
	bucket := func(r models.QualityRating) QualityBucket {
		return QualityBucket{
			Count:      counts[r],
			Percentage: float64(counts[r]) / float64(len(peerReviewed)) * 100,
		}
	}
	summary.High = bucket(models.QualityHigh)
	summary.Moderate = bucket(models.QualityModerate)
	summary.Low = bucket(models.QualityLow)

	summary.ByStudyType = make(map[models.StudyType]TypeQuality)
	for _, t := range models.AllStudyTypes() {
		var tq TypeQuality
		for _, s := range peerReviewed {
			if s.StudyType != t {
				continue
			}
			tq.Total++
			switch s.QualityRating {
			case models.QualityHigh:
				tq.High++
			case models.QualityModerate:
				tq.Moderate++
			case models.QualityLow:
				tq.Low++
			}
		}
		if tq.Total > 0 {
			summary.ByStudyType[t] = tq
		}
	}
	return summary
}
