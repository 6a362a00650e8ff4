package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ehds-lens/models"
	"ehds-lens/store"
)

func newServiceDB(t *testing.T) *store.Database {
	t.Helper()
	db := store.New()
	studies := []models.Study{
		{ID: 1, Authors: "Abel, A.", Year: 2022, Title: "Trust in health data governance",
			Country: "Germany", StudyType: models.TypeQualitative,
			PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh},
		{ID: 2, Authors: "Berg, B.", Year: 2023, Title: "Federated learning benchmarks",
			Country: "Finland", StudyType: models.TypeQuantitative,
			PrimaryAxis: models.AxisFederatedLearningAI, QualityRating: models.QualityModerate},
		{ID: 3, Authors: "Council", Year: 2024, Title: "Trust and opt-out policy brief",
			Country: "EU", StudyType: models.TypePolicyDocument,
			PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityNotApplicable},
		{ID: 4, Authors: "Dahl, D.", Year: 2024, Title: "HDAB capacity in the Nordics",
			Country: "Finland", StudyType: models.TypeMixedMethods,
			PrimaryAxis: models.AxisNationalImplementation, QualityRating: models.QualityLow},
		{ID: 5, Authors: "Ek, E.", Year: 2025, Title: "Citizen juries on secondary use",
			Country: "Germany", StudyType: models.TypeQualitative,
			PrimaryAxis: models.AxisCitizenEngagement, QualityRating: models.QualityHigh},
	}
	for _, s := range studies {
		require.NoError(t, db.Add(s))
	}
	return db
}

func TestAssessCriteria(t *testing.T) {
	cases := []struct {
		name      string
		met       []bool
		wantScore float64
		want      models.QualityRating
	}{
		{"empty checklist", nil, 0, models.QualityNotApplicable},
		{"all met", []bool{true, true, true, true, true}, 100, models.QualityHigh},
		{"four of five", []bool{true, true, true, true, false}, 80, models.QualityHigh},
		{"three of five", []bool{true, true, true, false, false}, 60, models.QualityModerate},
		{"two of five", []bool{true, true, false, false, false}, 40, models.QualityLow},
		{"none met", []bool{false, false, false, false, false}, 0, models.QualityLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rating, score := AssessCriteria(tc.met)
			assert.Equal(t, tc.want, rating)
			assert.InDelta(t, tc.wantScore, score, 0.001)
		})
	}
}

func TestAssessStudy(t *testing.T) {
	q := NewQualityAssessor(newServiceDB(t), zap.NewNop())

	rating, score, err := q.AssessStudy(1, []bool{true, true, true, true, false})
	require.NoError(t, err)
	assert.Equal(t, models.QualityHigh, rating)
	assert.InDelta(t, 80, score, 0.001)

	_, _, err = q.AssessStudy(99, []bool{true})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrStudyNotFound)
}

func TestCriteriaFallback(t *testing.T) {
	q := NewQualityAssessor(newServiceDB(t), zap.NewNop())

	require.Len(t, q.Criteria(models.TypeQualitative), 5)
	// Typen ohne eigene Checkliste erhalten die konzeptionelle
	assert.Equal(t, q.Criteria(models.TypeConceptual), q.Criteria(models.TypePolicyDocument))
}

func TestQualitySummary(t *testing.T) {
	q := NewQualityAssessor(newServiceDB(t), zap.NewNop())
	sum := q.Summary()

	// das Policy-Dokument zählt nicht zur bewerteten Menge
	assert.Equal(t, 4, sum.TotalAssessed)
	assert.Equal(t, 2, sum.High.Count)
	assert.InDelta(t, 50, sum.High.Percentage, 0.001)
	assert.Equal(t, 1, sum.Moderate.Count)
	assert.Equal(t, 1, sum.Low.Count)

	tq := sum.ByStudyType[models.TypeQualitative]
	assert.Equal(t, 2, tq.Total)
	assert.Equal(t, 2, tq.High)
}

func TestQualitySummaryEmpty(t *testing.T) {
	q := NewQualityAssessor(store.New(), zap.NewNop())
	sum := q.Summary()
	assert.Equal(t, 0, sum.TotalAssessed)
	assert.Nil(t, sum.ByStudyType)
}
