package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ehds-lens/models"
)

func testStudies() []models.Study {
	return []models.Study{
		{ID: 1, Authors: "Abel, A.", Year: 2022, Title: "Consent models for health data",
			Journal: "J Med Ethics", Country: "Germany",
			StudyType: models.TypeQualitative, PrimaryAxis: models.AxisGovernanceRightsEthics,
			QualityRating: models.QualityHigh, KeyFindings: "Ethical tensions dominate"},
		{ID: 2, Authors: "Berg, B.", Year: 2023, Title: "Federated analytics pilots",
			Journal: "NPJ Digit Med", Country: "Finland",
			StudyType: models.TypeQuantitative, PrimaryAxis: models.AxisFederatedLearningAI,
			QualityRating: models.QualityModerate},
		{ID: 3, Authors: "Council", Year: 2024, Title: "Opt-out policy brief",
			Journal: "Policy report", Country: "EU",
			StudyType: models.TypePolicyDocument, PrimaryAxis: models.AxisGovernanceRightsEthics,
			QualityRating: models.QualityNotApplicable},
		{ID: 4, Authors: "Dahl, D.", Year: 2024, Title: "HDAB readiness in the Nordics",
			Journal: "Health Policy", Country: "Finland",
			StudyType: models.TypeMixedMethods, PrimaryAxis: models.AxisNationalImplementation,
			QualityRating: models.QualityLow},
		{ID: 5, Authors: "Ek, E.", Year: 2025, Title: "Citizen juries on secondary use",
			Journal: "BMC Med Ethics", Country: "Germany",
			StudyType: models.TypeQualitative, PrimaryAxis: models.AxisCitizenEngagement,
			QualityRating: models.QualityHigh},
	}
}

func newTestDB(t *testing.T) *Database {
	t.Helper()
	db := New()
	for _, s := range testStudies() {
		require.NoError(t, db.Add(s))
	}
	return db
}

func TestAddRejectsDuplicateID(t *testing.T) {
	db := newTestDB(t)
	err := db.Add(testStudies()[0])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 5, db.Len())
}

func TestAddRejectsInvalidStudy(t *testing.T) {
	db := New()
	err := db.Add(models.Study{ID: 1, StudyType: "survey", PrimaryAxis: models.AxisCitizenEngagement})
	assert.Error(t, err)
	assert.Equal(t, 0, db.Len())
}

func TestAddAppliesDefaults(t *testing.T) {
	db := New()
	require.NoError(t, db.Add(models.Study{
		ID: 9, Authors: "X", Year: 2024, Title: "t",
		StudyType: models.TypeConceptual, PrimaryAxis: models.AxisCitizenEngagement,
	}))
	s, ok := db.Get(9)
	require.True(t, ok)
	assert.Equal(t, models.QualityNotApplicable, s.QualityRating)
	assert.Equal(t, models.FocusBoth, s.EHDSFocus)
}

func TestGetAndRemove(t *testing.T) {
	db := newTestDB(t)

	s, ok := db.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Berg, B.", s.Authors)

	_, ok = db.Get(99)
	assert.False(t, ok)

	assert.True(t, db.Remove(2))
	assert.False(t, db.Remove(2))
	assert.Equal(t, 4, db.Len())

	// Index bleibt nach dem Entfernen konsistent
	s, ok = db.Get(5)
	require.True(t, ok)
	assert.Equal(t, "Ek, E.", s.Authors)

	ids := make([]int, 0, 4)
	for _, s := range db.Studies() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int{1, 3, 4, 5}, ids)
}

func TestFilterByYear(t *testing.T) {
	db := newTestDB(t)
	got := db.FilterByYear(2024, 2025)
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].ID)
	assert.Equal(t, 4, got[1].ID)
	assert.Equal(t, 5, got[2].ID)
}

func TestFilterByQuality(t *testing.T) {
	db := newTestDB(t)

	high := db.FilterByQuality(models.QualityHigh)
	require.Len(t, high, 2)

	// "n/a"-Studien tauchen nie auf, auch nicht beim Minimum LOW
	all := db.FilterByQuality(models.QualityLow)
	require.Len(t, all, 4)
	for _, s := range all {
		assert.NotEqual(t, models.QualityNotApplicable, s.QualityRating)
	}

	// "n/a" als Minimum zählt wie LOW
	asNA := db.FilterByQuality(models.QualityNotApplicable)
	assert.Equal(t, all, asNA)
}

func TestFilterByTypeAndCountry(t *testing.T) {
	db := newTestDB(t)
	assert.Len(t, db.FilterByType(models.TypeQualitative), 2)
	assert.Len(t, db.FilterByCountry("germany"), 2)
	assert.Empty(t, db.FilterByCountry("France"))
}

func TestSearchCaseInsensitive(t *testing.T) {
	db := newTestDB(t)

	got := db.Search("ETHICAL")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)

	// Treffer über Titel, Autoren und Key Findings
	assert.Len(t, db.Search("consent models"), 1)
	assert.Len(t, db.Search("berg"), 1)
	assert.Empty(t, db.Search("blockchain"))
}

func TestStatistics(t *testing.T) {
	db := newTestDB(t)
	stats := db.Statistics()

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 4, stats.PeerReviewed)
	assert.Equal(t, [2]int{2022, 2025}, stats.YearRange)

	// Jahre aufsteigend
	years := make([]int, 0, len(stats.ByYear))
	for _, yc := range stats.ByYear {
		years = append(years, yc.Year)
	}
	assert.Equal(t, []int{2022, 2023, 2024, 2025}, years)

	// Länder absteigend nach Anzahl, Einfügereihenfolge als Tie-Break
	require.Len(t, stats.ByCountry, 3)
	assert.Equal(t, CountryCount{Country: "Germany", Count: 2}, stats.ByCountry[0])
	assert.Equal(t, CountryCount{Country: "Finland", Count: 2}, stats.ByCountry[1])
	assert.Equal(t, CountryCount{Country: "EU", Count: 1}, stats.ByCountry[2])

	assert.Equal(t, 2, stats.ByAxis[models.AxisGovernanceRightsEthics])
	assert.Equal(t, 2, stats.ByQuality[models.QualityHigh])
	assert.Equal(t, 1, stats.ByType[models.TypePolicyDocument])
}

func TestStatisticsEmpty(t *testing.T) {
	stats := New().Statistics()
	assert.Equal(t, Statistics{}, stats)
}

func TestComputeStatisticsOnFilteredSubset(t *testing.T) {
	db := newTestDB(t)
	stats := ComputeStatistics(db.FilterByYear(2024, 2025))
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, [2]int{2024, 2025}, stats.YearRange)
}
