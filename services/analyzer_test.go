package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ehds-lens/models"
)

func TestNewAnalyzerNilDatabase(t *testing.T) {
	a := NewAnalyzer(nil, zap.NewNop())
	require.NotNil(t, a.Database())
	assert.Equal(t, 0, a.Database().Len())
	assert.Empty(t, a.Search("anything"))
}

func TestLoadDefaultData(t *testing.T) {
	a := NewAnalyzer(nil, zap.NewNop())
	require.NoError(t, a.LoadDefaultData())
	assert.Equal(t, 52, a.Database().Len())

	// die Teilanalysatoren hängen nach dem Laden am neuen Bestand
	got := a.AnalyzeAllAxes()
	require.Len(t, got, 5)
	for axis, analysis := range got {
		assert.Greater(t, analysis.TotalStudies, 0, "axis %s", axis)
	}
}

func TestLoadJSONAndCSV(t *testing.T) {
	src := NewAnalyzer(newServiceDB(t), zap.NewNop())
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "db.json")
	require.NoError(t, src.ExportJSON(jsonPath))
	csvPath := filepath.Join(dir, "db.csv")
	require.NoError(t, src.ExportCSV(csvPath))

	fromJSON := NewAnalyzer(nil, zap.NewNop())
	require.NoError(t, fromJSON.LoadJSON(jsonPath))
	assert.Equal(t, 5, fromJSON.Database().Len())

	fromCSV := NewAnalyzer(nil, zap.NewNop())
	require.NoError(t, fromCSV.LoadCSV(csvPath))
	assert.Equal(t, 5, fromCSV.Database().Len())

	assert.Error(t, NewAnalyzer(nil, zap.NewNop()).LoadJSON(filepath.Join(dir, "missing.json")))
}

func TestFilterStudies(t *testing.T) {
	a := NewAnalyzer(newServiceDB(t), zap.NewNop())

	// Nullwerte filtern nicht
	assert.Len(t, a.FilterStudies(FilterOptions{}), 5)

	got := a.FilterStudies(FilterOptions{Axis: models.AxisGovernanceRightsEthics})
	assert.Len(t, got, 2)

	got = a.FilterStudies(FilterOptions{YearStart: 2024, YearEnd: 2025})
	assert.Len(t, got, 3)

	// "n/a"-Studien fallen bei jedem Qualitätsminimum heraus
	got = a.FilterStudies(FilterOptions{MinQuality: models.QualityLow})
	assert.Len(t, got, 4)
	got = a.FilterStudies(FilterOptions{MinQuality: models.QualityHigh})
	assert.Len(t, got, 2)

	got = a.FilterStudies(FilterOptions{Country: "finland", YearStart: 2024})
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].ID)

	assert.Empty(t, a.FilterStudies(FilterOptions{
		Axis: models.AxisCitizenEngagement, Country: "Finland",
	}))
}

func TestGeneratePRISMAStats(t *testing.T) {
	a := NewAnalyzer(newServiceDB(t), zap.NewNop())
	p := a.GeneratePRISMAStats()

	assert.Equal(t, 847, p.RecordsIdentified)
	assert.Equal(t, 5, p.StudiesIncluded)
	assert.Greater(t, p.FullTextAssessed, p.StudiesIncluded)
	assert.NotEmpty(t, p.ExclusionReasons)
}

func TestResearchGapsAndHypotheses(t *testing.T) {
	a := NewAnalyzer(newServiceDB(t), zap.NewNop())

	gaps := a.ResearchGaps()
	assert.Len(t, gaps, 6)

	cats := a.TestableHypotheses()
	require.Len(t, cats, 4)
	total := 0
	for _, c := range cats {
		total += len(c.Hypotheses)
	}
	assert.Equal(t, 12, total)
}
