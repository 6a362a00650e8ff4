package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"ehds-lens/models"
	"ehds-lens/store"
)

func newBibDB(t *testing.T) *store.Database {
	t.Helper()
	db := store.New()
	studies := []models.Study{
		{ID: 1, Authors: "Marelli, L. et al.", Year: 2023, Title: "The European health data space",
			Journal: "Lancet Public Health", DOI: "10.1016/S2468-2667(23)00046-1",
			StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics,
			QualityRating: models.QualityHigh},
		{ID: 2, Authors: "TEHDAS2", Year: 2025, Title: "Draft guideline: How to implement opt-out",
			Journal: "Policy document", StudyType: models.TypePolicyDocument,
			PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityModerate},
		{ID: 3, Authors: "TEHDAS2", Year: 2025, Title: "Guideline on SPE use",
			Journal: "Policy document", StudyType: models.TypePolicyDocument,
			PrimaryAxis: models.AxisSecondaryUsePETs, QualityRating: models.QualityModerate},
	}
	for _, s := range studies {
		require.NoError(t, db.Add(s))
	}
	return db
}

func TestFormatCitation(t *testing.T) {
	s, ok := newBibDB(t).Get(1)
	require.True(t, ok)

	apa := FormatCitation(s, "apa")
	assert.Equal(t, "Marelli, L. et al. (2023). The European health data space. Lancet Public Health. https://doi.org/10.1016/S2468-2667(23)00046-1", apa)

	vancouver := FormatCitation(s, "vancouver")
	assert.Equal(t, "Marelli, L. et al. The European health data space. Lancet Public Health. 2023.", vancouver)

	assert.Equal(t, "Marelli, L. et al. (2023)", FormatCitation(s, "chicago"))
}

func TestBibTeX(t *testing.T) {
	b := NewBibliographyGenerator(newBibDB(t), zap.NewNop())
	out := b.BibTeX()

	assert.True(t, strings.HasPrefix(out, "% EHDS Systematic Review Bibliography"))
	assert.Contains(t, out, "@article{marelli2023,")
	assert.Contains(t, out, "doi = {10.1016/S2468-2667(23)00046-1},")

	// Policy-Dokumente werden techreport, Schlüsselkollisionen bekommen Suffixe
	assert.Contains(t, out, "@techreport{tehdas22025,")
	assert.Contains(t, out, "@techreport{tehdas22025a,")
}

func TestRIS(t *testing.T) {
	b := NewBibliographyGenerator(newBibDB(t), zap.NewNop())
	out := b.RIS()

	// feste Feldreihenfolge innerhalb eines Eintrags
	first := strings.Split(out, "ER  -")[0]
	order := []string{"TY  - JOUR", "AU  - Marelli, L. et al.",
		"TI  - The European health data space", "JO  - Lancet Public Health",
		"PY  - 2023", "DO  - 10.1016/S2468-2667(23)00046-1"}
	last := -1
	for _, field := range order {
		i := strings.Index(first, field)
		require.GreaterOrEqual(t, i, 0, "missing field %q", field)
		assert.Greater(t, i, last)
		last = i
	}

	assert.Equal(t, 3, strings.Count(out, "ER  -"))
}

func TestTextBibliography(t *testing.T) {
	b := NewBibliographyGenerator(newBibDB(t), zap.NewNop())
	out, err := b.TextBibliography("apa")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# EHDS Systematic Review Bibliography (APA Style)"))

	// sortiert nach Jahr, dann Autoren; durchnummeriert
	i1 := strings.Index(out, "[1] Marelli")
	i2 := strings.Index(out, "[2] TEHDAS2")
	i3 := strings.Index(out, "[3] TEHDAS2")
	assert.True(t, i1 >= 0 && i1 < i2 && i2 < i3, "unexpected ordering: %s", out)

	_, err = b.TextBibliography("chicago")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteBibliography(t *testing.T) {
	b := NewBibliographyGenerator(newBibDB(t), zap.NewNop())
	dir := t.TempDir()

	path := filepath.Join(dir, "refs.bib")
	require.NoError(t, b.WriteBibliography(path, "bibtex"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "@article{marelli2023,")

	require.NoError(t, b.WriteBibliography(filepath.Join(dir, "refs.ris"), "ris"))

	err = b.WriteBibliography(filepath.Join(dir, "refs.txt"), "endnote")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteBibliographyLogsOnlyOnSuccess(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	b := NewBibliographyGenerator(newBibDB(t), zap.New(core))

	bad := filepath.Join(t.TempDir(), "missing", "refs.bib")
	require.Error(t, b.WriteBibliography(bad, "bibtex"))
	assert.Equal(t, 0, logs.FilterMessage("bibliography written").Len())

	good := filepath.Join(t.TempDir(), "refs.bib")
	require.NoError(t, b.WriteBibliography(good, "bibtex"))
	assert.Equal(t, 1, logs.FilterMessage("bibliography written").Len())
}
