package services

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"ehds-lens/models"
)

func testAssessments(t *testing.T) []models.CERQualAssessment {
	t.Helper()
	a1, err := models.NewCERQualAssessment(
		"Governance tensions between secondary use promotion and rights protection shape the debate",
		models.AxisGovernanceRightsEthics,
		[]int{1, 3},
		models.MethMinor, models.CoherenceHigh, models.AdequacyAdequate, models.RelevanceHigh,
		"convergent conclusions",
	)
	require.NoError(t, err)
	a2, err := models.NewCERQualAssessment(
		`Citizen input remains "symbolic" <script>alert(1)</script>`,
		models.AxisCitizenEngagement,
		[]int{5},
		models.MethMinor, models.CoherenceHigh, models.AdequacyLimited, models.RelevanceHigh,
		"",
	)
	require.NoError(t, err)
	return []models.CERQualAssessment{a1, a2}
}

func TestMarkdownSectionOrder(t *testing.T) {
	r := NewReportGenerator(newServiceDB(t), zap.NewNop())
	out := r.Markdown(testAssessments(t))

	sections := []string{
		"# EHDS Systematic Literature Review Analysis Report",
		"## Executive Summary",
		"## Study Selection",
		"## Distribution by Thematic Axis",
		"## Quality Assessment (MMAT)",
		"## GRADE-CERQual Summary of Findings",
		"## Key Findings",
		"## Research Gaps Identified",
		"## Testable Hypotheses",
	}
	last := -1
	for _, s := range sections {
		i := strings.Index(out, s)
		require.GreaterOrEqual(t, i, 0, "missing section %q", s)
		assert.Greater(t, i, last, "section %q out of order", s)
		last = i
	}

	assert.Contains(t, out, "**5 studies**")
	assert.Contains(t, out, "| Included in synthesis | 5 |")
	assert.Contains(t, out, "**Confidence: HIGH**")
}

func TestMarkdownTruncatesLongFindings(t *testing.T) {
	r := NewReportGenerator(newServiceDB(t), zap.NewNop())
	out := r.Markdown(testAssessments(t))

	// Zeilen der Summary-Tabelle kürzen den Befund auf 60 Zeichen
	long := testAssessments(t)[0].Finding
	assert.NotContains(t, out, "| "+long+" |")
	assert.Contains(t, out, long[:60]+"...")
}

func TestMarkdownTruncatesOnRuneBoundary(t *testing.T) {
	// das 60. Zeichen ist mehrbytig; ein Byte-Schnitt würde es zerteilen
	long := strings.Repeat("x", 59) + "äöü Spannungen zwischen Förderung und Schutz der Sekundärnutzung"
	a, err := models.NewCERQualAssessment(long, models.AxisGovernanceRightsEthics, []int{1},
		models.MethMinor, models.CoherenceHigh, models.AdequacyAdequate, models.RelevanceHigh, "")
	require.NoError(t, err)

	r := NewReportGenerator(newServiceDB(t), zap.NewNop())
	out := r.Markdown([]models.CERQualAssessment{a})

	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, strings.Repeat("x", 59)+"ä...")
}

func TestWriteReportLogsOnlyOnSuccess(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := NewReportGenerator(newServiceDB(t), zap.New(core))

	bad := filepath.Join(t.TempDir(), "missing", "report.md")
	require.Error(t, r.WriteReport(bad, "markdown", nil))
	assert.Equal(t, 0, logs.FilterMessage("report written").Len())

	good := filepath.Join(t.TempDir(), "report.md")
	require.NoError(t, r.WriteReport(good, "markdown", nil))
	assert.Equal(t, 1, logs.FilterMessage("report written").Len())
}

func TestHTMLEscapesFindingText(t *testing.T) {
	r := NewReportGenerator(newServiceDB(t), zap.NewNop())
	html, err := r.HTML(testAssessments(t))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "EHDS Systematic Literature Review Analysis Report", doc.Find("h1").Text())
	assert.Equal(t, 0, doc.Find("script").Length())

	// der entschärfte Text bleibt als Text lesbar
	assert.Contains(t, doc.Text(), `Citizen input remains "symbolic" <script>alert(1)</script>`)
}

func TestHTMLSections(t *testing.T) {
	r := NewReportGenerator(newServiceDB(t), zap.NewNop())
	html, err := r.HTML(testAssessments(t))
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	var headings []string
	doc.Find("h2").Each(func(_ int, sel *goquery.Selection) {
		headings = append(headings, sel.Text())
	})
	assert.Equal(t, []string{
		"Executive Summary",
		"Study Selection",
		"Distribution by Thematic Axis",
		"Quality Assessment (MMAT)",
		"GRADE-CERQual Summary of Findings",
		"Key Findings",
		"Research Gaps Identified",
		"Testable Hypotheses",
	}, headings)

	// Selektionstrichter: Kopfzeile plus fünf Stufen
	assert.Equal(t, 6, doc.Find("table").First().Find("tr").Length())
}

func TestJSONReport(t *testing.T) {
	r := NewReportGenerator(newServiceDB(t), zap.NewNop())
	data, err := r.JSON(testAssessments(t))
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"metadata", "statistics", "quality_summary", "grade_cerqual", "studies", "thematic_analysis"} {
		assert.Contains(t, doc, key)
	}

	var studies []models.Study
	require.NoError(t, json.Unmarshal(doc["studies"], &studies))
	assert.Len(t, studies, 5)
}

func TestWriteReport(t *testing.T) {
	r := NewReportGenerator(newServiceDB(t), zap.NewNop())
	dir := t.TempDir()

	for _, format := range []string{"markdown", "html", "json"} {
		path := filepath.Join(dir, "report."+format)
		require.NoError(t, r.WriteReport(path, format, testAssessments(t)))
	}

	err := r.WriteReport(filepath.Join(dir, "report.pdf"), "pdf", nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractionTemplate(t *testing.T) {
	out := ExtractionTemplate()
	assert.Contains(t, out, "# EHDS Study Data Extraction Form")
	for _, c := range CodingFramework {
		assert.Contains(t, out, c.Description)
	}

	path := filepath.Join(t.TempDir(), "form.md")
	require.NoError(t, WriteExtractionTemplate(path))
}
