package services

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"ehds-lens/models"
	"ehds-lens/store"
)

const toolVersion = "ehds-lens v1.0.0"

// ReportGenerator renders the analysis as Markdown, HTML or JSON.
// It is stateless between calls; assessments are supplied by the caller.
type ReportGenerator struct {
	db       *store.Database
	thematic *ThematicAnalyzer
	quality  *QualityAssessor
	logger   *zap.Logger
}

// NewReportGenerator creates a generator bound to a study database.
func NewReportGenerator(db *store.Database, logger *zap.Logger) *ReportGenerator {
	return &ReportGenerator{
		db:       db,
		thematic: NewThematicAnalyzer(db, logger),
		quality:  NewQualityAssessor(db, logger),
		logger:   logger,
	}
}

// axisDisplay turns an axis value into a title-cased heading.
func axisDisplay(axis models.ThematicAxis) string {
	words := strings.Split(string(axis), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// funnelRow is one stage of the PRISMA selection funnel.
type funnelRow struct {
	Stage   string
	Records string
}

// axisRow is one line of the axis-distribution table.
type axisRow struct {
	Axis       string
	Count      int
	Percentage float64
}

// axisFindings groups the assessments of one axis for the narrative section.
type axisFindings struct {
	Axis        string
	Assessments []models.CERQualAssessment
}

// reportData feeds both the Markdown builder and the HTML template.
type reportData struct {
	Generated  string
	Tool       string
	Stats      store.Statistics
	Funnel     []funnelRow
	AxisRows   []axisRow
	Quality    QualitySummary
	GradeRows  []SummaryRow
	Findings   []axisFindings
	Gaps       []string
	Hypotheses []HypothesisCategory
}

func (r *ReportGenerator) buildData(assessments []models.CERQualAssessment) reportData {
	stats := r.db.Statistics()
	prisma := prismaStats(stats.Total)

	data := reportData{
		Generated: time.Now().Format("2006-01-02 15:04"),
		Tool:      toolVersion,
		Stats:     stats,
		Funnel: []funnelRow{
			{Stage: "Records identified", Records: fmt.Sprintf("%d", prisma.RecordsIdentified)},
			{Stage: "After duplicates", Records: fmt.Sprintf("%d", prisma.RecordsScreened)},
			{Stage: "Title/abstract screened", Records: fmt.Sprintf("%d", prisma.RecordsScreened)},
			{Stage: "Full-text assessed", Records: fmt.Sprintf("%d", prisma.FullTextAssessed)},
			{Stage: "Included in synthesis", Records: fmt.Sprintf("%d", prisma.StudiesIncluded)},
		},
		Quality:    r.quality.Summary(),
		GradeRows:  SummaryTable(assessments),
		Gaps:       researchGaps,
		Hypotheses: testableHypotheses,
	}

	for _, axis := range models.AllThematicAxes() {
		count := stats.ByAxis[axis]
		if count == 0 {
			continue
		}
		pct := 0.0
		if stats.Total > 0 {
			pct = float64(count) / float64(stats.Total) * 100
		}
		data.AxisRows = append(data.AxisRows, axisRow{
			Axis:       axisDisplay(axis),
			Count:      count,
			Percentage: pct,
		})
	}

	for _, axis := range models.AllThematicAxes() {
		var group []models.CERQualAssessment
		for _, a := range assessments {
			if a.Axis == axis {
				group = append(group, a)
			}
		}
		if len(group) > 0 {
			data.Findings = append(data.Findings, axisFindings{
				Axis:        axisDisplay(axis),
				Assessments: group,
			})
		}
	}

	return data
}

// Markdown renders the full report with its fixed section order:
// executive summary, selection funnel, axis distribution, quality
// breakdown, confidence summary, per-axis findings, gaps, hypotheses.
func (r *ReportGenerator) Markdown(assessments []models.CERQualAssessment) string {
	d := r.buildData(assessments)

	var b strings.Builder
	fmt.Fprintf(&b, "# EHDS Systematic Literature Review Analysis Report\n\n")
	fmt.Fprintf(&b, "*Generated: %s*\n\n*%s*\n\n", d.Generated, d.Tool)

	fmt.Fprintf(&b, "## Executive Summary\n\n")
	fmt.Fprintf(&b, "This report summarizes the analysis of **%d studies** examining the European Health Data Space (EHDS) from %d to %d.\n\n",
		d.Stats.Total, d.Stats.YearRange[0], d.Stats.YearRange[1])

	fmt.Fprintf(&b, "## Study Selection\n\n")
	fmt.Fprintf(&b, "| Stage | Records |\n|-------|---------|\n")
	for _, row := range d.Funnel {
		fmt.Fprintf(&b, "| %s | %s |\n", row.Stage, row.Records)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Distribution by Thematic Axis\n\n")
	fmt.Fprintf(&b, "| Axis | Studies | Percentage |\n|------|---------|------------|\n")
	for _, row := range d.AxisRows {
		fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", row.Axis, row.Count, row.Percentage)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Quality Assessment (MMAT)\n\n")
	fmt.Fprintf(&b, "- **High quality**: %d (%.1f%%)\n", d.Quality.High.Count, d.Quality.High.Percentage)
	fmt.Fprintf(&b, "- **Moderate quality**: %d (%.1f%%)\n", d.Quality.Moderate.Count, d.Quality.Moderate.Percentage)
	fmt.Fprintf(&b, "- **Low quality**: %d (%.1f%%)\n\n", d.Quality.Low.Count, d.Quality.Low.Percentage)

	fmt.Fprintf(&b, "## GRADE-CERQual Summary of Findings\n\n")
	fmt.Fprintf(&b, "| Finding | Studies | Confidence |\n|---------|---------|------------|\n")
	for _, row := range d.GradeRows {
		finding := row.Finding
		// auf Runengrenze kürzen, kein Byte-Schnitt mitten im Zeichen
		if r := []rune(finding); len(r) > 60 {
			finding = string(r[:60]) + "..."
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", finding, row.Studies, row.Confidence)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Key Findings\n\n")
	for _, group := range d.Findings {
		fmt.Fprintf(&b, "### %s\n\n", group.Axis)
		for _, a := range group.Assessments {
			fmt.Fprintf(&b, "- %s (n=%d)\n", a.Finding, len(a.SupportingStudies))
			if a.Explanation != "" {
				fmt.Fprintf(&b, "- %s\n", a.Explanation)
			}
			fmt.Fprintf(&b, "- **Confidence: %s**\n", strings.ToUpper(string(a.OverallConfidence)))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Research Gaps Identified\n\n")
	for i, gap := range d.Gaps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, gap)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Testable Hypotheses\n\n")
	for _, cat := range d.Hypotheses {
		fmt.Fprintf(&b, "### %s\n\n", strings.ToUpper(cat.Category[:1])+cat.Category[1:])
		for _, h := range cat.Hypotheses {
			fmt.Fprintf(&b, "- %s\n", h)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "---\n*Report generated by ehds-lens - EHDS Literature Analysis Toolkit*\n")
	return b.String()
}

// htmlReport renders the same sections through html/template so all study
// and finding text is entity-escaped.
var htmlReport = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>EHDS Analysis Report</title>
<style>
body { font-family: Arial, sans-serif; max-width: 900px; margin: 0 auto; padding: 20px; }
h1 { color: #1F4E79; border-bottom: 2px solid #1F4E79; }
h2 { color: #2E75B6; }
table { border-collapse: collapse; width: 100%; margin: 15px 0; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #1F4E79; color: white; }
tr:nth-child(even) { background-color: #f2f2f2; }
</style>
</head>
<body>
<h1>EHDS Systematic Literature Review Analysis Report</h1>
<p><em>Generated: {{.Generated}}</em><br><em>{{.Tool}}</em></p>

<h2>Executive Summary</h2>
<p>This report summarizes the analysis of <strong>{{.Stats.Total}} studies</strong>
examining the European Health Data Space (EHDS) from
{{index .Stats.YearRange 0}} to {{index .Stats.YearRange 1}}.</p>

<h2>Study Selection</h2>
<table><tr><th>Stage</th><th>Records</th></tr>
{{range .Funnel}}<tr><td>{{.Stage}}</td><td>{{.Records}}</td></tr>
{{end}}</table>

<h2>Distribution by Thematic Axis</h2>
<table><tr><th>Axis</th><th>Studies</th><th>Percentage</th></tr>
{{range .AxisRows}}<tr><td>{{.Axis}}</td><td>{{.Count}}</td><td>{{printf "%.1f" .Percentage}}%</td></tr>
{{end}}</table>

<h2>Quality Assessment (MMAT)</h2>
<ul>
<li><strong>High quality</strong>: {{.Quality.High.Count}} ({{printf "%.1f" .Quality.High.Percentage}}%)</li>
<li><strong>Moderate quality</strong>: {{.Quality.Moderate.Count}} ({{printf "%.1f" .Quality.Moderate.Percentage}}%)</li>
<li><strong>Low quality</strong>: {{.Quality.Low.Count}} ({{printf "%.1f" .Quality.Low.Percentage}}%)</li>
</ul>

<h2>GRADE-CERQual Summary of Findings</h2>
<table><tr><th>Finding</th><th>Studies</th><th>Confidence</th></tr>
{{range .GradeRows}}<tr><td>{{.Finding}}</td><td>{{.Studies}}</td><td>{{.Confidence}}</td></tr>
{{end}}</table>

<h2>Key Findings</h2>
{{range .Findings}}<h3>{{.Axis}}</h3>
<ul>
{{range .Assessments}}<li>{{.Finding}} (n={{len .SupportingStudies}}) &mdash; confidence {{.OverallConfidence}}</li>
{{end}}</ul>
{{end}}

<h2>Research Gaps Identified</h2>
<ol>
{{range .Gaps}}<li>{{.}}</li>
{{end}}</ol>

<h2>Testable Hypotheses</h2>
{{range .Hypotheses}}<h3>{{.Category}}</h3>
<ul>
{{range .Hypotheses}}<li>{{.}}</li>
{{end}}</ul>
{{end}}

<hr>
<p><em>Report generated by ehds-lens - EHDS Literature Analysis Toolkit</em></p>
</body>
</html>
`))

// HTML renders the report as a standalone HTML document.
func (r *ReportGenerator) HTML(assessments []models.CERQualAssessment) (string, error) {
	var b strings.Builder
	if err := htmlReport.Execute(&b, r.buildData(assessments)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// jsonReport mirrors the full in-memory aggregate state.
type jsonReport struct {
	Metadata struct {
		Generated   string `json:"generated"`
		Tool        string `json:"tool"`
		Description string `json:"description"`
	} `json:"metadata"`
	Statistics       store.Statistics                     `json:"statistics"`
	QualitySummary   QualitySummary                       `json:"quality_summary"`
	GradeCERQual     []SummaryRow                         `json:"grade_cerqual"`
	Studies          []models.Study                       `json:"studies"`
	ThematicAnalysis map[models.ThematicAxis]AxisAnalysis `json:"thematic_analysis"`
}

// JSON renders the aggregate state as an indented JSON document.
func (r *ReportGenerator) JSON(assessments []models.CERQualAssessment) ([]byte, error) {
	var rep jsonReport
	rep.Metadata.Generated = time.Now().Format(time.RFC3339)
	rep.Metadata.Tool = toolVersion
	rep.Metadata.Description = "EHDS Systematic Literature Review Analysis"
	rep.Statistics = r.db.Statistics()
	rep.QualitySummary = r.quality.Summary()
	rep.GradeCERQual = SummaryTable(assessments)
	rep.Studies = r.db.Studies()
	rep.ThematicAnalysis = r.thematic.AnalyzeAllAxes()
	return json.MarshalIndent(rep, "", "  ")
}

// WriteReport renders the requested format ("markdown", "html", "json")
// into a file. Unknown formats fail fast; I/O errors are passed through.
func (r *ReportGenerator) WriteReport(path, format string, assessments []models.CERQualAssessment) error {
	var content []byte

	switch format {
	case "markdown":
		content = []byte(r.Markdown(assessments))
	case "html":
		html, err := r.HTML(assessments)
		if err != nil {
			return err
		}
		content = []byte(html)
	case "json":
		data, err := r.JSON(assessments)
		if err != nil {
			return err
		}
		content = data
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return err
	}
	r.logger.Info("report written", zap.String("path", path), zap.String("format", format))
	return nil
}
