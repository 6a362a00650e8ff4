// Package services implements the analysis core: the analyzer facade,
// thematic aggregation, the MMAT and GRADE-CERQual rubrics, and the
// report and bibliography renderers.
package services

import (
	"strings"

	"go.uber.org/zap"

	"ehds-lens/dataset"
	"ehds-lens/models"
	"ehds-lens/store"
)

// Analyzer is the single entry point for external callers (CLI, API,
// dashboard). It loads a record set and passes every filter, search,
// statistics, analysis and export operation through to the core,
// returning plain structured data.
type Analyzer struct {
	db     *store.Database
	logger *zap.Logger

	thematic *ThematicAnalyzer
	quality  *QualityAssessor
	cerqual  *CERQualAssessor
}

// NewAnalyzer creates an analyzer over an existing database. A nil database
// starts empty.
func NewAnalyzer(db *store.Database, logger *zap.Logger) *Analyzer {
	if db == nil {
		db = store.New()
	}
	a := &Analyzer{logger: logger}
	a.setDatabase(db)
	return a
}

func (a *Analyzer) setDatabase(db *store.Database) {
	a.db = db
	a.thematic = NewThematicAnalyzer(db, a.logger)
	a.quality = NewQualityAssessor(db, a.logger)
	a.cerqual = NewCERQualAssessor(db, a.logger)
}

// Database exposes the underlying record store.
func (a *Analyzer) Database() *store.Database { return a.db }

// Thematic exposes the thematic analyzer bound to the current data.
func (a *Analyzer) Thematic() *ThematicAnalyzer { return a.thematic }

// Quality exposes the MMAT assessor bound to the current data.
func (a *Analyzer) Quality() *QualityAssessor { return a.quality }

// CERQual exposes the confidence assessor bound to the current data.
func (a *Analyzer) CERQual() *CERQualAssessor { return a.cerqual }

// LoadDefaultData replaces the record set with the bundled 52-study review.
func (a *Analyzer) LoadDefaultData() error {
	db, err := dataset.Studies()
	if err != nil {
		return err
	}
	a.setDatabase(db)
	a.logger.Info("bundled dataset loaded", zap.Int("studies", db.Len()))
	return nil
}

// LoadJSON replaces the record set with the content of a JSON database file.
func (a *Analyzer) LoadJSON(path string) error {
	db := store.New()
	if err := db.ReadJSON(path); err != nil {
		return err
	}
	a.setDatabase(db)
	a.logger.Info("database loaded", zap.String("path", path), zap.Int("studies", db.Len()))
	return nil
}

// LoadCSV replaces the record set with the content of a CSV database file.
func (a *Analyzer) LoadCSV(path string) error {
	db := store.New()
	if err := db.ReadCSV(path); err != nil {
		return err
	}
	a.setDatabase(db)
	a.logger.Info("database loaded", zap.String("path", path), zap.Int("studies", db.Len()))
	return nil
}

// Statistics returns the full-database snapshot.
func (a *Analyzer) Statistics() store.Statistics { return a.db.Statistics() }

// Search passes a free-text query through to the store.
func (a *Analyzer) Search(query string) []models.Study { return a.db.Search(query) }

// FilterOptions combines the study filters; zero values mean "no filter".
type FilterOptions struct {
	Axis       models.ThematicAxis
	YearStart  int
	YearEnd    int
	MinQuality models.QualityRating
	Country    string
}

// FilterStudies returns the studies matching every set criterion.
func (a *Analyzer) FilterStudies(opts FilterOptions) []models.Study {
	var out []models.Study
	minRank := opts.MinQuality.Rank()
	if opts.MinQuality != "" && minRank == 0 {
		minRank = models.QualityLow.Rank()
	}
	for _, s := range a.db.Studies() {
		if opts.Axis != "" && s.PrimaryAxis != opts.Axis {
			continue
		}
		if opts.YearStart != 0 && s.Year < opts.YearStart {
			continue
		}
		if opts.YearEnd != 0 && s.Year > opts.YearEnd {
			continue
		}
		if opts.MinQuality != "" {
			r := s.QualityRating.Rank()
			if r == 0 || r < minRank {
				continue
			}
		}
		if opts.Country != "" && !strings.EqualFold(s.Country, opts.Country) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// AnalyzeAxis passes through to the thematic analyzer.
func (a *Analyzer) AnalyzeAxis(axis models.ThematicAxis) AxisAnalysis {
	return a.thematic.AnalyzeAxis(axis)
}

// AnalyzeAllAxes passes through to the thematic analyzer.
func (a *Analyzer) AnalyzeAllAxes() map[models.ThematicAxis]AxisAnalysis {
	return a.thematic.AnalyzeAllAxes()
}

// QualitySummary passes through to the MMAT assessor.
func (a *Analyzer) QualitySummary() QualitySummary { return a.quality.Summary() }

// ExportJSON writes the record set as a JSON database file.
func (a *Analyzer) ExportJSON(path string) error { return a.db.WriteJSON(path) }

// ExportCSV writes the record set as a CSV table.
func (a *Analyzer) ExportCSV(path string) error { return a.db.WriteCSV(path) }

// PRISMAStats describes the study-selection funnel of the review.
type PRISMAStats struct {
	RecordsIdentified        int            `json:"records_identified"`
	DuplicatesRemoved        int            `json:"duplicates_removed"`
	RecordsScreened          int            `json:"records_screened"`
	RecordsExcludedScreening int            `json:"records_excluded_screening"`
	FullTextAssessed         int            `json:"full_text_assessed"`
	FullTextExcluded         int            `json:"full_text_excluded"`
	StudiesIncluded          int            `json:"studies_included"`
	ExclusionReasons         map[string]int `json:"exclusion_reasons"`
}

// GeneratePRISMAStats returns the selection funnel of the bundled review,
// with the inclusion count taken from the loaded record set.
func (a *Analyzer) GeneratePRISMAStats() PRISMAStats {
	return prismaStats(a.db.Len())
}

func prismaStats(included int) PRISMAStats {
	return PRISMAStats{
		RecordsIdentified:        847,
		DuplicatesRemoved:        156,
		RecordsScreened:          691,
		RecordsExcludedScreening: 567,
		FullTextAssessed:         124,
		FullTextExcluded:         72,
		StudiesIncluded:          included,
		ExclusionReasons: map[string]int{
			"insufficient_ehds_focus":    28,
			"methodological_limitations": 19,
			"duplicate_superseded":       14,
			"language":                   7,
			"abstract_only":              4,
		},
	}
}

// ResearchGaps lists the gaps identified by the review.
func (a *Analyzer) ResearchGaps() []string { return researchGaps }

var researchGaps = []string{
	"Empirical citizen attitude studies: Limited systematic evidence on European citizens' EHDS awareness and attitudes",
	"National-European integration studies: Insufficient attention to how national digital health programs align with EHDS",
	"Economic sustainability models: Inadequate attention to HDAB financial sustainability and fee structures",
	"Longitudinal implementation tracking: Need for systematic documentation of implementation processes (2025-2031)",
	"Interdisciplinary integration: Research teams integrating technical, legal, ethical, and organizational expertise",
	"Emerging technology assessment: Roles of synthetic data, homomorphic encryption, and MPC remain underexplored",
}

// HypothesisCategory names a hypothesis group in declared order.
type HypothesisCategory struct {
	Category   string   `json:"category"`
	Hypotheses []string `json:"hypotheses"`
}

// TestableHypotheses lists the hypotheses for future research by category.
func (a *Analyzer) TestableHypotheses() []HypothesisCategory { return testableHypotheses }

var testableHypotheses = []HypothesisCategory{
	{Category: "governance", Hypotheses: []string{
		"H1a: Member States with pre-existing opt-out frameworks will achieve higher data availability",
		"H1b: National opt-out rates will vary inversely with public trust in healthcare institutions",
		"H1c: HDAB authorization timelines will be positively associated with regulatory complexity",
	}},
	{Category: "technology", Hypotheses: []string{
		"H2a: Organizations with >50% FHIR implementation will achieve EHDS compliance faster",
		"H2b: FL production deployment will increase from 23% to >50% by 2029",
		"H2c: SPE utilization will be higher for cross-border than single-Member-State requests",
	}},
	{Category: "implementation", Hypotheses: []string{
		"H3a: Nordic Member States will achieve full compliance by 2029; Southern/Eastern by 2031",
		"H3b: HDAB staffing levels will predict throughput better than technical infrastructure",
		"H3c: Article 33(5) restrictions will reduce cross-border genomic research participation",
	}},
	{Category: "engagement", Hypotheses: []string{
		"H4a: Public EHDS awareness will increase from <20% to >50% by 2029",
		"H4b: Trust in EHDS governance will correlate with HDAB transparency",
		"H4c: Deliberative engagement mechanisms will reduce opt-out rates",
	}},
}
