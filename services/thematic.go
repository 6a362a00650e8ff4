package services

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"ehds-lens/models"
	"ehds-lens/store"
)

// axisDominanceThreshold flags an axis as dominating the evidence base.
const axisDominanceThreshold = 10

// CodingCategory is one category of the seven-part coding framework used
// during thematic synthesis.
type CodingCategory struct {
	Key         string
	Description string
	Codes       []string
}

// CodingFramework lists the seven coding categories from the review protocol.
var CodingFramework = []CodingCategory{
	{
		Key:         "rights_autonomy",
		Description: "Consent, opt-out, portability, individual control",
		Codes:       []string{"opt-out", "consent", "portability", "autonomy", "re-identification", "data rights", "citizen control"},
	},
	{
		Key:         "governance_institutions",
		Description: "HDABs, EHDS Board, national authorities, coordination",
		Codes:       []string{"HDAB", "EHDS Board", "authorization", "permit", "governance", "accountability", "coordination"},
	},
	{
		Key:         "technical_infrastructure",
		Description: "MyHealth@EU, HealthData@EU, SPEs, PETs",
		Codes:       []string{"SPE", "federated", "PET", "infrastructure", "MyHealth@EU", "HealthData@EU", "encryption"},
	},
	{
		Key:         "data_quality_interoperability",
		Description: "FAIR principles, FHIR, semantic standards",
		Codes:       []string{"FHIR", "FAIR", "interoperability", "semantic", "EHR format", "quality", "standardization"},
	},
	{
		Key:         "equity_inclusion",
		Description: "Digital divide, capacity asymmetries, vulnerable populations",
		Codes:       []string{"equity", "divide", "vulnerable", "capacity", "asymmetry", "inclusion", "disparities"},
	},
	{
		Key:         "public_engagement",
		Description: "Citizen participation, trust, transparency",
		Codes:       []string{"trust", "transparency", "engagement", "participation", "social licence", "public", "consultation"},
	},
	{
		Key:         "sectoral_impacts",
		Description: "Research, industry, policy, clinical care",
		Codes:       []string{"research", "pharma", "industry", "clinical", "innovation", "policy", "healthcare"},
	},
}

// AxisAnalysis is the aggregation result for a single thematic axis.
type AxisAnalysis struct {
	Axis                models.ThematicAxis          `json:"axis"`
	TotalStudies        int                          `json:"total_studies"`
	PeerReviewed        int                          `json:"peer_reviewed"`
	GreyLiterature      int                          `json:"grey_literature"`
	HighQualityCount    int                          `json:"high_quality_count"`
	TypeDistribution    map[models.StudyType]int     `json:"type_distribution,omitempty"`
	QualityDistribution map[models.QualityRating]int `json:"quality_distribution,omitempty"`
	YearDistribution    []store.YearCount            `json:"year_distribution,omitempty"`
	CountryDistribution []store.CountryCount         `json:"country_distribution,omitempty"`
	Studies             []models.Study               `json:"studies,omitempty"`
}

// ThematicAnalyzer aggregates studies along the five thematic axes.
type ThematicAnalyzer struct {
	db     *store.Database
	logger *zap.Logger
}

// NewThematicAnalyzer creates an analyzer bound to a study database.
func NewThematicAnalyzer(db *store.Database, logger *zap.Logger) *ThematicAnalyzer {
	return &ThematicAnalyzer{db: db, logger: logger}
}

// AnalyzeAxis aggregates all studies of one axis: peer-review split, quality
// and type distributions, years ascending and the top five countries.
func (t *ThematicAnalyzer) AnalyzeAxis(axis models.ThematicAxis) AxisAnalysis {
	studies := t.db.FilterByAxis(axis)

	result := AxisAnalysis{
		Axis:                axis,
		TotalStudies:        len(studies),
		TypeDistribution:    make(map[models.StudyType]int),
		QualityDistribution: make(map[models.QualityRating]int),
		Studies:             studies,
	}

	yearCounts := make(map[int]int)
	countryCounts := make(map[string]int)
	var countryOrder []string

	for _, s := range studies {
		if s.PeerReviewed() {
			result.PeerReviewed++
		} else {
			result.GreyLiterature++
		}
		if s.QualityRating == models.QualityHigh {
			result.HighQualityCount++
		}
		result.TypeDistribution[s.StudyType]++
		result.QualityDistribution[s.QualityRating]++
		yearCounts[s.Year]++
		if s.Country != "" {
			if _, seen := countryCounts[s.Country]; !seen {
				countryOrder = append(countryOrder, s.Country)
			}
			countryCounts[s.Country]++
		}
	}

	years := make([]int, 0, len(yearCounts))
	for y := range yearCounts {
		years = append(years, y)
	}
	sort.Ints(years)
	for _, y := range years {
		result.YearDistribution = append(result.YearDistribution, store.YearCount{Year: y, Count: yearCounts[y]})
	}

	for _, c := range countryOrder {
		result.CountryDistribution = append(result.CountryDistribution, store.CountryCount{Country: c, Count: countryCounts[c]})
	}
	sort.SliceStable(result.CountryDistribution, func(i, j int) bool {
		return result.CountryDistribution[i].Count > result.CountryDistribution[j].Count
	})
	if len(result.CountryDistribution) > 5 {
		result.CountryDistribution = result.CountryDistribution[:5]
	}

	return result
}

// AnalyzeAllAxes runs AnalyzeAxis over the five axes.
func (t *ThematicAnalyzer) AnalyzeAllAxes() map[models.ThematicAxis]AxisAnalysis {
	results := make(map[models.ThematicAxis]AxisAnalysis, len(models.AllThematicAxes()))
	for _, axis := range models.AllThematicAxes() {
		results[axis] = t.AnalyzeAxis(axis)
	}
	return results
}

// CrossCuttingThemes flags heuristic, threshold-based signals: a probe
// substring appearing in titles across more than one axis, and any axis
// whose study count exceeds the dominance threshold.
func (t *ThematicAnalyzer) CrossCuttingThemes(probe string) []string {
	var themes []string
	needle := strings.ToLower(probe)

	var probeAxes []string
	for _, axis := range models.AllThematicAxes() {
		for _, s := range t.db.FilterByAxis(axis) {
			if strings.Contains(strings.ToLower(s.Title), needle) {
				probeAxes = append(probeAxes, string(axis))
				break
			}
		}
	}
	if len(probeAxes) > 1 {
		themes = append(themes, fmt.Sprintf("%q appears in %d axes: %s",
			probe, len(probeAxes), strings.Join(probeAxes, ", ")))
	}

	for _, axis := range models.AllThematicAxes() {
		if n := len(t.db.FilterByAxis(axis)); n > axisDominanceThreshold {
			themes = append(themes, fmt.Sprintf("%s dominates with %d studies", axis, n))
		}
	}

	return themes
}

// CohensKappa computes inter-rater reliability between two independent
// id-to-axis codings. Defined as 0.0 when no ids were assessed by both
// coders and 1.0 when chance agreement is total.
func CohensKappa(coder1, coder2 map[int]models.ThematicAxis) float64 {
	var common []int
	for id := range coder1 {
		if _, ok := coder2[id]; ok {
			common = append(common, id)
		}
	}
	if len(common) == 0 {
		return 0.0
	}

	n := float64(len(common))
	agreements := 0
	for _, id := range common {
		if coder1[id] == coder2[id] {
			agreements++
		}
	}
	po := float64(agreements) / n

	pe := 0.0
	for _, axis := range models.AllThematicAxes() {
		c1, c2 := 0, 0
		for _, id := range common {
			if coder1[id] == axis {
				c1++
			}
			if coder2[id] == axis {
				c2++
			}
		}
		pe += (float64(c1) / n) * (float64(c2) / n)
	}

	if pe == 1 {
		return 1.0
	}
	return (po - pe) / (1 - pe)
}
