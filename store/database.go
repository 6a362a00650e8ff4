// Package store holds the in-memory study collection with its id index,
// lifecycle metadata and the flat-file codecs (JSON, CSV/TSV).
package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"ehds-lens/models"
)

var (
	// ErrDuplicateID wird bei einem Insert mit bereits vergebener ID geliefert.
	ErrDuplicateID = errors.New("study id already exists")
	// ErrStudyNotFound meldet eine unbekannte Studien-ID.
	ErrStudyNotFound = errors.New("study not found")
)

// Metadata beschreibt den Lebenszyklus der Datenbank.
type Metadata struct {
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Version     string    `json:"version"`
	Description string    `json:"description"`
}

// Database verwaltet die Studien in Einfügereihenfolge mit ID-Index.
// Mutierende Operationen werden über ein einzelnes RWMutex serialisiert.
type Database struct {
	mu      sync.RWMutex
	studies []models.Study
	index   map[int]int
	meta    Metadata
}

// New erstellt eine leere Datenbank.
func New() *Database {
	now := time.Now()
	return &Database{
		index: make(map[int]int),
		meta: Metadata{
			Created:     now,
			Modified:    now,
			Version:     "1.0",
			Description: "EHDS Systematic Literature Review Database",
		},
	}
}

// Add fügt eine Studie hinzu. Ungültige Enum-Werte und doppelte IDs
// schlagen sofort fehl.
func (d *Database) Add(s models.Study) error {
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.index[s.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateID, s.ID)
	}
	d.index[s.ID] = len(d.studies)
	d.studies = append(d.studies, s)
	d.meta.Modified = time.Now()
	return nil
}

// Get liefert die Studie zur ID; der zweite Rückgabewert meldet den Treffer.
func (d *Database) Get(id int) (models.Study, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	pos, ok := d.index[id]
	if !ok {
		return models.Study{}, false
	}
	return d.studies[pos], true
}

// Remove entfernt die Studie zur ID und meldet, ob sie existierte.
func (d *Database) Remove(id int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	pos, ok := d.index[id]
	if !ok {
		return false
	}
	d.studies = append(d.studies[:pos], d.studies[pos+1:]...)
	// Index hinter der Lücke neu aufbauen
	delete(d.index, id)
	for i := pos; i < len(d.studies); i++ {
		d.index[d.studies[i].ID] = i
	}
	d.meta.Modified = time.Now()
	return true
}

// Len liefert die Anzahl der Studien.
func (d *Database) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.studies)
}

// Studies liefert alle Studien in Einfügereihenfolge als Kopie.
func (d *Database) Studies() []models.Study {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Study, len(d.studies))
	copy(out, d.studies)
	return out
}

// Metadata liefert die aktuellen Lebenszyklus-Metadaten.
func (d *Database) Metadata() Metadata {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.meta
}

// SetDescription setzt die Freitextbeschreibung der Datenbank.
func (d *Database) SetDescription(desc string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.meta.Description = desc
	d.meta.Modified = time.Now()
}

// FilterByAxis liefert alle Studien der angegebenen thematischen Achse.
func (d *Database) FilterByAxis(axis models.ThematicAxis) []models.Study {
	return d.filter(func(s models.Study) bool { return s.PrimaryAxis == axis })
}

// FilterByYear liefert alle Studien mit Erscheinungsjahr in [start, end].
func (d *Database) FilterByYear(start, end int) []models.Study {
	return d.filter(func(s models.Study) bool { return s.Year >= start && s.Year <= end })
}

// FilterByQuality liefert alle Studien mit mindestens der angegebenen
// Bewertung. "n/a" liegt außerhalb der Ordnung LOW < MODERATE < HIGH und
// taucht nie im Ergebnis auf; als Minimum zählt es wie LOW.
func (d *Database) FilterByQuality(min models.QualityRating) []models.Study {
	minRank := min.Rank()
	if minRank == 0 {
		minRank = models.QualityLow.Rank()
	}
	return d.filter(func(s models.Study) bool {
		r := s.QualityRating.Rank()
		return r > 0 && r >= minRank
	})
}

// FilterByType liefert alle Studien des angegebenen Methodiktyps.
func (d *Database) FilterByType(t models.StudyType) []models.Study {
	return d.filter(func(s models.Study) bool { return s.StudyType == t })
}

// FilterByCountry liefert alle Studien aus dem Land (Groß-/Kleinschreibung egal).
func (d *Database) FilterByCountry(country string) []models.Study {
	return d.filter(func(s models.Study) bool {
		return s.Country != "" && strings.EqualFold(s.Country, country)
	})
}

// Search sucht den Teilstring in Titel, Autoren oder Key Findings,
// unabhängig von Groß-/Kleinschreibung.
func (d *Database) Search(query string) []models.Study {
	q := strings.ToLower(query)
	return d.filter(func(s models.Study) bool {
		return strings.Contains(strings.ToLower(s.Title), q) ||
			strings.Contains(strings.ToLower(s.Authors), q) ||
			(s.KeyFindings != "" && strings.Contains(strings.ToLower(s.KeyFindings), q))
	})
}

func (d *Database) filter(keep func(models.Study) bool) []models.Study {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.Study
	for _, s := range d.studies {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// YearCount ist ein Jahrgang mit Studienanzahl.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// CountryCount ist ein Land mit Studienanzahl.
type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// Statistics ist der aggregierte Schnappschuss der Datenbank.
type Statistics struct {
	Total        int                          `json:"total"`
	ByYear       []YearCount                  `json:"by_year,omitempty"`
	ByAxis       map[models.ThematicAxis]int  `json:"by_axis,omitempty"`
	ByType       map[models.StudyType]int     `json:"by_type,omitempty"`
	ByQuality    map[models.QualityRating]int `json:"by_quality,omitempty"`
	ByCountry    []CountryCount               `json:"by_country,omitempty"`
	YearRange    [2]int                       `json:"year_range,omitempty"`
	PeerReviewed int                          `json:"peer_reviewed"`
}

// Statistics berechnet Verteilungen über den gesamten Bestand.
// Jahre sind aufsteigend sortiert, Länder absteigend nach Anzahl mit
// Einfügereihenfolge als Tie-Break.
func (d *Database) Statistics() Statistics {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return ComputeStatistics(d.studies)
}

// ComputeStatistics aggregiert eine beliebige (auch gefilterte) Studienliste.
func ComputeStatistics(studies []models.Study) Statistics {
	if len(studies) == 0 {
		return Statistics{}
	}

	stats := Statistics{
		Total:     len(studies),
		ByAxis:    make(map[models.ThematicAxis]int),
		ByType:    make(map[models.StudyType]int),
		ByQuality: make(map[models.QualityRating]int),
	}

	yearCounts := make(map[int]int)
	countryCounts := make(map[string]int)
	var countryOrder []string

	for _, s := range studies {
		yearCounts[s.Year]++
		stats.ByAxis[s.PrimaryAxis]++
		stats.ByType[s.StudyType]++
		stats.ByQuality[s.QualityRating]++
		if s.Country != "" {
			if _, seen := countryCounts[s.Country]; !seen {
				countryOrder = append(countryOrder, s.Country)
			}
			countryCounts[s.Country]++
		}
		if s.PeerReviewed() {
			stats.PeerReviewed++
		}
	}

	years := make([]int, 0, len(yearCounts))
	for y := range yearCounts {
		years = append(years, y)
	}
	sort.Ints(years)
	for _, y := range years {
		stats.ByYear = append(stats.ByYear, YearCount{Year: y, Count: yearCounts[y]})
	}
	stats.YearRange = [2]int{years[0], years[len(years)-1]}

	for _, c := range countryOrder {
		stats.ByCountry = append(stats.ByCountry, CountryCount{Country: c, Count: countryCounts[c]})
	}
	sort.SliceStable(stats.ByCountry, func(i, j int) bool {
		return stats.ByCountry[i].Count > stats.ByCountry[j].Count
	})

	return stats
}
