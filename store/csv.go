package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ehds-lens/models"
)

// listSep trennt listenwertige Felder (secondary_themes, ehds_articles)
// innerhalb einer CSV-Zelle.
const listSep = "|"

// csvHeader ist die feste Spaltenreihenfolge der Tabellenexporte.
var csvHeader = []string{
	"id", "authors", "year", "title", "journal", "doi", "study_type",
	"country", "primary_axis", "secondary_themes", "quality_rating",
	"mmat_score", "abstract", "key_findings", "ehds_focus", "ehds_articles",
	"sample_size", "limitations", "funding",
}

// WriteCSV schreibt den Bestand als kommagetrennte Tabelle.
func (d *Database) WriteCSV(path string) error {
	return d.writeTable(path, ',')
}

// WriteTSV schreibt den Bestand als tabulatorgetrennte Tabelle.
func (d *Database) WriteTSV(path string) error {
	return d.writeTable(path, '\t')
}

func (d *Database) writeTable(path string, delim rune) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = delim
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range d.Studies() {
		if err := w.Write(studyRow(s)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func studyRow(s models.Study) []string {
	mmat := ""
	if s.MMATScore != 0 {
		mmat = strconv.FormatFloat(s.MMATScore, 'f', -1, 64)
	}
	sample := ""
	if s.SampleSize != 0 {
		sample = strconv.Itoa(s.SampleSize)
	}
	return []string{
		strconv.Itoa(s.ID),
		s.Authors,
		strconv.Itoa(s.Year),
		s.Title,
		s.Journal,
		s.DOI,
		string(s.StudyType),
		s.Country,
		string(s.PrimaryAxis),
		strings.Join(s.SecondaryThemes, listSep),
		string(s.QualityRating),
		mmat,
		s.Abstract,
		s.KeyFindings,
		string(s.EHDSFocus),
		strings.Join(s.EHDSArticles, listSep),
		sample,
		s.Limitations,
		s.Funding,
	}
}

// ReadCSV ersetzt den Bestand durch den Inhalt der CSV-Datei.
// Leere optionale Zellen erhalten ihre deklarierten Standardwerte.
func (d *Database) ReadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("parse database csv: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("parse database csv: missing header row")
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}

	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	fresh := New()
	for n, row := range rows[1:] {
		id, err := strconv.Atoi(cell(row, "id"))
		if err != nil {
			return fmt.Errorf("csv row %d: bad id: %w", n+2, err)
		}
		year, err := strconv.Atoi(cell(row, "year"))
		if err != nil {
			return fmt.Errorf("csv row %d: bad year: %w", n+2, err)
		}

		s := models.Study{
			ID:            id,
			Authors:       cell(row, "authors"),
			Year:          year,
			Title:         cell(row, "title"),
			Journal:       cell(row, "journal"),
			DOI:           cell(row, "doi"),
			Country:       cell(row, "country"),
			StudyType:     models.StudyType(cell(row, "study_type")),
			PrimaryAxis:   models.ThematicAxis(cell(row, "primary_axis")),
			QualityRating: models.QualityRating(cell(row, "quality_rating")),
			Abstract:      cell(row, "abstract"),
			KeyFindings:   cell(row, "key_findings"),
			EHDSFocus:     models.EHDSFocus(cell(row, "ehds_focus")),
			Limitations:   cell(row, "limitations"),
			Funding:       cell(row, "funding"),
		}
		if v := cell(row, "secondary_themes"); v != "" {
			s.SecondaryThemes = strings.Split(v, listSep)
		}
		if v := cell(row, "ehds_articles"); v != "" {
			s.EHDSArticles = strings.Split(v, listSep)
		}
		if v := cell(row, "mmat_score"); v != "" {
			score, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("csv row %d: bad mmat_score: %w", n+2, err)
			}
			s.MMATScore = score
		}
		if v := cell(row, "sample_size"); v != "" {
			size, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("csv row %d: bad sample_size: %w", n+2, err)
			}
			s.SampleSize = size
		}

		if err := fresh.Add(s); err != nil {
			return fmt.Errorf("csv row %d: %w", n+2, err)
		}
	}

	d.mu.Lock()
	d.studies = fresh.studies
	d.index = fresh.index
	d.meta = fresh.meta
	d.mu.Unlock()
	return nil
}
