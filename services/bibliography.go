package services

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"ehds-lens/models"
	"ehds-lens/store"
)

// ErrUnsupportedFormat is returned for unknown export/report format strings.
var ErrUnsupportedFormat = errors.New("unsupported format")

// BibliographyGenerator renders the record set as BibTeX, RIS or numbered
// plain-text citations.
type BibliographyGenerator struct {
	db     *store.Database
	logger *zap.Logger
}

// NewBibliographyGenerator creates a generator bound to a study database.
func NewBibliographyGenerator(db *store.Database, logger *zap.Logger) *BibliographyGenerator {
	return &BibliographyGenerator{db: db, logger: logger}
}

// FormatCitation renders a single study in the given citation style.
// Unknown styles fall back to a compact "authors (year)" form.
func FormatCitation(s models.Study, style string) string {
	switch style {
	case "apa":
		doi := ""
		if s.DOI != "" {
			doi = fmt.Sprintf(" https://doi.org/%s", s.DOI)
		}
		return fmt.Sprintf("%s (%d). %s. %s.%s", s.Authors, s.Year, s.Title, s.Journal, doi)
	case "vancouver":
		return fmt.Sprintf("%s. %s. %s. %d.", s.Authors, s.Title, s.Journal, s.Year)
	}
	return fmt.Sprintf("%s (%d)", s.Authors, s.Year)
}

// citationKey derives the BibTeX key: lowercased surname of the first
// listed author concatenated with the publication year.
func citationKey(s models.Study) string {
	first := s.Authors
	if i := strings.Index(first, ","); i >= 0 {
		first = first[:i]
	}
	words := strings.Fields(first)
	surname := first
	if len(words) > 0 {
		surname = words[len(words)-1]
	}
	return strings.ToLower(surname) + fmt.Sprintf("%d", s.Year)
}

// BibTeX renders one entry per record in store order. Policy documents
// become techreport entries, everything else article. Colliding citation
// keys get deterministic a, b, ... suffixes.
func (b *BibliographyGenerator) BibTeX() string {
	var entries []string
	seen := make(map[string]int)

	for _, s := range b.db.Studies() {
		key := citationKey(s)
		if n, ok := seen[key]; ok {
			seen[key] = n + 1
			key = fmt.Sprintf("%s%c", key, 'a'+rune(n-1))
		} else {
			seen[key] = 1
		}

		entryType := "article"
		if s.StudyType == models.TypePolicyDocument {
			entryType = "techreport"
		}

		lines := []string{
			fmt.Sprintf("@%s{%s,", entryType, key),
			fmt.Sprintf("  author = {%s},", s.Authors),
			fmt.Sprintf("  title = {%s},", s.Title),
			fmt.Sprintf("  journal = {%s},", s.Journal),
			fmt.Sprintf("  year = {%d},", s.Year),
		}
		if s.DOI != "" {
			lines = append(lines, fmt.Sprintf("  doi = {%s},", s.DOI))
		}
		lines = append(lines, "}")
		entries = append(entries, strings.Join(lines, "\n"))
	}

	header := "% EHDS Systematic Review Bibliography\n% Generated by ehds-lens\n\n"
	return header + strings.Join(entries, "\n\n")
}

// RIS renders one stanza per record with a fixed field order.
func (b *BibliographyGenerator) RIS() string {
	var entries []string

	for _, s := range b.db.Studies() {
		lines := []string{
			"TY  - JOUR",
			fmt.Sprintf("AU  - %s", s.Authors),
			fmt.Sprintf("TI  - %s", s.Title),
			fmt.Sprintf("JO  - %s", s.Journal),
			fmt.Sprintf("PY  - %d", s.Year),
		}
		if s.DOI != "" {
			lines = append(lines, fmt.Sprintf("DO  - %s", s.DOI))
		}
		lines = append(lines, "ER  - ")
		entries = append(entries, strings.Join(lines, "\n"))
	}

	return strings.Join(entries, "\n\n")
}

// TextBibliography renders numbered citations sorted by year, then authors.
func (b *BibliographyGenerator) TextBibliography(style string) (string, error) {
	if style != "apa" && style != "vancouver" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, style)
	}

	studies := b.db.Studies()
	sort.SliceStable(studies, func(i, j int) bool {
		if studies[i].Year != studies[j].Year {
			return studies[i].Year < studies[j].Year
		}
		return studies[i].Authors < studies[j].Authors
	})

	citations := make([]string, 0, len(studies))
	for i, s := range studies {
		citations = append(citations, fmt.Sprintf("[%d] %s", i+1, FormatCitation(s, style)))
	}

	header := fmt.Sprintf("# EHDS Systematic Review Bibliography (%s Style)\n\n", strings.ToUpper(style))
	return header + strings.Join(citations, "\n\n"), nil
}

// WriteBibliography renders the requested format ("bibtex", "ris", "apa",
// "vancouver") into a file. Unknown formats fail fast; I/O errors are
// passed through to the caller.
func (b *BibliographyGenerator) WriteBibliography(path, format string) error {
	var content string
	var err error

	switch format {
	case "bibtex":
		content = b.BibTeX()
	case "ris":
		content = b.RIS()
	case "apa", "vancouver":
		content, err = b.TextBibliography(format)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	b.logger.Info("bibliography written", zap.String("path", path), zap.String("format", format))
	return nil
}
