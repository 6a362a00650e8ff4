package models

import "fmt"

// Study repräsentiert eine Studie des systematischen Reviews und deren Metadaten.
type Study struct {
	ID      int    `json:"id"`
	Authors string `json:"authors"`
	Year    int    `json:"year"`
	Title   string `json:"title"`
	Journal string `json:"journal"`
	DOI     string `json:"doi,omitempty"`
	Country string `json:"country,omitempty"`

	StudyType     StudyType     `json:"study_type"`
	PrimaryAxis   ThematicAxis  `json:"primary_axis"`
	QualityRating QualityRating `json:"quality_rating"`

	// Optionale Annotationen
	SecondaryThemes []string  `json:"secondary_themes,omitempty"`
	MMATScore       float64   `json:"mmat_score,omitempty"`
	Abstract        string    `json:"abstract,omitempty"`
	KeyFindings     string    `json:"key_findings,omitempty"`
	EHDSFocus       EHDSFocus `json:"ehds_focus"`
	EHDSArticles    []string  `json:"ehds_articles,omitempty"`
	SampleSize      int       `json:"sample_size,omitempty"`
	Limitations     string    `json:"limitations,omitempty"`
	Funding         string    `json:"funding,omitempty"`
}

// ApplyDefaults setzt die deklarierten Standardwerte für leere optionale Felder.
func (s *Study) ApplyDefaults() {
	if s.QualityRating == "" {
		s.QualityRating = QualityNotApplicable
	}
	if s.EHDSFocus == "" {
		s.EHDSFocus = FocusBoth
	}
}

// Validate prüft Identität und geschlossene Enumerationen.
// Ein Verstoß ist ein Konstruktionsfehler, kein Not-Found-Fall.
func (s *Study) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("study id must be positive, got %d", s.ID)
	}
	if !s.StudyType.Valid() {
		return fmt.Errorf("study %d: invalid study type %q", s.ID, s.StudyType)
	}
	if !s.PrimaryAxis.Valid() {
		return fmt.Errorf("study %d: invalid thematic axis %q", s.ID, s.PrimaryAxis)
	}
	if !s.QualityRating.Valid() {
		return fmt.Errorf("study %d: invalid quality rating %q", s.ID, s.QualityRating)
	}
	if !s.EHDSFocus.Valid() {
		return fmt.Errorf("study %d: invalid ehds focus %q", s.ID, s.EHDSFocus)
	}
	return nil
}

// PeerReviewed meldet, ob die Studie keine graue Literatur ist.
func (s *Study) PeerReviewed() bool {
	return s.StudyType != TypePolicyDocument
}
