package models

import "fmt"

// MethLimitations stuft die methodischen Einschränkungen eines Befunds ein.
type MethLimitations string

const (
	MethNone     MethLimitations = "none"
	MethMinor    MethLimitations = "minor"
	MethModerate MethLimitations = "moderate"
	MethSerious  MethLimitations = "serious"
)

func (m MethLimitations) Valid() bool {
	switch m {
	case MethNone, MethMinor, MethModerate, MethSerious:
		return true
	}
	return false
}

// Coherence stuft die Kohärenz der Evidenz ein.
type Coherence string

const (
	CoherenceHigh     Coherence = "high"
	CoherenceModerate Coherence = "moderate"
	CoherenceLow      Coherence = "low"
)

func (c Coherence) Valid() bool {
	switch c {
	case CoherenceHigh, CoherenceModerate, CoherenceLow:
		return true
	}
	return false
}

// Adequacy stuft die Datenadäquanz ein.
type Adequacy string

const (
	AdequacyAdequate    Adequacy = "adequate"
	AdequacyLimited     Adequacy = "limited"
	AdequacyVeryLimited Adequacy = "very_limited"
)

func (a Adequacy) Valid() bool {
	switch a {
	case AdequacyAdequate, AdequacyLimited, AdequacyVeryLimited:
		return true
	}
	return false
}

// Relevance stuft die Relevanz für die Reviewfrage ein.
type Relevance string

const (
	RelevanceHigh     Relevance = "high"
	RelevanceModerate Relevance = "moderate"
	RelevanceLow      Relevance = "low"
)

func (r Relevance) Valid() bool {
	switch r {
	case RelevanceHigh, RelevanceModerate, RelevanceLow:
		return true
	}
	return false
}

// CERQualAssessment ist die GRADE-CERQual-Bewertung eines Reviewbefunds.
// OverallConfidence wird bei der Konstruktion aus den vier Faktoren abgeleitet.
type CERQualAssessment struct {
	Finding           string          `json:"finding" yaml:"finding"`
	Axis              ThematicAxis    `json:"axis" yaml:"axis"`
	SupportingStudies []int           `json:"supporting_studies" yaml:"supporting_studies"`
	MethLimitations   MethLimitations `json:"methodological_limitations" yaml:"methodological_limitations"`
	Coherence         Coherence       `json:"coherence" yaml:"coherence"`
	Adequacy          Adequacy        `json:"adequacy" yaml:"adequacy"`
	Relevance         Relevance       `json:"relevance" yaml:"relevance"`
	OverallConfidence ConfidenceLevel `json:"overall_confidence" yaml:"-"`
	Explanation       string          `json:"explanation,omitempty" yaml:"explanation"`
}

// Validate prüft Achse und die vier CERQual-Faktoren.
func (a *CERQualAssessment) Validate() error {
	if !a.Axis.Valid() {
		return fmt.Errorf("assessment %q: invalid thematic axis %q", a.Finding, a.Axis)
	}
	if !a.MethLimitations.Valid() {
		return fmt.Errorf("assessment %q: invalid methodological limitations %q", a.Finding, a.MethLimitations)
	}
	if !a.Coherence.Valid() {
		return fmt.Errorf("assessment %q: invalid coherence %q", a.Finding, a.Coherence)
	}
	if !a.Adequacy.Valid() {
		return fmt.Errorf("assessment %q: invalid adequacy %q", a.Finding, a.Adequacy)
	}
	if !a.Relevance.Valid() {
		return fmt.Errorf("assessment %q: invalid relevance %q", a.Finding, a.Relevance)
	}
	return nil
}

// Penalty liefert den Abzug des Faktors im Downgrade-Modell.
func (m MethLimitations) Penalty() int {
	switch m {
	case MethModerate:
		return 1
	case MethSerious:
		return 2
	}
	return 0
}

// Penalty liefert den Abzug des Faktors im Downgrade-Modell.
func (c Coherence) Penalty() int {
	switch c {
	case CoherenceModerate:
		return 1
	case CoherenceLow:
		return 2
	}
	return 0
}

// Penalty liefert den Abzug des Faktors im Downgrade-Modell.
func (a Adequacy) Penalty() int {
	switch a {
	case AdequacyLimited:
		return 1
	case AdequacyVeryLimited:
		return 2
	}
	return 0
}

// Penalty liefert den Abzug des Faktors im Downgrade-Modell.
func (r Relevance) Penalty() int {
	switch r {
	case RelevanceModerate:
		return 1
	case RelevanceLow:
		return 2
	}
	return 0
}

// ScoreConfidence leitet die Konfidenzstufe aus den vier Faktoren ab.
// Ausgehend von der Obergrenze 4 (HIGH) zieht jeder Faktor seine Strafe ab;
// das Ergebnis wird auf die vier Stufen abgebildet. Reine Funktion.
func ScoreConfidence(m MethLimitations, c Coherence, a Adequacy, r Relevance) ConfidenceLevel {
	score := 4 - m.Penalty() - c.Penalty() - a.Penalty() - r.Penalty()
	switch {
	case score >= 4:
		return ConfidenceHigh
	case score >= 3:
		return ConfidenceModerate
	case score >= 2:
		return ConfidenceLow
	}
	return ConfidenceVeryLow
}

// NewCERQualAssessment konstruiert eine validierte Bewertung und leitet
// die Gesamtkonfidenz ab.
func NewCERQualAssessment(
	finding string,
	axis ThematicAxis,
	supportingStudies []int,
	meth MethLimitations,
	coherence Coherence,
	adequacy Adequacy,
	relevance Relevance,
	explanation string,
) (CERQualAssessment, error) {
	a := CERQualAssessment{
		Finding:           finding,
		Axis:              axis,
		SupportingStudies: supportingStudies,
		MethLimitations:   meth,
		Coherence:         coherence,
		Adequacy:          adequacy,
		Relevance:         relevance,
		Explanation:       explanation,
	}
	if err := a.Validate(); err != nil {
		return CERQualAssessment{}, err
	}
	a.OverallConfidence = ScoreConfidence(meth, coherence, adequacy, relevance)
	return a, nil
}

// ThematicFinding ist ein synthetisierter Befund einer thematischen Achse.
type ThematicFinding struct {
	Axis              ThematicAxis    `json:"axis"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	SupportingStudies []int           `json:"supporting_studies,omitempty"`
	Confidence        ConfidenceLevel `json:"confidence"`
	KeyQuotes         []string        `json:"key_quotes,omitempty"`
}

// StudyCount liefert die Anzahl der stützenden Studien.
func (f *ThematicFinding) StudyCount() int {
	return len(f.SupportingStudies)
}
