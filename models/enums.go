package models

import "fmt"

// StudyType klassifiziert die Methodik einer Studie.
type StudyType string

const (
	TypeQualitative      StudyType = "qualitative"
	TypeQuantitative     StudyType = "quantitative"
	TypeMixedMethods     StudyType = "mixed_methods"
	TypeConceptual       StudyType = "conceptual"
	TypeSystematicReview StudyType = "systematic_review"
	TypePolicyDocument   StudyType = "policy_document"
	TypeTechnical        StudyType = "technical"
)

// AllStudyTypes listet alle gültigen Studientypen in deklarierter Reihenfolge.
func AllStudyTypes() []StudyType {
	return []StudyType{
		TypeQualitative, TypeQuantitative, TypeMixedMethods, TypeConceptual,
		TypeSystematicReview, TypePolicyDocument, TypeTechnical,
	}
}

func (t StudyType) Valid() bool {
	switch t {
	case TypeQualitative, TypeQuantitative, TypeMixedMethods, TypeConceptual,
		TypeSystematicReview, TypePolicyDocument, TypeTechnical:
		return true
	}
	return false
}

// ParseStudyType prüft den Rohwert und liefert den Studientyp.
func ParseStudyType(s string) (StudyType, error) {
	t := StudyType(s)
	if !t.Valid() {
		return "", fmt.Errorf("invalid study type %q", s)
	}
	return t, nil
}

// ThematicAxis ist eine der fünf thematischen Achsen des Reviews.
type ThematicAxis string

const (
	AxisGovernanceRightsEthics ThematicAxis = "governance_rights_ethics"
	AxisSecondaryUsePETs       ThematicAxis = "secondary_use_pets"
	AxisNationalImplementation ThematicAxis = "national_implementation"
	AxisCitizenEngagement      ThematicAxis = "citizen_engagement"
	AxisFederatedLearningAI    ThematicAxis = "federated_learning_ai"
)

// AllThematicAxes listet die fünf Achsen in deklarierter Reihenfolge.
func AllThematicAxes() []ThematicAxis {
	return []ThematicAxis{
		AxisGovernanceRightsEthics, AxisSecondaryUsePETs,
		AxisNationalImplementation, AxisCitizenEngagement,
		AxisFederatedLearningAI,
	}
}

func (a ThematicAxis) Valid() bool {
	switch a {
	case AxisGovernanceRightsEthics, AxisSecondaryUsePETs,
		AxisNationalImplementation, AxisCitizenEngagement,
		AxisFederatedLearningAI:
		return true
	}
	return false
}

// ParseThematicAxis prüft den Rohwert und liefert die Achse.
func ParseThematicAxis(s string) (ThematicAxis, error) {
	a := ThematicAxis(s)
	if !a.Valid() {
		return "", fmt.Errorf("invalid thematic axis %q", s)
	}
	return a, nil
}

// QualityRating ist die MMAT-basierte Qualitätsbewertung.
// Der Wire-Wert für "nicht anwendbar" ist "n/a".
type QualityRating string

const (
	QualityHigh          QualityRating = "high"
	QualityModerate      QualityRating = "moderate"
	QualityLow           QualityRating = "low"
	QualityNotApplicable QualityRating = "n/a"
)

// AllQualityRatings listet alle Bewertungen in deklarierter Reihenfolge.
func AllQualityRatings() []QualityRating {
	return []QualityRating{QualityHigh, QualityModerate, QualityLow, QualityNotApplicable}
}

func (q QualityRating) Valid() bool {
	switch q {
	case QualityHigh, QualityModerate, QualityLow, QualityNotApplicable:
		return true
	}
	return false
}

// Rank ordnet die Bewertungen LOW < MODERATE < HIGH; "n/a" liegt außerhalb
// der Ordnung und erhält Rang 0.
func (q QualityRating) Rank() int {
	switch q {
	case QualityLow:
		return 1
	case QualityModerate:
		return 2
	case QualityHigh:
		return 3
	}
	return 0
}

// ParseQualityRating prüft den Rohwert und liefert die Bewertung.
func ParseQualityRating(s string) (QualityRating, error) {
	q := QualityRating(s)
	if !q.Valid() {
		return "", fmt.Errorf("invalid quality rating %q", s)
	}
	return q, nil
}

// ConfidenceLevel ist die GRADE-CERQual-Konfidenzstufe eines Befunds.
type ConfidenceLevel string

const (
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceModerate ConfidenceLevel = "moderate"
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceVeryLow  ConfidenceLevel = "very_low"
)

func (c ConfidenceLevel) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceModerate, ConfidenceLow, ConfidenceVeryLow:
		return true
	}
	return false
}

// EHDSFocus gibt an, ob eine Studie Primär- oder Sekundärnutzung behandelt.
type EHDSFocus string

const (
	FocusPrimary   EHDSFocus = "primary"
	FocusSecondary EHDSFocus = "secondary"
	FocusBoth      EHDSFocus = "both"
)

func (f EHDSFocus) Valid() bool {
	switch f {
	case FocusPrimary, FocusSecondary, FocusBoth:
		return true
	}
	return false
}
