package services

import (
	"fmt"
	"os"
	"strings"
)

// ExtractionTemplate renders the blank data-extraction form used when
// coding a new study into the review.
func ExtractionTemplate() string {
	var b strings.Builder

	b.WriteString(`# EHDS Study Data Extraction Form

## Bibliographic Information
- **Study ID**: [Numeric identifier]
- **First Author**: [Last name]
- **Publication Year**: [YYYY]
- **Title**: [Full title]
- **Journal/Source**: [Journal name or source type]
- **DOI**: [If available]
- **Country**: [Country of first author]

## Study Characteristics
- **Study Design**: [ ] Qualitative [ ] Quantitative [ ] Mixed Methods [ ] Conceptual [ ] Review [ ] Policy
- **Methodology**: [Specific method]
- **Sample/Data Sources**: [Description]
- **Sample Size**: [n, if applicable]
- **Theoretical Framework**: [If stated]

## EHDS Focus
- **Primary Use Focus**: [ ] Yes [ ] No
- **Secondary Use Focus**: [ ] Yes [ ] No
- **EHDS Articles Referenced**: [List]
- **Geographic Scope**: [ ] EU-wide [ ] Specific MS [ ] Comparative

## Thematic Content
Primary Axis (select one):
- [ ] 1. Governance, Rights, Ethics
- [ ] 2. Secondary Use & PETs
- [ ] 3. National Implementation
- [ ] 4. Citizen Engagement
- [ ] 5. Federated Learning & AI

Secondary Themes (select all that apply):
`)
	for _, cat := range CodingFramework {
		fmt.Fprintf(&b, "- [ ] %s\n", cat.Description)
	}
	b.WriteString(`
## Key Findings
- **Main Findings**: [Summary, max 200 words]
- **Recommendations**: [If provided]
- **Limitations Acknowledged**: [ ] Yes [ ] No

## Quality Assessment (MMAT)
- **Criteria Met**: [Number out of 5]
- **Quality Rating**: [ ] High [ ] Moderate [ ] Low
- **Reviewer Notes**: [Free text]

---
*Template generated by ehds-lens*
`)
	return b.String()
}

// WriteExtractionTemplate writes the extraction form to a file.
func WriteExtractionTemplate(path string) error {
	return os.WriteFile(path, []byte(ExtractionTemplate()), 0o644)
}
