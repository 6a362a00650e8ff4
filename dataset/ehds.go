// Package dataset bündelt die mitgelieferten Referenzdaten des EHDS-Reviews:
// die 52 eingeschlossenen Studien und die fünf GRADE-CERQual-Befunde.
package dataset

import (
	"fmt"

	"ehds-lens/models"
	"ehds-lens/store"
)

// Studies liefert eine frische Datenbank mit den 52 Studien des Reviews.
func Studies() (*store.Database, error) {
	db := store.New()
	for _, s := range ehdsStudies {
		if err := db.Add(s); err != nil {
			return nil, fmt.Errorf("load bundled studies: %w", err)
		}
	}
	return db, nil
}

var ehdsStudies = []models.Study{
	{ID: 1, Authors: "Ahmadi, H. et al.", Year: 2017, Title: "Organizational decision to adopt hospital information system", Journal: "Int J Med Inform", StudyType: models.TypeQuantitative, PrimaryAxis: models.AxisNationalImplementation, QualityRating: models.QualityHigh, Country: "Malaysia"},
	{ID: 2, Authors: "Aitken, M. et al.", Year: 2016, Title: "Public responses to sharing and linkage of health data", Journal: "BMC Med Ethics", StudyType: models.TypeSystematicReview, PrimaryAxis: models.AxisCitizenEngagement, QualityRating: models.QualityHigh, Country: "UK"},
	{ID: 3, Authors: "Ayaz, M. et al.", Year: 2021, Title: "FHIR standard: Systematic literature review", Journal: "JMIR Med Inform", StudyType: models.TypeSystematicReview, PrimaryAxis: models.AxisSecondaryUsePETs, QualityRating: models.QualityHigh, Country: "Malaysia"},
	{ID: 4, Authors: "Baumgart, D.C. & Kvedar, J.C.", Year: 2025, Title: "Germany and Europe lead digital innovation", Journal: "npj Digit Med", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisNationalImplementation, QualityRating: models.QualityHigh, Country: "Germany"},
	{ID: 5, Authors: "BEUC", Year: 2023, Title: "Consumer attitudes to health data sharing", Journal: "Policy report", StudyType: models.TypePolicyDocument, PrimaryAxis: models.AxisCitizenEngagement, QualityRating: models.QualityModerate, Country: "EU"},
	{ID: 6, Authors: "Blasimme, A. & Vayena, E.", Year: 2020, Title: "What's next for COVID-19 apps?", Journal: "Science", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Switzerland"},
	{ID: 7, Authors: "Christiansen, C.F. et al.", Year: 2025, Title: "Piloting an infrastructure for secondary use", Journal: "Eur J Public Health", StudyType: models.TypeQualitative, PrimaryAxis: models.AxisNationalImplementation, QualityRating: models.QualityHigh, Country: "Denmark"},
	{ID: 8, Authors: "Dove, E.S.", Year: 2024, Title: "The EHDS as a Case Study", Journal: "Ethics Hum Res", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "UK"},
	{ID: 9, Authors: "EFPIA", Year: 2024, Title: "Position on opt-out in the EHDS Regulation", Journal: "Position paper", StudyType: models.TypePolicyDocument, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityModerate, Country: "EU"},
	{ID: 10, Authors: "EIT Health", Year: 2024, Title: "Implementing the EHDS: Think Tank Report", Journal: "Policy report", StudyType: models.TypePolicyDocument, PrimaryAxis: models.AxisNationalImplementation, QualityRating: models.QualityModerate, Country: "EU"},
	{ID: 11, Authors: "European Commission", Year: 2025, Title: "Regulation (EU) 2025/327", Journal: "Official Journal", StudyType: models.TypePolicyDocument, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityNotApplicable, Country: "EU"},
	{ID: 12, Authors: "European Patient Forum", Year: 2025, Title: "EPF's analysis of the EHDS Regulation", Journal: "Policy report", StudyType: models.TypePolicyDocument, PrimaryAxis: models.AxisCitizenEngagement, QualityRating: models.QualityModerate, Country: "EU"},
	{ID: 13, Authors: "Forster, R.B. et al.", Year: 2025, Title: "User journeys in cross-European secondary use", Journal: "Eur J Public Health", StudyType: models.TypeQualitative, PrimaryAxis: models.AxisNationalImplementation, QualityRating: models.QualityHigh, Country: "Denmark"},
	{ID: 14, Authors: "Fröhlich, H. et al.", Year: 2025, Title: "Reality check: The aspirations of the EHDS", Journal: "JMIR", StudyType: models.TypeTechnical, PrimaryAxis: models.AxisSecondaryUsePETs, QualityRating: models.QualityHigh, Country: "Germany"},
	{ID: 15, Authors: "Frontiers", Year: 2025, Title: "Synthetic data in medical imaging within EHDS", Journal: "Front Digit Health", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisSecondaryUsePETs, QualityRating: models.QualityHigh, Country: "EU"},
	{ID: 16, Authors: "Ganna, A. et al.", Year: 2024, Title: "EHDS can be a boost for research beyond borders", Journal: "Nat Med", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Sweden"},
	{ID: 17, Authors: "Gunningham, N. et al.", Year: 2004, Title: "Social license and environmental protection", Journal: "Law Soc Inquiry", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Australia"},
	{ID: 18, Authors: "Haugo, H.T. & de Frutos Lucas, J.", Year: 2024, Title: "Moving forward with the EHDS", Journal: "Lancet Reg Health Eur", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Norway"},
	{ID: 19, Authors: "Health Policy", Year: 2025, Title: "Anticipating ethical and social dimensions of EHDS", Journal: "Health Policy", StudyType: models.TypeSystematicReview, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Netherlands"},
	{ID: 20, Authors: "Hong, Q.N. et al.", Year: 2018, Title: "MMAT version 2018", Journal: "Educ Inform", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Canada"},
	{ID: 21, Authors: "Hooghe, L. & Marks, G.", Year: 2003, Title: "Types of multi-level governance", Journal: "Am Polit Sci Rev", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "USA"},
	{ID: 22, Authors: "Hussein, R. et al.", Year: 2025, Title: "Interoperability framework of the EHDS", Journal: "JMIR", StudyType: models.TypeTechnical, PrimaryAxis: models.AxisSecondaryUsePETs, QualityRating: models.QualityHigh, Country: "Germany"},
	{ID: 23, Authors: "JMIR", Year: 2025, Title: "Lessons learned from European health data projects", Journal: "JMIR", StudyType: models.TypeQualitative, PrimaryAxis: models.AxisSecondaryUsePETs, QualityRating: models.QualityHigh, Country: "EU"},
	{ID: 24, Authors: "Kalkman, S. et al.", Year: 2022, Title: "Patients' and public views on health data sharing", Journal: "J Med Ethics", StudyType: models.TypeSystematicReview, PrimaryAxis: models.AxisCitizenEngagement, QualityRating: models.QualityHigh, Country: "Netherlands"},
	{ID: 25, Authors: "Kaye, J. et al.", Year: 2015, Title: "Dynamic consent", Journal: "Eur J Hum Genet", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "UK"},
	{ID: 26, Authors: "Lehne, M. et al.", Year: 2019, Title: "Why digital medicine depends on interoperability", Journal: "npj Digit Med", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisSecondaryUsePETs, QualityRating: models.QualityHigh, Country: "Germany"},
	{ID: 27, Authors: "Lewin, S. et al.", Year: 2018, Title: "Applying GRADE-CERQual", Journal: "Implement Sci", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Norway"},
	{ID: 28, Authors: "Marelli, L. et al.", Year: 2020, Title: "Fit for purpose? GDPR and European digital health", Journal: "Policy Stud", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Belgium"},
	{ID: 29, Authors: "Mostert, M. et al.", Year: 2016, Title: "Big Data in medical research and EU data protection", Journal: "Eur J Hum Genet", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Netherlands"},
	{ID: 30, Authors: "Nature Medicine", Year: 2025, Title: "Data sharing restrictions hampering precision health", Journal: "Nat Med", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "USA"},
	{ID: 31, Authors: "Noyes, J. et al.", Year: 2019, Title: "Synthesising quantitative and qualitative evidence", Journal: "BMJ Glob Health", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "UK"},
	{ID: 32, Authors: "npj Digital Medicine", Year: 2025, Title: "Scoping review of FL governance in healthcare", Journal: "npj Digit Med", StudyType: models.TypeSystematicReview, PrimaryAxis: models.AxisFederatedLearningAI, QualityRating: models.QualityHigh, Country: "USA"},
	{ID: 33, Authors: "Page, M.J. et al.", Year: 2021, Title: "PRISMA 2020 statement", Journal: "BMJ", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Australia"},
	{ID: 34, Authors: "Peng, L. et al.", Year: 2024, Title: "Federated ML in healthcare: Systematic review", Journal: "Comput Methods Programs Biomed", StudyType: models.TypeSystematicReview, PrimaryAxis: models.AxisFederatedLearningAI, QualityRating: models.QualityHigh, Country: "USA"},
	{ID: 35, Authors: "Pormeister, K.", Year: 2020, Title: "GDPR and big data: Leading the way for genetic data?", Journal: "Comput Law Secur Rev", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Estonia"},
	{ID: 36, Authors: "Quinn, P. et al.", Year: 2024, Title: "Will GDPR restrain HDABs under the EHDS?", Journal: "Comput Law Secur Rev", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Belgium"},
	{ID: 37, Authors: "Quinn, P. & Quinn, L.", Year: 2018, Title: "Big genetic data and its protection challenges", Journal: "Comput Law Secur Rev", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Belgium"},
	{ID: 38, Authors: "Raab, R. et al.", Year: 2023, Title: "Federated EHRs for the EHDS", Journal: "Lancet Digit Health", StudyType: models.TypeTechnical, PrimaryAxis: models.AxisSecondaryUsePETs, QualityRating: models.QualityHigh, Country: "Germany"},
	{ID: 39, Authors: "Rieke, N. et al.", Year: 2020, Title: "Future of digital health with federated learning", Journal: "npj Digit Med", StudyType: models.TypeSystematicReview, PrimaryAxis: models.AxisFederatedLearningAI, QualityRating: models.QualityHigh, Country: "Germany"},
	{ID: 40, Authors: "Royo, R. et al.", Year: 2025, Title: "Genomic data sharing in research across Europe", Journal: "Eur J Public Health", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisSecondaryUsePETs, QualityRating: models.QualityHigh, Country: "Spain"},
	{ID: 41, Authors: "Shabani, M. & Borry, P.", Year: 2018, Title: "Rules for processing genetic data under GDPR", Journal: "Eur J Hum Genet", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Belgium"},
	{ID: 42, Authors: "Slokenberga, S. et al.", Year: 2021, Title: "GDPR and biobanking", Journal: "Springer", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Sweden"},
	{ID: 43, Authors: "Staunton, C. et al.", Year: 2024, Title: "Ethical and social reflections on the proposed EHDS", Journal: "Eur J Hum Genet", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "Ireland"},
	{ID: 44, Authors: "Svingel, L.S. et al.", Year: 2025, Title: "Recommendations for HDAB implementation", Journal: "Eur J Public Health", StudyType: models.TypeQualitative, PrimaryAxis: models.AxisNationalImplementation, QualityRating: models.QualityHigh, Country: "Denmark"},
	{ID: 45, Authors: "TEHDAS", Year: 2024, Title: "Are EU member states ready for EHDS?", Journal: "Eur J Public Health", StudyType: models.TypeMixedMethods, PrimaryAxis: models.AxisNationalImplementation, QualityRating: models.QualityHigh, Country: "EU"},
	{ID: 46, Authors: "TEHDAS2", Year: 2025, Title: "Draft guideline: How to implement opt-out", Journal: "Policy document", StudyType: models.TypePolicyDocument, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityModerate, Country: "EU"},
	{ID: 47, Authors: "TEHDAS2", Year: 2025, Title: "Guideline on SPE use", Journal: "Policy document", StudyType: models.TypePolicyDocument, PrimaryAxis: models.AxisSecondaryUsePETs, QualityRating: models.QualityModerate, Country: "EU"},
	{ID: 48, Authors: "Thomas, J. & Harden, A.", Year: 2008, Title: "Methods for thematic synthesis", Journal: "BMC Med Res Methodol", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisGovernanceRightsEthics, QualityRating: models.QualityHigh, Country: "UK"},
	{ID: 49, Authors: "Tornatzky, L.G. & Fleischer, M.", Year: 1990, Title: "The processes of technological innovation", Journal: "Book", StudyType: models.TypeConceptual, PrimaryAxis: models.AxisNationalImplementation, QualityRating: models.QualityHigh, Country: "USA"},
	{ID: 50, Authors: "van Drumpt, S. et al.", Year: 2025, Title: "Secondary use under EHDS: PETs research agenda", Journal: "Front Digit Health", StudyType: models.TypeQualitative, PrimaryAxis: models.AxisSecondaryUsePETs, QualityRating: models.QualityHigh, Country: "Netherlands"},
	{ID: 51, Authors: "Vorisek, C.N. et al.", Year: 2022, Title: "FHIR for interoperability in health research", Journal: "JMIR Med Inform", StudyType: models.TypeSystematicReview, PrimaryAxis: models.AxisSecondaryUsePETs, QualityRating: models.QualityHigh, Country: "Germany"},
	{ID: 52, Authors: "Welzel, C. et al.", Year: 2025, Title: "Enabling secure health data sharing and consent", Journal: "npj Digit Med", StudyType: models.TypeTechnical, PrimaryAxis: models.AxisCitizenEngagement, QualityRating: models.QualityHigh, Country: "Germany"},
}
