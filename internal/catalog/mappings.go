// internal/catalog/mappings.go
package catalog

import "career-assessment-workers/internal/models"

// MappingTable projects the categories of one test onto career fields.
type MappingTable map[models.Category][]models.CareerField

// Mappings holds one table per test type.
type Mappings map[models.TestType]MappingTable

// PersonalityMapping maps RIASEC traits to career fields.
func PersonalityMapping() MappingTable {
	return MappingTable{
		models.TraitRealistic:     {models.FieldEngineering, models.FieldTechnical, models.FieldConstruction, models.FieldManufacturing},
		models.TraitInvestigative: {models.FieldMedical, models.FieldResearch, models.FieldScience, models.FieldLaboratory},
		models.TraitArtistic:      {models.FieldArts, models.FieldMedia, models.FieldDesign, models.FieldCreative},
		models.TraitSocial:        {models.FieldTeaching, models.FieldCounseling, models.FieldHealthcare, models.FieldSocialWork},
		models.TraitEnterprising:  {models.FieldBusiness, models.FieldManagement, models.FieldSales, models.FieldEntrepreneurship},
		models.TraitConventional:  {models.FieldAccounting, models.FieldAdministration, models.FieldFinance, models.FieldDataEntry},
	}
}

// AptitudeMapping maps aptitude skills (not display sections) to career fields.
func AptitudeMapping() MappingTable {
	return MappingTable{
		models.SkillLogical:      {models.FieldEngineering, models.FieldComputerScience, models.FieldMathematics},
		models.SkillMathematical: {models.FieldEngineering, models.FieldComputerScience, models.FieldFinance, models.FieldEconomics, models.FieldMathematics},
		models.SkillVerbal:       {models.FieldBusiness, models.FieldMedia, models.FieldLaw, models.FieldSocialSciences, models.FieldJournalism},
		models.SkillAnalytical:   {models.FieldEngineering, models.FieldComputerScience, models.FieldResearch, models.FieldDataScience},
	}
}

// InterestMapping maps interest categories one to one onto career fields.
func InterestMapping() MappingTable {
	return MappingTable{
		models.InterestEngineering:     {models.FieldEngineering},
		models.InterestMedical:         {models.FieldMedical},
		models.InterestBusiness:        {models.FieldBusiness},
		models.InterestComputerScience: {models.FieldComputerScience},
		models.InterestArts:            {models.FieldArts},
	}
}

// DefaultMappings returns the three mapping tables.
func DefaultMappings() Mappings {
	return Mappings{
		models.TestPersonality: PersonalityMapping(),
		models.TestAptitude:    AptitudeMapping(),
		models.TestInterest:    InterestMapping(),
	}
}
