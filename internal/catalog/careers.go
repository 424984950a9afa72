// internal/catalog/careers.go
package catalog

import "career-assessment-workers/internal/models"

// Career is the static metadata attached to a recommended field.
type Career struct {
	Field           models.CareerField      `json:"field"`
	Description     string                  `json:"description"`
	RelatedPrograms []string                `json:"relatedPrograms"`
	Category        string                  `json:"category"`
	Specializations []models.Specialization `json:"specializations,omitempty"`
}

// CareerCatalog is keyed by field. Fields missing here are never recommended.
type CareerCatalog map[models.CareerField]Career

// DefaultCareers returns the catalog of recommendable fields.
func DefaultCareers() CareerCatalog {
	return CareerCatalog{
		models.FieldEngineering: {
			Field:           models.FieldEngineering,
			Description:     "Design and develop technical systems, infrastructure, and solutions",
			RelatedPrograms: []string{"BS Electrical Engineering", "BS Mechanical Engineering", "BS Civil Engineering"},
			Category:        "Engineering & Technology",
			Specializations: []models.Specialization{
				{Career: "Electrical Engineering", Description: "Design and develop electrical systems and equipment", RelatedPrograms: []string{"BS Electrical Engineering", "BE Electrical Engineering"}},
				{Career: "Mechanical Engineering", Description: "Design and develop mechanical systems and machinery", RelatedPrograms: []string{"BS Mechanical Engineering", "BE Mechanical Engineering"}},
				{Career: "Civil Engineering", Description: "Design and construct infrastructure projects", RelatedPrograms: []string{"BS Civil Engineering", "BE Civil Engineering"}},
			},
		},
		models.FieldMedical: {
			Field:           models.FieldMedical,
			Description:     "Work in healthcare, diagnose and treat patients, or conduct medical research",
			RelatedPrograms: []string{"MBBS", "Pharm-D", "BS Medical Lab Sciences"},
			Category:        "Health Sciences",
			Specializations: []models.Specialization{
				{Career: "Medicine (MBBS)", Description: "Diagnose and treat diseases, become a doctor", RelatedPrograms: []string{"MBBS"}},
				{Career: "Pharmacy", Description: "Study medications and their effects", RelatedPrograms: []string{"Pharm-D", "BS Pharmacy"}},
				{Career: "Medical Laboratory Technology", Description: "Work in diagnostic laboratories", RelatedPrograms: []string{"BS MLT", "BS Medical Lab Sciences"}},
			},
		},
		models.FieldBusiness: {
			Field:           models.FieldBusiness,
			Description:     "Manage organizations, analyze markets, and drive business growth",
			RelatedPrograms: []string{"BBA", "MBA", "BS Accounting"},
			Category:        "Management Sciences",
			Specializations: []models.Specialization{
				{Career: "Business Administration", Description: "Manage organizations and business operations", RelatedPrograms: []string{"BBA", "MBA"}},
				{Career: "Accounting & Finance", Description: "Manage financial records and analysis", RelatedPrograms: []string{"BBA Finance", "BS Accounting"}},
				{Career: "Marketing", Description: "Promote products and manage brand strategies", RelatedPrograms: []string{"BBA Marketing"}},
			},
		},
		models.FieldComputerScience: {
			Field:           models.FieldComputerScience,
			Description:     "Develop software, analyze data, and work with technology systems",
			RelatedPrograms: []string{"BS Computer Science", "BS Software Engineering", "BS Data Science"},
			Category:        "Engineering & Technology",
			Specializations: []models.Specialization{
				{Career: "Software Engineering", Description: "Design and develop software applications", RelatedPrograms: []string{"BS Software Engineering", "BS Computer Science"}},
				{Career: "Data Science", Description: "Analyze data and build AI/ML models", RelatedPrograms: []string{"BS Data Science", "BS Computer Science"}},
				{Career: "Cybersecurity", Description: "Protect systems from cyber threats", RelatedPrograms: []string{"BS Cybersecurity", "BS Computer Science"}},
			},
		},
		models.FieldArts: {
			Field:           models.FieldArts,
			Description:     "Create content, communicate ideas, and work in media and creative industries",
			RelatedPrograms: []string{"BS Mass Communication", "BS Psychology", "BS Sociology"},
			Category:        "Arts & Humanities",
			Specializations: []models.Specialization{
				{Career: "Mass Communication", Description: "Work in media, journalism, and public relations", RelatedPrograms: []string{"BS Mass Communication"}},
				{Career: "Psychology", Description: "Study human behavior and mental health", RelatedPrograms: []string{"BS Psychology"}},
				{Career: "Social Sciences", Description: "Study society, politics, and economics", RelatedPrograms: []string{"BS Sociology", "BS Economics"}},
			},
		},
		models.FieldFinance: {
			Field:           models.FieldFinance,
			Description:     "Manage finances, analyze economic data, and work in accounting or banking",
			RelatedPrograms: []string{"BBA Finance", "BS Economics", "BS Accounting"},
			Category:        "Management Sciences",
		},
		models.FieldTeaching: {
			Field:           models.FieldTeaching,
			Description:     "Educate others, provide guidance, and work in educational institutions",
			RelatedPrograms: []string{"B.Ed", "BS Education", "M.Ed"},
			Category:        "Education",
		},
	}
}
