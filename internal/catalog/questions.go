// internal/catalog/questions.go
package catalog

import "career-assessment-workers/internal/models"

func likert(id int, text string, t models.TestType, c models.Category) models.Question {
	return models.Question{ID: id, Text: text, TestType: t, Category: c}
}

func mcq(id int, text string, options []string, correct string, section, skill models.Category) models.Question {
	return models.Question{
		ID:            id,
		Text:          text,
		TestType:      models.TestAptitude,
		Category:      section,
		Options:       options,
		CorrectAnswer: correct,
		SkillType:     skill,
	}
}

// PersonalityQuestions is the 36 item RIASEC inventory, six per trait.
func PersonalityQuestions() []models.Question {
	p := models.TestPersonality
	return []models.Question{
		likert(1, "I enjoy working with tools, machines, and hands-on activities", p, models.TraitRealistic),
		likert(2, "I prefer practical, concrete tasks over abstract thinking", p, models.TraitRealistic),
		likert(3, "I like building, fixing, or constructing things", p, models.TraitRealistic),
		likert(4, "I enjoy outdoor activities and working with nature", p, models.TraitRealistic),
		likert(5, "I prefer working with things rather than people", p, models.TraitRealistic),
		likert(6, "I am good at operating machinery and technical equipment", p, models.TraitRealistic),

		likert(7, "I enjoy conducting research and solving complex problems", p, models.TraitInvestigative),
		likert(8, "I like analyzing data and finding patterns", p, models.TraitInvestigative),
		likert(9, "I am curious about how things work and why they happen", p, models.TraitInvestigative),
		likert(10, "I enjoy scientific experiments and laboratory work", p, models.TraitInvestigative),
		likert(11, "I prefer working independently on challenging problems", p, models.TraitInvestigative),
		likert(12, "I am interested in understanding natural phenomena and scientific principles", p, models.TraitInvestigative),

		likert(13, "I enjoy creative activities like writing, drawing, or music", p, models.TraitArtistic),
		likert(14, "I prefer expressing myself through art, design, or performance", p, models.TraitArtistic),
		likert(15, "I like working in unstructured, flexible environments", p, models.TraitArtistic),
		likert(16, "I am imaginative and enjoy thinking outside the box", p, models.TraitArtistic),
		likert(17, "I appreciate beauty, aesthetics, and creative expression", p, models.TraitArtistic),
		likert(18, "I prefer activities that allow for self-expression and originality", p, models.TraitArtistic),

		likert(19, "I enjoy helping and teaching others", p, models.TraitSocial),
		likert(20, "I like working in teams and collaborating with people", p, models.TraitSocial),
		likert(21, "I am good at understanding people's feelings and needs", p, models.TraitSocial),
		likert(22, "I prefer jobs that involve serving or helping others", p, models.TraitSocial),
		likert(23, "I enjoy counseling, mentoring, or providing guidance to others", p, models.TraitSocial),
		likert(24, "I am interested in social issues and community welfare", p, models.TraitSocial),

		likert(25, "I enjoy leading and managing others", p, models.TraitEnterprising),
		likert(26, "I like persuading and influencing people", p, models.TraitEnterprising),
		likert(27, "I am interested in business, sales, and making profits", p, models.TraitEnterprising),
		likert(28, "I prefer competitive environments and achieving goals", p, models.TraitEnterprising),
		likert(29, "I enjoy taking risks and making important decisions", p, models.TraitEnterprising),
		likert(30, "I am ambitious and want to achieve success in business or leadership", p, models.TraitEnterprising),

		likert(31, "I prefer organized, structured work environments", p, models.TraitConventional),
		likert(32, "I enjoy working with data, numbers, and detailed records", p, models.TraitConventional),
		likert(33, "I like following established procedures and routines", p, models.TraitConventional),
		likert(34, "I am good at organizing information and maintaining accuracy", p, models.TraitConventional),
		likert(35, "I prefer clear instructions and well-defined tasks", p, models.TraitConventional),
		likert(36, "I enjoy administrative work and keeping things in order", p, models.TraitConventional),
	}
}

// AptitudeQuestions is the 40 item multiple-choice test, ten per section.
func AptitudeQuestions() []models.Question {
	lr, la := models.SectionLogical, models.SkillLogical
	mr, ma := models.SectionMathematical, models.SkillMathematical
	vr, va := models.SectionVerbal, models.SkillVerbal
	ar, aa := models.SectionAnalytical, models.SkillAnalytical

	return []models.Question{
		mcq(1, "If all roses are flowers, and some flowers are red, which statement must be true?",
			[]string{"A) All roses are red", "B) Some roses are red", "C) All red things are roses", "D) Cannot be determined"}, "D", lr, la),
		mcq(2, "Complete the sequence: 2, 6, 12, 20, 30, ?",
			[]string{"A) 40", "B) 42", "C) 44", "D) 46"}, "B", lr, la),
		mcq(3, "If Monday is the first day, what day is the 25th day?",
			[]string{"A) Monday", "B) Tuesday", "C) Wednesday", "D) Thursday"}, "D", lr, la),
		mcq(4, "A is taller than B, C is shorter than A. Who is the tallest?",
			[]string{"A) A", "B) B", "C) C", "D) Cannot be determined"}, "A", lr, la),
		mcq(5, "If CAT is coded as 3120, how is DOG coded?",
			[]string{"A) 4157", "B) 4156", "C) 4158", "D) 4159"}, "A", lr, la),
		mcq(6, "Find the odd one out: Apple, Orange, Banana, Carrot",
			[]string{"A) Apple", "B) Orange", "C) Banana", "D) Carrot"}, "D", lr, la),
		mcq(7, "If 5 workers can build a wall in 10 days, how many days will 10 workers take?",
			[]string{"A) 5 days", "B) 10 days", "C) 15 days", "D) 20 days"}, "A", lr, la),
		mcq(8, "Complete: If it rains, then the ground is wet. The ground is wet. Therefore?",
			[]string{"A) It must have rained", "B) It might have rained", "C) It did not rain", "D) Cannot conclude"}, "D", lr, la),
		mcq(9, "What comes next: Z, Y, X, W, ?",
			[]string{"A) V", "B) U", "C) T", "D) S"}, "A", lr, la),
		mcq(10, "If all students study, and some students play sports, which is true?",
			[]string{"A) All students play sports", "B) Some students who study play sports", "C) No students play sports", "D) Cannot be determined"}, "B", lr, la),

		mcq(11, "What is 25% of 200?",
			[]string{"A) 40", "B) 50", "C) 60", "D) 75"}, "B", mr, ma),
		mcq(12, "If x + 5 = 12, what is x?",
			[]string{"A) 5", "B) 6", "C) 7", "D) 8"}, "C", mr, ma),
		mcq(13, "What is the square root of 144?",
			[]string{"A) 10", "B) 11", "C) 12", "D) 13"}, "C", mr, ma),
		mcq(14, "If a train travels 120 km in 2 hours, what is its speed?",
			[]string{"A) 50 km/h", "B) 60 km/h", "C) 70 km/h", "D) 80 km/h"}, "B", mr, ma),
		mcq(15, "What is 3/4 + 1/2?",
			[]string{"A) 1", "B) 1.25", "C) 1.5", "D) 1.75"}, "B", mr, ma),
		mcq(16, "If a rectangle has length 8 and width 5, what is its area?",
			[]string{"A) 13", "B) 26", "C) 40", "D) 45"}, "C", mr, ma),
		mcq(17, "What is 15 × 6?",
			[]string{"A) 80", "B) 90", "C) 100", "D) 110"}, "B", mr, ma),
		mcq(18, "If 2x - 4 = 10, what is x?",
			[]string{"A) 5", "B) 6", "C) 7", "D) 8"}, "C", mr, ma),
		mcq(19, "What is the average of 10, 20, 30, 40?",
			[]string{"A) 20", "B) 25", "C) 30", "D) 35"}, "B", mr, ma),
		mcq(20, "If 1 dollar = 280 rupees, how many rupees is 5 dollars?",
			[]string{"A) 1200", "B) 1300", "C) 1400", "D) 1500"}, "C", mr, ma),

		mcq(21, "Choose the synonym of 'BRIEF':",
			[]string{"A) Long", "B) Short", "C) Detailed", "D) Complete"}, "B", vr, va),
		mcq(22, "Choose the antonym of 'ANCIENT':",
			[]string{"A) Old", "B) Modern", "C) Historic", "D) Traditional"}, "B", vr, va),
		mcq(23, "Fill in the blank: The student _____ the exam yesterday.",
			[]string{"A) take", "B) takes", "C) took", "D) taking"}, "C", vr, va),
		mcq(24, "What does 'AMBIGUOUS' mean?",
			[]string{"A) Clear", "B) Unclear or having multiple meanings", "C) Simple", "D) Complex"}, "B", vr, va),
		mcq(25, "Choose the correct spelling:",
			[]string{"A) Recieve", "B) Receive", "C) Receeve", "D) Receve"}, "B", vr, va),
		mcq(26, "Which word is a noun?",
			[]string{"A) Run", "B) Quickly", "C) Beautiful", "D) Happiness"}, "D", vr, va),
		mcq(27, "Fill in the blank: She is _____ than her sister.",
			[]string{"A) tall", "B) taller", "C) tallest", "D) more tall"}, "B", vr, va),
		mcq(28, "What is the plural of 'child'?",
			[]string{"A) childs", "B) children", "C) childes", "D) childrens"}, "B", vr, va),
		mcq(29, "Choose the synonym of 'ENORMOUS':",
			[]string{"A) Small", "B) Tiny", "C) Huge", "D) Medium"}, "C", vr, va),
		mcq(30, "Fill in the blank: I _____ to the library every week.",
			[]string{"A) go", "B) goes", "C) going", "D) went"}, "A", vr, va),

		mcq(31, "If pattern: 3, 9, 27, 81, what comes next?",
			[]string{"A) 162", "B) 243", "C) 324", "D) 405"}, "B", ar, aa),
		mcq(32, "Analyze: All birds fly. Penguins are birds. Therefore?",
			[]string{"A) Penguins fly", "B) Penguins do not fly", "C) Some birds do not fly", "D) Cannot conclude"}, "C", ar, aa),
		mcq(33, "If A=1, B=2, C=3, what is the value of CAT?",
			[]string{"A) 24", "B) 25", "C) 26", "D) 27"}, "A", ar, aa),
		mcq(34, "Find the pattern: 2, 4, 8, 16, ?",
			[]string{"A) 24", "B) 32", "C) 40", "D) 48"}, "B", ar, aa),
		mcq(35, "If 3 books cost 450 rupees, how much do 5 books cost?",
			[]string{"A) 600", "B) 650", "C) 700", "D) 750"}, "D", ar, aa),
		mcq(36, "Analyze: Some students are athletes. All athletes are fit. Therefore?",
			[]string{"A) All students are fit", "B) Some students are fit", "C) No students are fit", "D) Cannot conclude"}, "B", ar, aa),
		mcq(37, "If today is Friday, what day will it be in 10 days?",
			[]string{"A) Monday", "B) Tuesday", "C) Wednesday", "D) Thursday"}, "A", ar, aa),
		mcq(38, "Find the missing number: 5, 10, 20, 40, ?",
			[]string{"A) 60", "B) 70", "C) 80", "D) 90"}, "C", ar, aa),
		mcq(39, "If a clock shows 3:15, what is the angle between hands?",
			[]string{"A) 0°", "B) 7.5°", "C) 15°", "D) 30°"}, "B", ar, aa),
		mcq(40, "Analyze: All doctors are educated. Some educated people are teachers. Therefore?",
			[]string{"A) All doctors are teachers", "B) Some doctors might be teachers", "C) No doctors are teachers", "D) Cannot conclude"}, "D", ar, aa),
	}
}

// InterestQuestions is the 36 item interest survey. The last six questions
// belong to the work environment subset.
func InterestQuestions() []models.Question {
	i := models.TestInterest
	return []models.Question{
		likert(1, "I enjoy solving mathematical problems and puzzles", i, models.InterestEngineering),
		likert(2, "I'm interested in understanding how machines and devices work", i, models.InterestEngineering),
		likert(3, "I'm good at analyzing and solving technical problems", i, models.InterestEngineering),
		likert(4, "I like designing and building structures or systems", i, models.InterestEngineering),
		likert(5, "I enjoy working with tools, equipment, and technology", i, models.InterestEngineering),
		likert(6, "I'm interested in physics, mechanics, and how things function", i, models.InterestEngineering),

		likert(7, "I enjoy learning about human body and health sciences", i, models.InterestMedical),
		likert(8, "I would like to help people with their health problems", i, models.InterestMedical),
		likert(9, "I enjoy conducting experiments and lab work", i, models.InterestMedical),
		likert(10, "I'm interested in biology, chemistry, and life sciences", i, models.InterestMedical),
		likert(11, "I want to work in healthcare and make a difference in people's lives", i, models.InterestMedical),
		likert(12, "I'm comfortable working in hospitals, clinics, or laboratories", i, models.InterestMedical),

		likert(13, "I'm good at managing money and understanding business concepts", i, models.InterestBusiness),
		likert(14, "I'm interested in starting my own business someday", i, models.InterestBusiness),
		likert(15, "I enjoy communicating and presenting ideas to others", i, models.InterestBusiness),
		likert(16, "I like analyzing market trends and business opportunities", i, models.InterestBusiness),
		likert(17, "I'm interested in finance, accounting, and economics", i, models.InterestBusiness),
		likert(18, "I enjoy working in corporate environments and managing projects", i, models.InterestBusiness),

		likert(19, "I enjoy working with computers and technology", i, models.InterestComputerScience),
		likert(20, "I like creating and designing things (art, websites, products)", i, models.InterestComputerScience),
		likert(21, "I'm interested in programming and software development", i, models.InterestComputerScience),
		likert(22, "I enjoy problem-solving using technology and coding", i, models.InterestComputerScience),
		likert(23, "I'm interested in artificial intelligence, data science, and emerging tech", i, models.InterestComputerScience),
		likert(24, "I like working with digital systems, networks, and cybersecurity", i, models.InterestComputerScience),

		likert(25, "I enjoy writing, reading literature, and creative arts", i, models.InterestArts),
		likert(26, "I'm interested in understanding society, history, and human behavior", i, models.InterestArts),
		likert(27, "I'm interested in social issues and helping communities", i, models.InterestArts),
		likert(28, "I enjoy media, journalism, and communication", i, models.InterestArts),
		likert(29, "I'm interested in psychology, sociology, and understanding people", i, models.InterestArts),
		likert(30, "I like creative expression through writing, design, or performance", i, models.InterestArts),

		likert(31, "I prefer working in teams and collaborating with others", i, models.InterestWorkEnvironment),
		likert(32, "I like structured work environments with clear routines", i, models.InterestWorkEnvironment),
		likert(33, "I prefer flexible work schedules and creative freedom", i, models.InterestWorkEnvironment),
		likert(34, "I enjoy working in office settings with modern facilities", i, models.InterestWorkEnvironment),
		likert(35, "I prefer field work and hands-on activities over desk work", i, models.InterestWorkEnvironment),
		likert(36, "I like working independently and managing my own projects", i, models.InterestWorkEnvironment),
	}
}

// Questions returns every catalog keyed by test type.
func Questions() map[models.TestType][]models.Question {
	return map[models.TestType][]models.Question{
		models.TestPersonality: PersonalityQuestions(),
		models.TestAptitude:    AptitudeQuestions(),
		models.TestInterest:    InterestQuestions(),
	}
}
