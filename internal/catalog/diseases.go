package catalog

import (
	"github.com/epidemiccare-server/internal/domain"
)

// Diseases returns the epidemic disease catalog in ranking-tiebreak
// order. The matcher uses a stable sort, so catalog position decides
// between candidates with equal weighted scores; the list is ordered by
// epidemic priority.
func Diseases() []domain.DiseaseProfile {
	return []domain.DiseaseProfile{
		{
			Name: "COVID-19",
			RequiredSymptomKeys: []domain.StepKey{
				domain.StepFever,
				domain.StepCoughBreathing,
				domain.StepBodyAches,
				domain.StepTasteSmell,
			},
			FreeTextKeywords: []string{"shortness of breath", "headache"},
			Description:      "A contagious disease caused by the SARS-CoV-2 virus.",
			Precautions: []string{
				"Isolation",
				"Rest",
				"Medical consultation",
				"Symptom monitoring",
				"Oxygen monitoring if severe",
			},
			ContagiousPeriod: "2 days before symptoms to 10 days after",
			RecoveryTime:     "2-6 weeks depending on severity",
		},
		{
			Name: "Influenza",
			RequiredSymptomKeys: []domain.StepKey{
				domain.StepFever,
				domain.StepCoughBreathing,
				domain.StepBodyAches,
				domain.StepFatigue,
			},
			FreeTextKeywords: []string{"sore throat", "headache", "chills"},
			Description:      "A viral infection that attacks your respiratory system.",
			Precautions: []string{
				"Rest",
				"Hydration",
				"Over-the-counter fever reducers",
				"Antiviral medications if prescribed",
			},
			ContagiousPeriod: "1 day before to 5-7 days after symptoms appear",
			RecoveryTime:     "3-7 days for most people",
		},
		{
			Name: "Dengue Fever",
			RequiredSymptomKeys: []domain.StepKey{
				domain.StepFever,
				domain.StepBodyAches,
			},
			FreeTextKeywords: []string{
				"severe headache",
				"pain behind eyes",
				"joint pain",
				"rash",
				"nausea",
				"vomiting",
			},
			Description: "A mosquito-borne tropical disease caused by the dengue virus.",
			Precautions: []string{
				"Hydration",
				"Rest",
				"Medical supervision",
				"Mosquito protection",
				"Avoid aspirin",
			},
			ContagiousPeriod: "Not directly contagious from person to person",
			RecoveryTime:     "2-7 days for acute phase, weeks for full recovery",
		},
		{
			Name: "Common Cold",
			RequiredSymptomKeys: []domain.StepKey{
				domain.StepCoughBreathing,
			},
			FreeTextKeywords: []string{
				"runny nose",
				"sneezing",
				"congestion",
				"sore throat",
				"mild headache",
			},
			Description: "A viral infection of your nose and throat.",
			Precautions: []string{
				"Rest",
				"Hydration",
				"Over-the-counter cold medicine",
				"Steam inhalation",
			},
			ContagiousPeriod: "1-2 days before symptoms to 5-7 days after",
			RecoveryTime:     "7-10 days",
		},
		{
			Name: "Monkeypox",
			RequiredSymptomKeys: []domain.StepKey{
				domain.StepFever,
				domain.StepBodyAches,
				domain.StepFatigue,
			},
			FreeTextKeywords: []string{
				"headache",
				"swollen lymph nodes",
				"rash",
				"chills",
				"lesions",
			},
			Description: "A viral disease that causes pox-like skin lesions.",
			Precautions: []string{
				"Isolation",
				"Symptomatic treatment",
				"Vaccination if available",
				"Avoid scratching lesions",
			},
			ContagiousPeriod: "From symptom onset until lesions have crusted over",
			RecoveryTime:     "2-4 weeks",
		},
	}
}
