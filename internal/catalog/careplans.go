package catalog

import (
	"github.com/epidemiccare-server/internal/domain"
)

// BasePlan returns the care plan template for a risk level. The literal
// defaults are configuration constants carried over from the clinical
// content review, not computed values.
func BasePlan(level domain.RiskLevel) domain.CarePlan {
	switch level {
	case domain.HIGH:
		return domain.CarePlan{
			Medication: []string{
				"Antiviral medication (if prescribed)",
				"Paracetamol for fever (500mg every 6 hours)",
				"Cough syrup (as needed)",
				"Vitamin C supplements",
			},
			Rest:       "Complete bed rest for at least 5-7 days. Avoid any physical exertion.",
			Diet:       "Plenty of fluids (2-3 liters daily), light meals, vitamin C rich foods (citrus fruits, berries), easily digestible proteins",
			Monitoring: "Check temperature every 4 hours, monitor oxygen levels (if oximeter available), watch for breathing difficulties",
			FollowUp:   "Teleconsultation within 24 hours. Visit emergency if oxygen saturation drops below 94% or breathing becomes difficult.",
			Duration:   "7-14 days depending on recovery",
			Isolation:  "Strict isolation recommended. Use separate bathroom if possible. Wear mask around others.",
		}
	case domain.MEDIUM:
		return domain.CarePlan{
			Medication: []string{
				"Paracetamol as needed for fever",
				"Decongestants if required",
				"Throat lozenges for cough",
				"Multivitamins",
			},
			Rest:       "Adequate rest, avoid strenuous activities. 7-8 hours of sleep nightly.",
			Diet:       "Increased fluid intake (1.5-2 liters daily), balanced diet with fruits and vegetables, warm soups",
			Monitoring: "Check temperature twice daily. Watch for new or worsening symptoms.",
			FollowUp:   "Teleconsultation in 48 hours. Seek in-person care if symptoms worsen.",
			Duration:   "5-10 days",
			Isolation:  "Home isolation advised. Maintain distance from household members.",
		}
	default:
		return domain.CarePlan{
			Medication: []string{
				"Over-the-counter symptom relief as needed",
				"Saline nasal spray for congestion",
				"Honey and lemon for cough",
			},
			Rest:       "Normal activities with adequate sleep. Listen to your body and rest when tired.",
			Diet:       "Normal healthy diet with extra fluids. Herbal teas may provide comfort.",
			Monitoring: "Watch for new or worsening symptoms. Temperature check once daily.",
			FollowUp:   "Consult if symptoms persist beyond 5 days or worsen.",
			Duration:   "3-7 days",
			Isolation:  "Precautionary measures recommended. Good hygiene practices.",
		}
	}
}

// PlanOverride is one disease-specific mutation of the base plan: either
// an appended medication item or a wholesale field replacement.
type PlanOverride struct {
	AppendMedication string
	Monitoring       string
	Isolation        string
}

// PlanOverrides maps disease names to the mutations applied on top of the
// base plan when that disease ranks first. Unknown names get no override.
func PlanOverrides() map[string][]PlanOverride {
	return map[string][]PlanOverride{
		"COVID-19": {
			{AppendMedication: "Consider pulse oximetry monitoring"},
			{Isolation: "Strict isolation for 10 days from symptom onset"},
		},
		"Influenza": {
			{AppendMedication: "Antiviral medication may be beneficial if started early"},
		},
		"Dengue Fever": {
			{AppendMedication: "Avoid NSAIDs like ibuprofen or aspirin"},
			{Monitoring: "Watch for warning signs like severe abdominal pain, bleeding, or drowsiness"},
		},
	}
}

// Advisory returns the per-level advisory text shown with assessment
// results.
func Advisory(level domain.RiskLevel) string {
	switch level {
	case domain.HIGH:
		return "Based on your symptoms, you may be at high risk. Please consult a healthcare professional immediately."
	case domain.MEDIUM:
		return "Your symptoms suggest moderate risk. Monitor your condition and consider consulting a doctor if symptoms persist."
	default:
		return "Your symptoms suggest low risk. Continue to practice good hygiene and monitor your health."
	}
}
