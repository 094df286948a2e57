// Package catalog holds the static reference data of the triage service:
// the consultation question sequence, the epidemic disease profiles and
// the care plan templates. Everything here is read-only at runtime.
package catalog

import (
	"github.com/epidemiccare-server/internal/domain"
)

// Steps returns the fixed consultation question sequence in asking order.
// Prompts containing %s are personalized with the patient's name.
func Steps() []domain.QuestionStep {
	return []domain.QuestionStep{
		{
			Key:    domain.StepName,
			Prompt: "Hello! I'm Dr. AI, your medical assistant. What's your name?",
			Kind:   domain.TEXT,
		},
		{
			Key:    domain.StepAge,
			Prompt: "Nice to meet you, %s! How old are you?",
			PromptVariants: []string{
				"Hello %s! I'm Dr. AI. How old are you?",
				"Pleased to meet you, %s. What's your age?",
			},
			Kind: domain.NUMBER,
			Min:  0,
			Max:  120,
		},
		{
			Key:      domain.StepConditions,
			Prompt:   "Do you have any pre-existing medical conditions?",
			Kind:     domain.TEXT,
			Optional: true,
		},
		{
			Key:    domain.StepFever,
			Prompt: "Let's talk about your symptoms. Have you had a fever in the last 48 hours?",
			PromptVariants: []string{
				"Let's discuss your symptoms. Have you had a fever recently?",
				"To better understand your condition, have you experienced fever in the last 2 days?",
			},
			Kind:    domain.CHOICE,
			Choices: domain.SymptomResponses(),
		},
		{
			Key:     domain.StepCoughBreathing,
			Prompt:  "Are you experiencing any cough or difficulty breathing?",
			Kind:    domain.CHOICE,
			Choices: domain.SymptomResponses(),
		},
		{
			Key:     domain.StepBodyAches,
			Prompt:  "Do you have any body aches or joint pain?",
			Kind:    domain.CHOICE,
			Choices: domain.SymptomResponses(),
		},
		{
			Key:     domain.StepTasteSmell,
			Prompt:  "Have you noticed any loss of taste or smell?",
			Kind:    domain.CHOICE,
			Choices: domain.SymptomResponses(),
		},
		{
			Key:     domain.StepFatigue,
			Prompt:  "Are you experiencing fatigue or unusual tiredness?",
			Kind:    domain.CHOICE,
			Choices: domain.SymptomResponses(),
		},
		{
			Key:      domain.StepOtherSymptoms,
			Prompt:   "Any other symptoms you'd like to mention?",
			Kind:     domain.TEXT,
			Optional: true,
		},
		{
			Key:      domain.StepOxygen,
			Prompt:   "If you have an oximeter, what is your current oxygen saturation reading? (Leave blank to skip)",
			Kind:     domain.NUMBER,
			Min:      50,
			Max:      100,
			Optional: true,
		},
	}
}

// AnalyzingMessage is appended to the transcript exactly once when the
// consultation reaches its terminal step.
const AnalyzingMessage = "Thank you. I'm now analyzing your symptoms..."

// AnalyzingVariants are alternate phrasings of the analyzing message.
var AnalyzingVariants = []string{
	"Thank you for that information. I'm processing your symptoms now...",
	"I appreciate you sharing these details. I'm analyzing your symptoms...",
}
