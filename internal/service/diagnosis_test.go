package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epidemiccare-server/internal/domain"
)

func TestDiagnoseNoSymptoms(t *testing.T) {
	svc := NewDiagnosisService(testLogger())

	candidates := svc.Diagnose(domain.AnswerSet{
		domain.StepFever:          choiceAnswer(domain.NO),
		domain.StepCoughBreathing: choiceAnswer(domain.NO),
		domain.StepBodyAches:      choiceAnswer(domain.NO),
		domain.StepTasteSmell:     choiceAnswer(domain.NO),
		domain.StepFatigue:        choiceAnswer(domain.NO),
	})

	assert.Empty(t, candidates, "profiles without any match are excluded")
}

func TestDiagnoseCovidScenario(t *testing.T) {
	svc := NewDiagnosisService(testLogger())

	// Matches 3 of COVID-19's 4 required keys; Influenza also matches 3 of
	// its 4 and ties on weighted score, so catalog order decides.
	candidates := svc.Diagnose(domain.AnswerSet{
		domain.StepFever:          choiceAnswer(domain.YES),
		domain.StepCoughBreathing: choiceAnswer(domain.YES),
		domain.StepBodyAches:      choiceAnswer(domain.NO),
		domain.StepTasteSmell:     choiceAnswer(domain.YES),
		domain.StepFatigue:        choiceAnswer(domain.YES),
	})

	require.NotEmpty(t, candidates)
	top := candidates[0]
	assert.Equal(t, "COVID-19", top.DiseaseName)
	assert.Equal(t, 75, top.MatchPercentage)
	assert.InDelta(t, 6.0, top.WeightedScore, 0.001)

	require.GreaterOrEqual(t, len(candidates), 2)
	assert.Equal(t, "Influenza", candidates[1].DiseaseName)
	assert.InDelta(t, 6.0, candidates[1].WeightedScore, 0.001)
}

func TestDiagnoseRankingDescending(t *testing.T) {
	svc := NewDiagnosisService(testLogger())

	candidates := svc.Diagnose(domain.AnswerSet{
		domain.StepFever:          choiceAnswer(domain.YES),
		domain.StepCoughBreathing: choiceAnswer(domain.YES),
		domain.StepBodyAches:      choiceAnswer(domain.YES),
		domain.StepTasteSmell:     choiceAnswer(domain.NO),
		domain.StepFatigue:        choiceAnswer(domain.NOT_SURE),
	})

	require.NotEmpty(t, candidates)
	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].WeightedScore, candidates[i].WeightedScore)
	}
}

func TestDiagnoseNotSurePartialCredit(t *testing.T) {
	svc := NewDiagnosisService(testLogger())

	// "Not sure" alone keeps a candidate in the ranking.
	candidates := svc.Diagnose(domain.AnswerSet{
		domain.StepCoughBreathing: choiceAnswer(domain.NOT_SURE),
	})

	require.NotEmpty(t, candidates)
	var cold *domain.DiagnosisCandidate
	for i := range candidates {
		if candidates[i].DiseaseName == "Common Cold" {
			cold = &candidates[i]
		}
	}
	require.NotNil(t, cold)
	// 0.5 of 1 required key, weight 1: percentage 50, score 0.5 + 0.5.
	assert.Equal(t, 50, cold.MatchPercentage)
	assert.InDelta(t, 1.0, cold.WeightedScore, 0.001)
}

func TestDiagnoseKeywordHits(t *testing.T) {
	svc := NewDiagnosisService(testLogger())

	// No structured match; the free-text keyword alone ranks Dengue.
	candidates := svc.Diagnose(domain.AnswerSet{
		domain.StepOtherSymptoms: {Kind: domain.TEXT, Text: "I have a rash and nausea"},
	})

	names := make(map[string]domain.DiagnosisCandidate)
	for _, c := range candidates {
		names[c.DiseaseName] = c
	}

	dengue, ok := names["Dengue Fever"]
	require.True(t, ok)
	// Keywords raise the weight only; match percentage stays zero.
	assert.Equal(t, 0, dengue.MatchPercentage)
	assert.InDelta(t, 1.0, dengue.WeightedScore, 0.001) // 2 hits * 0.5

	_, ok = names["Influenza"]
	assert.False(t, ok, "no structured or keyword match must exclude the profile")
}

func TestDiagnoseKeywordMatchingRules(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"case insensitive", "Sudden RASH on my arm", true},
		{"word boundary rejects substring", "brashness", false},
		{"multi-word keyword", "pain behind eyes since morning", true},
		{"none marker ignored", "None", false},
	}

	svc := NewDiagnosisService(testLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := svc.Diagnose(domain.AnswerSet{
				domain.StepOtherSymptoms: {Kind: domain.TEXT, Text: tt.text},
			})

			found := false
			for _, c := range candidates {
				if c.DiseaseName == "Dengue Fever" {
					found = true
				}
			}
			assert.Equal(t, tt.expected, found)
		})
	}
}

func TestMatchPercentageBounds(t *testing.T) {
	tests := []struct {
		name     string
		match    float64
		required int
		expected int
	}{
		{"zero", 0, 4, 0},
		{"half", 2, 4, 50},
		{"full", 4, 4, 100},
		{"rounding", 0.5, 3, 17},
		{"no required keys", 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchPercentage(tt.match, tt.required)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}
