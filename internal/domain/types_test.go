package domain

import (
	"testing"
	"time"
)

func TestRiskLevelConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    RiskLevel
		expected string
	}{
		{"High", HIGH, "high"},
		{"Medium", MEDIUM, "medium"},
		{"Low", LOW, "low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.value) != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, string(tt.value))
			}
		})
	}
}

func TestSymptomResponseConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    SymptomResponse
		expected string
	}{
		{"Yes", YES, "Yes"},
		{"No", NO, "No"},
		{"Not sure", NOT_SURE, "Not sure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.value) != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, string(tt.value))
			}
		})
	}
}

func TestSpeakerConstants(t *testing.T) {
	tests := []struct {
		name     string
		value    Speaker
		expected string
	}{
		{"Doctor", DOCTOR, "doctor"},
		{"User", USER, "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.value) != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, string(tt.value))
			}
		})
	}
}

func TestSymptomFlagKeysOrder(t *testing.T) {
	keys := SymptomFlagKeys()
	expected := []StepKey{StepFever, StepCoughBreathing, StepBodyAches, StepTasteSmell, StepFatigue}

	if len(keys) != len(expected) {
		t.Fatalf("Expected %d flag keys, got %d", len(expected), len(keys))
	}
	for i, key := range expected {
		if keys[i] != key {
			t.Errorf("Expected key %s at position %d, got %s", key, i, keys[i])
		}
	}
}

func TestAnswerDisplay(t *testing.T) {
	tests := []struct {
		name     string
		answer   Answer
		expected string
	}{
		{"skipped", Answer{Kind: NUMBER, Skipped: true}, "Skipped"},
		{"number", Answer{Kind: NUMBER, Number: 65}, "65"},
		{"choice", Answer{Kind: CHOICE, Choice: NOT_SURE}, "Not sure"},
		{"text", Answer{Kind: TEXT, Text: "John"}, "John"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.answer.Display(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAnswerSetAccessors(t *testing.T) {
	answers := AnswerSet{
		StepAge:        {Kind: NUMBER, Number: 42},
		StepConditions: {Kind: TEXT, Text: "Diabetes"},
		StepFever:      {Kind: CHOICE, Choice: YES},
		StepOxygen:     {Kind: NUMBER, Skipped: true},
	}

	if age, ok := answers.Age(); !ok || age != 42 {
		t.Errorf("Expected age 42, got %d (ok=%v)", age, ok)
	}
	if _, ok := answers.Oxygen(); ok {
		t.Error("Expected skipped oxygen reading to be absent")
	}
	if got := answers.Text(StepConditions); got != "Diabetes" {
		t.Errorf("Expected conditions text, got %q", got)
	}
	if got := answers.Flag(StepFever); got != YES {
		t.Errorf("Expected fever YES, got %s", got)
	}
	if got := answers.Flag(StepFatigue); got != NO {
		t.Errorf("Expected absent flag to read NO, got %s", got)
	}
}

func TestAnswerSetClone(t *testing.T) {
	original := AnswerSet{StepName: {Kind: TEXT, Text: "Ana"}}
	clone := original.Clone()
	clone[StepName] = Answer{Kind: TEXT, Text: "Ben"}

	if original[StepName].Text != "Ana" {
		t.Error("Mutating the clone must not affect the original")
	}
}

func TestScoreBreakdownTotal(t *testing.T) {
	breakdown := ScoreBreakdown{"age": 2, "conditions": 2, "fever": 2, "body_aches": 0}
	if got := breakdown.Total(); got != 6 {
		t.Errorf("Expected total 6, got %d", got)
	}
}

func TestConsultationStateTranscript(t *testing.T) {
	state := NewConsultationState()

	if _, ok := state.LastEntry(); ok {
		t.Error("Fresh state should have no transcript entries")
	}

	state.Append(DOCTOR, "Hello")
	state.Append(USER, "Hi")

	last, ok := state.LastEntry()
	if !ok || last.Speaker != USER || last.Text != "Hi" {
		t.Errorf("Unexpected last entry: %+v (ok=%v)", last, ok)
	}
}

func TestNewDuplicateEntryError(t *testing.T) {
	date := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	err := NewDuplicateEntryError(date)

	if err.Date != "2025-03-14" {
		t.Errorf("Expected date 2025-03-14, got %s", err.Date)
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("age", "answer must be between 0 and 120", 999)
	if err.Field != "age" {
		t.Errorf("Expected field age, got %s", err.Field)
	}
	if err.Error() == "" {
		t.Error("Expected a non-empty error message")
	}
}
