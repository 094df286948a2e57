package domain

// Core Enums and Types

// RiskLevel represents the triage risk categories produced by the risk engine
type RiskLevel string

const (
	HIGH   RiskLevel = "high"
	MEDIUM RiskLevel = "medium"
	LOW    RiskLevel = "low"
)

// String returns the string representation of the risk level
func (r RiskLevel) String() string {
	return string(r)
}

// StepKind represents the input kind of a consultation question step
type StepKind string

const (
	TEXT   StepKind = "text"
	NUMBER StepKind = "number"
	CHOICE StepKind = "choice"
)

// String returns the string representation of the step kind
func (k StepKind) String() string {
	return string(k)
}

// Speaker identifies who produced a transcript entry
type Speaker string

const (
	DOCTOR Speaker = "doctor"
	USER   Speaker = "user"
)

// String returns the string representation of the speaker
func (s Speaker) String() string {
	return string(s)
}

// SymptomResponse represents the answer set for symptom flag steps
type SymptomResponse string

const (
	YES      SymptomResponse = "Yes"
	NO       SymptomResponse = "No"
	NOT_SURE SymptomResponse = "Not sure"
)

// String returns the string representation of the symptom response
func (r SymptomResponse) String() string {
	return string(r)
}

// SymptomResponses lists the choices offered for every symptom flag step,
// in display order.
func SymptomResponses() []SymptomResponse {
	return []SymptomResponse{YES, NO, NOT_SURE}
}

// StepKey identifies a consultation question step. Answers are keyed by
// StepKey so symptom flags are a fixed enumerated set rather than
// dynamically constructed map keys.
type StepKey string

const (
	StepName           StepKey = "name"
	StepAge            StepKey = "age"
	StepConditions     StepKey = "conditions"
	StepFever          StepKey = "fever"
	StepCoughBreathing StepKey = "cough_breathing"
	StepBodyAches      StepKey = "body_aches"
	StepTasteSmell     StepKey = "loss_taste_smell"
	StepFatigue        StepKey = "fatigue"
	StepOtherSymptoms  StepKey = "other_symptoms"
	StepOxygen         StepKey = "spo2"
)

// String returns the string representation of the step key
func (k StepKey) String() string {
	return string(k)
}

// SymptomFlagKeys lists the structured symptom flag steps in asking order.
func SymptomFlagKeys() []StepKey {
	return []StepKey{StepFever, StepCoughBreathing, StepBodyAches, StepTasteSmell, StepFatigue}
}
