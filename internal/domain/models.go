package domain

import (
	"strconv"
	"time"
)

// Consultation Models

// QuestionStep is one question in the fixed consultation sequence.
// Steps are immutable and defined at startup; slice order defines asking
// order.
type QuestionStep struct {
	Key            StepKey           `json:"key"`
	Prompt         string            `json:"prompt"`
	PromptVariants []string          `json:"prompt_variants,omitempty"`
	Kind           StepKind          `json:"kind"`
	Min            int               `json:"min,omitempty"`
	Max            int               `json:"max,omitempty"`
	Choices        []SymptomResponse `json:"choices,omitempty"`
	Optional       bool              `json:"optional,omitempty"`
}

// Answer is a single recorded answer. Exactly one of the value fields is
// meaningful for a given step kind; Skipped marks an optional step the
// user left blank.
type Answer struct {
	Kind    StepKind        `json:"kind"`
	Text    string          `json:"text,omitempty"`
	Number  int             `json:"number,omitempty"`
	Choice  SymptomResponse `json:"choice,omitempty"`
	Skipped bool            `json:"skipped,omitempty"`
}

// Display returns the transcript representation of the answer.
func (a Answer) Display() string {
	if a.Skipped {
		return "Skipped"
	}
	switch a.Kind {
	case NUMBER:
		return strconv.Itoa(a.Number)
	case CHOICE:
		return a.Choice.String()
	default:
		return a.Text
	}
}

// AnswerSet maps step keys to recorded answers. It grows monotonically as
// steps are answered and is only emptied by an explicit reset.
type AnswerSet map[StepKey]Answer

// Age returns the numeric age answer when present.
func (s AnswerSet) Age() (int, bool) {
	a, ok := s[StepAge]
	if !ok || a.Skipped || a.Kind != NUMBER {
		return 0, false
	}
	return a.Number, true
}

// Oxygen returns the oxygen saturation reading when present.
func (s AnswerSet) Oxygen() (int, bool) {
	a, ok := s[StepOxygen]
	if !ok || a.Skipped || a.Kind != NUMBER {
		return 0, false
	}
	return a.Number, true
}

// Text returns the free-text answer for key, with skipped answers
// normalized to the empty string.
func (s AnswerSet) Text(key StepKey) string {
	a, ok := s[key]
	if !ok || a.Skipped {
		return ""
	}
	return a.Text
}

// Flag returns the symptom response for a flag step; absent answers read
// as NO.
func (s AnswerSet) Flag(key StepKey) SymptomResponse {
	a, ok := s[key]
	if !ok || a.Skipped || a.Kind != CHOICE {
		return NO
	}
	return a.Choice
}

// Clone returns a shallow copy of the answer set.
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// TranscriptEntry is one line of the consultation chat.
type TranscriptEntry struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// ConsultationState holds all mutable state of one consultation session.
// Invariant: StepIndex equals the count of answered steps; StepIndex equal
// to the number of steps marks completion.
type ConsultationState struct {
	StepIndex  int               `json:"step_index"`
	Answers    AnswerSet         `json:"answers"`
	Transcript []TranscriptEntry `json:"transcript"`
}

// NewConsultationState returns a fresh state at the first step.
func NewConsultationState() *ConsultationState {
	return &ConsultationState{
		StepIndex: 0,
		Answers:   make(AnswerSet),
	}
}

// LastEntry returns the most recent transcript entry.
func (c *ConsultationState) LastEntry() (TranscriptEntry, bool) {
	if len(c.Transcript) == 0 {
		return TranscriptEntry{}, false
	}
	return c.Transcript[len(c.Transcript)-1], true
}

// Append adds a transcript entry.
func (c *ConsultationState) Append(speaker Speaker, text string) {
	c.Transcript = append(c.Transcript, TranscriptEntry{Speaker: speaker, Text: text})
}

// Catalog Models

// DiseaseProfile is a static catalog entry describing one epidemic
// disease. Profiles are read-only reference data, never mutated at
// runtime.
type DiseaseProfile struct {
	Name                string    `json:"name"`
	RequiredSymptomKeys []StepKey `json:"required_symptom_keys"`
	FreeTextKeywords    []string  `json:"free_text_keywords"`
	Description         string    `json:"description"`
	Precautions         []string  `json:"precautions"`
	ContagiousPeriod    string    `json:"contagious_period"`
	RecoveryTime        string    `json:"recovery_time"`
}

// Assessment Models

// ScoreBreakdown maps scoring-factor names to contributed points. The
// values sum to the total risk score.
type ScoreBreakdown map[string]int

// Total sums the breakdown contributions.
func (b ScoreBreakdown) Total() int {
	total := 0
	for _, points := range b {
		total += points
	}
	return total
}

// RiskResult is the output of a risk assessment pass.
type RiskResult struct {
	Level     RiskLevel      `json:"level"`
	Score     int            `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Advisory  string         `json:"advisory"`
}

// DiagnosisCandidate is one disease ranked by weighted symptom/keyword
// match against the current answer set.
type DiagnosisCandidate struct {
	DiseaseName      string   `json:"disease_name"`
	MatchPercentage  int      `json:"match_percentage"`
	WeightedScore    float64  `json:"weighted_score"`
	Description      string   `json:"description"`
	Precautions      []string `json:"precautions"`
	ContagiousPeriod string   `json:"contagious_period"`
	RecoveryTime     string   `json:"recovery_time"`
}

// CarePlan is a template-selected, disease-adjusted bundle of textual
// guidance fields. It is derived data, replaced wholesale on each
// assessment run.
type CarePlan struct {
	Medication []string `json:"medication"`
	Rest       string   `json:"rest"`
	Diet       string   `json:"diet"`
	Monitoring string   `json:"monitoring"`
	FollowUp   string   `json:"follow_up"`
	Duration   string   `json:"duration"`
	Isolation  string   `json:"isolation"`
}

// AssessmentResult bundles everything produced when a consultation
// completes.
type AssessmentResult struct {
	RiskLevel      RiskLevel            `json:"risk_level"`
	Score          int                  `json:"score"`
	Breakdown      ScoreBreakdown       `json:"breakdown"`
	Advisory       string               `json:"advisory"`
	Candidates     []DiagnosisCandidate `json:"candidates"`
	CarePlan       CarePlan             `json:"care_plan"`
	ProcessingTime time.Duration        `json:"processing_time"`
	GeneratedAt    time.Time            `json:"generated_at"`
}

// Progress Models

// ProgressLog is the append-only sequence of daily check-ins for one
// session. At most one entry exists per calendar date.
type ProgressLog struct {
	Entries []ProgressEntry `json:"entries"`
}

// ProgressEntry is one daily check-in record.
type ProgressEntry struct {
	Date            time.Time `json:"date"`
	Rating          int       `json:"rating"`
	Symptoms        []string  `json:"symptoms"`
	MedicationTaken bool      `json:"medication_taken"`
}

// AdherenceSummary reports medication adherence over the tracked period.
// Rate is nil when no entries have been recorded yet.
type AdherenceSummary struct {
	Rate  *float64 `json:"rate"`
	Taken int      `json:"taken"`
	Total int      `json:"total"`
}

// RatingPoint is one point of the rating-over-time series.
type RatingPoint struct {
	Date   time.Time `json:"date"`
	Rating int       `json:"rating"`
}

// Configuration Models

// Config represents the main application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Session SessionConfig `mapstructure:"session"`
	Rate    RateConfig    `mapstructure:"rate"`
	Risk    RiskConfig    `mapstructure:"risk"`
	Speech  SpeechConfig  `mapstructure:"speech"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SessionConfig represents session store configuration
type SessionConfig struct {
	MaxSessions int           `mapstructure:"max_sessions"`
	TTL         time.Duration `mapstructure:"ttl"`
}

// RateConfig represents API rate limiting configuration
type RateConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// RiskConfig holds the risk scoring weight table and thresholds. The
// constants are configuration, not medically validated values.
type RiskConfig struct {
	SeniorAge              int            `mapstructure:"senior_age"`
	SeniorAgePoints        int            `mapstructure:"senior_age_points"`
	MiddleAge              int            `mapstructure:"middle_age"`
	MiddleAgePoints        int            `mapstructure:"middle_age_points"`
	ConditionsPoints       int            `mapstructure:"conditions_points"`
	SymptomWeights         map[string]int `mapstructure:"symptom_weights"`
	OxygenCriticalPoints   int            `mapstructure:"oxygen_critical_points"`
	OxygenLowPoints        int            `mapstructure:"oxygen_low_points"`
	OxygenBorderlinePoints int            `mapstructure:"oxygen_borderline_points"`
	HighThreshold          int            `mapstructure:"high_threshold"`
	MediumThreshold        int            `mapstructure:"medium_threshold"`
}

// SpeechConfig represents the outbound text-to-speech sink configuration.
// The core only emits plain text; synthesis and playback are external.
type SpeechConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	BaseURL     string        `mapstructure:"base_url"`
	Voice       string        `mapstructure:"voice"`
	Timeout     time.Duration `mapstructure:"timeout"`
	RateLimit   int           `mapstructure:"rate_limit"`
	MaxRequests uint32        `mapstructure:"max_requests"`
	Interval    time.Duration `mapstructure:"interval"`
	CBTimeout   time.Duration `mapstructure:"cb_timeout"`
	Failures    uint32        `mapstructure:"failures"`
}
