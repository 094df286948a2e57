package service

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/epidemiccare-server/internal/catalog"
	"github.com/epidemiccare-server/internal/domain"
)

// RiskEngine implements the additive risk heuristic over age,
// pre-existing conditions, symptom flags and oxygen saturation. It is a
// pure scoring engine: no I/O, no randomness, total over every valid
// answer set (missing optional answers contribute zero, never an error).
type RiskEngine struct {
	logger  *logrus.Logger
	cfg     domain.RiskConfig
	factors []riskFactor
}

// riskFactor is an individual named scoring factor
type riskFactor struct {
	Name      string
	Evaluator func(answers domain.AnswerSet) int
}

// DefaultRiskConfig returns the canonical weight table and thresholds.
// These are heuristics tuned during content review, not medically
// validated values; deployments may override any of them.
func DefaultRiskConfig() domain.RiskConfig {
	return domain.RiskConfig{
		SeniorAge:        60,
		SeniorAgePoints:  2,
		MiddleAge:        40,
		MiddleAgePoints:  1,
		ConditionsPoints: 2,
		SymptomWeights: map[string]int{
			domain.StepFever.String():          2,
			domain.StepCoughBreathing.String(): 3,
			domain.StepBodyAches.String():      1,
			domain.StepTasteSmell.String():     2,
			domain.StepFatigue.String():        1,
		},
		OxygenCriticalPoints:   5,
		OxygenLowPoints:        4,
		OxygenBorderlinePoints: 2,
		HighThreshold:          9,
		MediumThreshold:        5,
	}
}

// NewRiskEngine creates a risk engine with the given weight table.
func NewRiskEngine(logger *logrus.Logger, cfg domain.RiskConfig) *RiskEngine {
	engine := &RiskEngine{
		logger: logger,
		cfg:    cfg,
	}
	engine.initializeFactors()
	return engine
}

// Assess evaluates every factor against the answer set and returns the
// risk level, total score and the per-factor breakdown. The breakdown
// values always sum exactly to the score.
func (e *RiskEngine) Assess(answers domain.AnswerSet) *domain.RiskResult {
	breakdown := make(domain.ScoreBreakdown, len(e.factors))
	score := 0
	for _, factor := range e.factors {
		points := factor.Evaluator(answers)
		breakdown[factor.Name] = points
		score += points
	}

	level := e.determineLevel(score)

	e.logger.WithFields(logrus.Fields{
		"score":      score,
		"risk_level": level.String(),
		"factors":    len(e.factors),
	}).Info("Completed risk assessment")

	return &domain.RiskResult{
		Level:     level,
		Score:     score,
		Breakdown: breakdown,
		Advisory:  catalog.Advisory(level),
	}
}

// determineLevel applies the configured thresholds to a total score.
func (e *RiskEngine) determineLevel(score int) domain.RiskLevel {
	switch {
	case score >= e.cfg.HighThreshold:
		return domain.HIGH
	case score >= e.cfg.MediumThreshold:
		return domain.MEDIUM
	default:
		return domain.LOW
	}
}

// initializeFactors registers all scoring factors in breakdown order.
func (e *RiskEngine) initializeFactors() {
	e.addFactor("age", e.evaluateAge)
	e.addFactor("conditions", e.evaluateConditions)

	for _, key := range domain.SymptomFlagKeys() {
		weight := e.cfg.SymptomWeights[key.String()]
		e.addFactor(key.String(), e.symptomEvaluator(key, weight))
	}

	e.addFactor("oxygen_saturation", e.evaluateOxygen)

	e.logger.WithField("factor_count", len(e.factors)).Debug("Initialized risk factors")
}

// addFactor registers a named factor with the engine.
func (e *RiskEngine) addFactor(name string, evaluator func(domain.AnswerSet) int) {
	e.factors = append(e.factors, riskFactor{Name: name, Evaluator: evaluator})
}

// evaluateAge scores the age factor; a missing or skipped age scores
// zero rather than raising an error.
func (e *RiskEngine) evaluateAge(answers domain.AnswerSet) int {
	age, ok := answers.Age()
	if !ok {
		return 0
	}
	switch {
	case age >= e.cfg.SeniorAge:
		return e.cfg.SeniorAgePoints
	case age >= e.cfg.MiddleAge:
		return e.cfg.MiddleAgePoints
	default:
		return 0
	}
}

// evaluateConditions scores pre-existing conditions: any substantive
// free-text answer counts.
func (e *RiskEngine) evaluateConditions(answers domain.AnswerSet) int {
	conditions := answers.Text(domain.StepConditions)
	if conditions == "" || conditions == "None" {
		return 0
	}
	return e.cfg.ConditionsPoints
}

// symptomEvaluator builds the evaluator for one symptom flag: "Yes"
// scores the full weight, "Not sure" scores half weight (rounded, at
// least one point), "No" or absent scores zero.
func (e *RiskEngine) symptomEvaluator(key domain.StepKey, weight int) func(domain.AnswerSet) int {
	return func(answers domain.AnswerSet) int {
		switch answers.Flag(key) {
		case domain.YES:
			return weight
		case domain.NOT_SURE:
			return halfWeight(weight)
		default:
			return 0
		}
	}
}

// evaluateOxygen scores the optional oxygen saturation reading.
func (e *RiskEngine) evaluateOxygen(answers domain.AnswerSet) int {
	spo2, ok := answers.Oxygen()
	if !ok {
		return 0
	}
	switch {
	case spo2 < 90:
		return e.cfg.OxygenCriticalPoints
	case spo2 <= 93:
		return e.cfg.OxygenLowPoints
	case spo2 <= 95:
		return e.cfg.OxygenBorderlinePoints
	default:
		return 0
	}
}

// halfWeight is the "Not sure" contribution: half the weight rounded,
// floored at one point.
func halfWeight(weight int) int {
	half := int(math.Round(float64(weight) * 0.5))
	if half < 1 {
		return 1
	}
	return half
}
