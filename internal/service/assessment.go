package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/epidemiccare-server/internal/domain"
)

// AssessmentService orchestrates the full assessment workflow over a
// completed answer set: risk scoring, diagnosis ranking and care plan
// generation.
type AssessmentService struct {
	logger    *logrus.Logger
	risk      *RiskEngine
	diagnosis *DiagnosisService
	carePlan  *CarePlanService
}

// NewAssessmentService creates a new assessment service.
func NewAssessmentService(
	logger *logrus.Logger,
	risk *RiskEngine,
	diagnosis *DiagnosisService,
	carePlan *CarePlanService,
) *AssessmentService {
	return &AssessmentService{
		logger:    logger,
		risk:      risk,
		diagnosis: diagnosis,
		carePlan:  carePlan,
	}
}

// Run performs one assessment pass. It is deterministic and idempotent:
// the same answer set always yields the same risk level, ranking and
// care plan.
func (a *AssessmentService) Run(answers domain.AnswerSet) *domain.AssessmentResult {
	startTime := time.Now()

	// Step 1: score the additive risk factors
	risk := a.risk.Assess(answers)

	// Step 2: rank the disease catalog
	candidates := a.diagnosis.Diagnose(answers)

	// Step 3: build the care plan, adjusted for the top candidate
	topCandidate := ""
	if len(candidates) > 0 {
		topCandidate = candidates[0].DiseaseName
	}
	plan := a.carePlan.Build(risk.Level, topCandidate)

	result := &domain.AssessmentResult{
		RiskLevel:      risk.Level,
		Score:          risk.Score,
		Breakdown:      risk.Breakdown,
		Advisory:       risk.Advisory,
		Candidates:     candidates,
		CarePlan:       plan,
		ProcessingTime: time.Since(startTime),
		GeneratedAt:    time.Now().UTC(),
	}

	a.logger.WithFields(logrus.Fields{
		"risk_level":      result.RiskLevel.String(),
		"score":           result.Score,
		"candidates":      len(result.Candidates),
		"top_candidate":   topCandidate,
		"processing_time": result.ProcessingTime,
	}).Info("Assessment completed")

	return result
}
