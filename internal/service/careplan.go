package service

import (
	"github.com/sirupsen/logrus"

	"github.com/epidemiccare-server/internal/catalog"
	"github.com/epidemiccare-server/internal/domain"
)

// CarePlanService selects a care plan template by risk level and applies
// the disease-specific overrides for the top-ranked candidate. Building
// a plan is a pure function of its inputs; the base templates are never
// mutated.
type CarePlanService struct {
	logger    *logrus.Logger
	overrides map[string][]catalog.PlanOverride
}

// NewCarePlanService creates a new care plan service.
func NewCarePlanService(logger *logrus.Logger) *CarePlanService {
	return &CarePlanService{
		logger:    logger,
		overrides: catalog.PlanOverrides(),
	}
}

// Build returns the care plan for a risk level, adjusted for the top
// diagnosis candidate. An empty or unknown candidate name returns the
// base plan unchanged.
func (c *CarePlanService) Build(level domain.RiskLevel, topCandidate string) domain.CarePlan {
	plan := catalog.BasePlan(level)
	// The template medication slice is shared; copy before any append.
	plan.Medication = append([]string(nil), plan.Medication...)

	overrides, ok := c.overrides[topCandidate]
	if !ok {
		return plan
	}

	for _, override := range overrides {
		if override.AppendMedication != "" {
			plan.Medication = append(plan.Medication, override.AppendMedication)
		}
		if override.Monitoring != "" {
			plan.Monitoring = override.Monitoring
		}
		if override.Isolation != "" {
			plan.Isolation = override.Isolation
		}
	}

	c.logger.WithFields(logrus.Fields{
		"risk_level":    level.String(),
		"top_candidate": topCandidate,
		"overrides":     len(overrides),
	}).Debug("Applied disease-specific care plan overrides")

	return plan
}
