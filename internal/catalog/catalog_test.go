package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epidemiccare-server/internal/domain"
)

func TestStepsSequence(t *testing.T) {
	steps := Steps()
	require.Len(t, steps, 10)

	expectedOrder := []domain.StepKey{
		domain.StepName,
		domain.StepAge,
		domain.StepConditions,
		domain.StepFever,
		domain.StepCoughBreathing,
		domain.StepBodyAches,
		domain.StepTasteSmell,
		domain.StepFatigue,
		domain.StepOtherSymptoms,
		domain.StepOxygen,
	}
	for i, key := range expectedOrder {
		assert.Equal(t, key, steps[i].Key, "step %d", i)
	}
}

func TestStepsConstraints(t *testing.T) {
	byKey := make(map[domain.StepKey]domain.QuestionStep)
	for _, step := range Steps() {
		byKey[step.Key] = step
	}

	age := byKey[domain.StepAge]
	assert.Equal(t, domain.NUMBER, age.Kind)
	assert.Equal(t, 0, age.Min)
	assert.Equal(t, 120, age.Max)
	assert.False(t, age.Optional)
	assert.Contains(t, age.Prompt, "%s")

	spo2 := byKey[domain.StepOxygen]
	assert.Equal(t, domain.NUMBER, spo2.Kind)
	assert.Equal(t, 50, spo2.Min)
	assert.Equal(t, 100, spo2.Max)
	assert.True(t, spo2.Optional)

	assert.True(t, byKey[domain.StepConditions].Optional)
	assert.True(t, byKey[domain.StepOtherSymptoms].Optional)

	for _, key := range domain.SymptomFlagKeys() {
		step := byKey[key]
		assert.Equal(t, domain.CHOICE, step.Kind, "step %s", key)
		assert.Equal(t, domain.SymptomResponses(), step.Choices, "step %s", key)
	}
}

func TestDiseasesCatalog(t *testing.T) {
	diseases := Diseases()
	require.Len(t, diseases, 5)

	// Catalog order is the ranking tie-break order.
	names := make([]string, len(diseases))
	for i, d := range diseases {
		names[i] = d.Name
	}
	assert.Equal(t, []string{"COVID-19", "Influenza", "Dengue Fever", "Common Cold", "Monkeypox"}, names)

	for _, d := range diseases {
		assert.NotEmpty(t, d.RequiredSymptomKeys, "disease %s", d.Name)
		assert.NotEmpty(t, d.Description, "disease %s", d.Name)
		assert.NotEmpty(t, d.Precautions, "disease %s", d.Name)
		assert.NotEmpty(t, d.ContagiousPeriod, "disease %s", d.Name)
		assert.NotEmpty(t, d.RecoveryTime, "disease %s", d.Name)
	}
}

func TestBasePlanPerLevel(t *testing.T) {
	tests := []struct {
		name       string
		level      domain.RiskLevel
		medication int
		duration   string
	}{
		{"high", domain.HIGH, 4, "7-14 days depending on recovery"},
		{"medium", domain.MEDIUM, 4, "5-10 days"},
		{"low", domain.LOW, 3, "3-7 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BasePlan(tt.level)
			assert.Len(t, plan.Medication, tt.medication)
			assert.Equal(t, tt.duration, plan.Duration)
			assert.NotEmpty(t, plan.Rest)
			assert.NotEmpty(t, plan.Diet)
			assert.NotEmpty(t, plan.Monitoring)
			assert.NotEmpty(t, plan.FollowUp)
			assert.NotEmpty(t, plan.Isolation)
		})
	}
}

func TestPlanOverridesKnownDiseases(t *testing.T) {
	overrides := PlanOverrides()

	assert.Contains(t, overrides, "COVID-19")
	assert.Contains(t, overrides, "Influenza")
	assert.Contains(t, overrides, "Dengue Fever")
	assert.NotContains(t, overrides, "Common Cold")
	assert.NotContains(t, overrides, "Monkeypox")
}

func TestAdvisoryPerLevel(t *testing.T) {
	assert.Contains(t, Advisory(domain.HIGH), "high risk")
	assert.Contains(t, Advisory(domain.MEDIUM), "moderate risk")
	assert.Contains(t, Advisory(domain.LOW), "low risk")
}
