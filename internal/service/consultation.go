package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/epidemiccare-server/internal/catalog"
	"github.com/epidemiccare-server/internal/domain"
)

// analyzingKey identifies the terminal "analyzing" message for phrasing
// selection; it is not a question step.
const analyzingKey domain.StepKey = "analyzing"

// ConsultationService drives the linear consultation state machine: it
// emits doctor prompts, validates and records answers, and detects
// completion. All mutable state lives in the caller-owned
// ConsultationState; the service itself is stateless and safe to share.
type ConsultationService struct {
	logger   *logrus.Logger
	steps    []domain.QuestionStep
	phrasing PhrasingSelector
}

// NewConsultationService creates a new consultation service. A nil
// selector falls back to the canonical phrasing.
func NewConsultationService(logger *logrus.Logger, phrasing PhrasingSelector) *ConsultationService {
	if phrasing == nil {
		phrasing = CanonicalPhrasing
	}
	return &ConsultationService{
		logger:   logger,
		steps:    catalog.Steps(),
		phrasing: phrasing,
	}
}

// Steps returns the question sequence in asking order.
func (s *ConsultationService) Steps() []domain.QuestionStep {
	return s.steps
}

// IsComplete reports whether every step has been answered.
func (s *ConsultationService) IsComplete(state *domain.ConsultationState) bool {
	return state.StepIndex >= len(s.steps)
}

// NextPrompt returns the doctor prompt for the current step and records
// it in the transcript. Emission is idempotent: re-rendering the same
// step never duplicates the prompt, because the pending prompt is
// compared against the last transcript entry. The second return value is
// false once the consultation is complete.
func (s *ConsultationService) NextPrompt(state *domain.ConsultationState) (string, bool) {
	if s.IsComplete(state) {
		return "", false
	}

	prompt := s.renderPrompt(state, s.steps[state.StepIndex])
	if last, ok := state.LastEntry(); !ok || last.Speaker != domain.DOCTOR || last.Text != prompt {
		state.Append(domain.DOCTOR, prompt)
	}
	return prompt, true
}

// SubmitAnswer validates raw against the current step, records the
// answer and advances exactly one step. Invalid input returns a
// ValidationError and leaves the state unchanged, so the caller simply
// re-prompts the same step. On transition to the terminal state the
// analyzing message is appended once and no further prompt is emitted.
func (s *ConsultationService) SubmitAnswer(state *domain.ConsultationState, raw string) error {
	if s.IsComplete(state) {
		return domain.NewValidationError("step", "consultation is already complete", raw)
	}

	step := s.steps[state.StepIndex]

	// Make sure the doctor's question precedes the answer even when the
	// caller never rendered the prompt.
	s.NextPrompt(state)

	answer, err := s.validateAnswer(step, raw)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"step_key": step.Key.String(),
			"kind":     step.Kind.String(),
			"error":    err.Error(),
		}).Debug("Rejected answer")
		return err
	}

	state.Append(domain.USER, answer.Display())
	state.Answers[step.Key] = answer
	state.StepIndex++

	if s.IsComplete(state) {
		candidates := append([]string{catalog.AnalyzingMessage}, catalog.AnalyzingVariants...)
		state.Append(domain.DOCTOR, s.phrasing(analyzingKey, candidates))
		s.logger.WithFields(logrus.Fields{
			"steps_answered": state.StepIndex,
			"transcript_len": len(state.Transcript),
		}).Info("Consultation complete")
		return nil
	}

	s.NextPrompt(state)
	return nil
}

// Reset unconditionally returns the state to the first step with an
// empty answer set and transcript. It always succeeds.
func (s *ConsultationService) Reset(state *domain.ConsultationState) {
	*state = *domain.NewConsultationState()
	s.logger.Debug("Consultation state reset")
}

// renderPrompt selects a phrasing for the current step and personalizes
// it with the patient's name when the phrasing carries a placeholder.
func (s *ConsultationService) renderPrompt(state *domain.ConsultationState, step domain.QuestionStep) string {
	candidates := append([]string{step.Prompt}, step.PromptVariants...)
	prompt := s.phrasing(step.Key, candidates)

	if strings.Contains(prompt, "%s") {
		name := state.Answers.Text(domain.StepName)
		if name == "" || name == "None" {
			name = "there"
		}
		prompt = fmt.Sprintf(prompt, name)
	}
	return prompt
}

// validateAnswer checks raw against the step's declared kind and
// constraints, returning the normalized answer on success.
func (s *ConsultationService) validateAnswer(step domain.QuestionStep, raw string) (domain.Answer, error) {
	trimmed := strings.TrimSpace(raw)

	switch step.Kind {
	case domain.TEXT:
		if trimmed == "" {
			if step.Optional {
				// Skipped optional free text shows up as an explicit marker.
				return domain.Answer{Kind: domain.TEXT, Text: "None"}, nil
			}
			return domain.Answer{}, domain.NewValidationError(step.Key.String(), "answer cannot be empty", raw)
		}
		return domain.Answer{Kind: domain.TEXT, Text: trimmed}, nil

	case domain.NUMBER:
		if trimmed == "" && step.Optional {
			return domain.Answer{Kind: domain.NUMBER, Skipped: true}, nil
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return domain.Answer{}, domain.NewValidationError(step.Key.String(), "answer must be a whole number", raw)
		}
		if n < step.Min || n > step.Max {
			msg := fmt.Sprintf("answer must be between %d and %d", step.Min, step.Max)
			return domain.Answer{}, domain.NewValidationError(step.Key.String(), msg, n)
		}
		return domain.Answer{Kind: domain.NUMBER, Number: n}, nil

	case domain.CHOICE:
		for _, choice := range step.Choices {
			if trimmed == choice.String() {
				return domain.Answer{Kind: domain.CHOICE, Choice: choice}, nil
			}
		}
		msg := fmt.Sprintf("answer must be one of: %s", joinChoices(step.Choices))
		return domain.Answer{}, domain.NewValidationError(step.Key.String(), msg, raw)

	default:
		return domain.Answer{}, domain.NewValidationError(step.Key.String(), "unknown step kind", step.Kind)
	}
}

func joinChoices(choices []domain.SymptomResponse) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
