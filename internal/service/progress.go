package service

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/epidemiccare-server/internal/domain"
)

// ProgressRecorder maintains the daily progress log of a session: one
// check-in per calendar date, append-only until a session reset.
type ProgressRecorder struct {
	logger *logrus.Logger
}

// NewProgressRecorder creates a new progress recorder.
func NewProgressRecorder(logger *logrus.Logger) *ProgressRecorder {
	return &ProgressRecorder{logger: logger}
}

// Record appends a daily check-in to the log. Recording a second entry
// for the same calendar date fails with DuplicateEntryError and leaves
// the log unchanged; a rating outside 1-10 fails with ValidationError.
func (p *ProgressRecorder) Record(log *domain.ProgressLog, date time.Time, rating int, symptoms []string, medicationTaken bool) error {
	if rating < 1 || rating > 10 {
		return domain.NewValidationError("rating", "rating must be between 1 and 10", rating)
	}

	day := date.Format("2006-01-02")
	for _, entry := range log.Entries {
		if entry.Date.Format("2006-01-02") == day {
			return domain.NewDuplicateEntryError(date)
		}
	}

	log.Entries = append(log.Entries, domain.ProgressEntry{
		Date:            date,
		Rating:          rating,
		Symptoms:        append([]string(nil), symptoms...),
		MedicationTaken: medicationTaken,
	})

	p.logger.WithFields(logrus.Fields{
		"date":             day,
		"rating":           rating,
		"symptoms":         len(symptoms),
		"medication_taken": medicationTaken,
	}).Info("Recorded daily progress entry")

	return nil
}

// Adherence summarizes medication adherence over the log. Rate is nil
// when no entries exist yet ("no data").
func (p *ProgressRecorder) Adherence(log *domain.ProgressLog) domain.AdherenceSummary {
	summary := domain.AdherenceSummary{Total: len(log.Entries)}
	if summary.Total == 0 {
		return summary
	}
	for _, entry := range log.Entries {
		if entry.MedicationTaken {
			summary.Taken++
		}
	}
	rate := float64(summary.Taken) / float64(summary.Total)
	summary.Rate = &rate
	return summary
}

// RatingSeries returns the daily ratings ordered by date, the series the
// UI renders as the progress chart.
func (p *ProgressRecorder) RatingSeries(log *domain.ProgressLog) []domain.RatingPoint {
	series := make([]domain.RatingPoint, 0, len(log.Entries))
	for _, entry := range log.Entries {
		series = append(series, domain.RatingPoint{Date: entry.Date, Rating: entry.Rating})
	}
	sort.SliceStable(series, func(a, b int) bool {
		return series[a].Date.Before(series[b].Date)
	})
	return series
}

// SymptomFrequency counts how often each reported symptom appears across
// the tracked period.
func (p *ProgressRecorder) SymptomFrequency(log *domain.ProgressLog) map[string]int {
	freq := make(map[string]int)
	for _, entry := range log.Entries {
		for _, symptom := range entry.Symptoms {
			freq[symptom]++
		}
	}
	return freq
}
