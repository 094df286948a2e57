package service

import (
	"math"
	"regexp"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/epidemiccare-server/internal/catalog"
	"github.com/epidemiccare-server/internal/domain"
)

// DiagnosisService ranks the disease catalog against an answer set by
// weighted symptom and keyword match.
type DiagnosisService struct {
	logger   *logrus.Logger
	profiles []domain.DiseaseProfile
	keywords [][]*regexp.Regexp
}

// NewDiagnosisService creates a diagnosis service over the built-in
// disease catalog. Keyword patterns are compiled once, word-boundary and
// case-insensitive.
func NewDiagnosisService(logger *logrus.Logger) *DiagnosisService {
	profiles := catalog.Diseases()
	keywords := make([][]*regexp.Regexp, len(profiles))
	for i, profile := range profiles {
		patterns := make([]*regexp.Regexp, len(profile.FreeTextKeywords))
		for j, keyword := range profile.FreeTextKeywords {
			patterns[j] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
		}
		keywords[i] = patterns
	}
	return &DiagnosisService{
		logger:   logger,
		profiles: profiles,
		keywords: keywords,
	}
}

// Diagnose scores every catalog profile against the answers and returns
// candidates ranked by weighted score, descending. The sort is stable so
// equal scores preserve catalog order. Profiles with no structured match
// and no keyword hit are excluded; partial ("Not sure") credit alone is
// enough to keep a candidate in the ranking.
func (d *DiagnosisService) Diagnose(answers domain.AnswerSet) []domain.DiagnosisCandidate {
	otherSymptoms := answers.Text(domain.StepOtherSymptoms)

	candidates := make([]domain.DiagnosisCandidate, 0, len(d.profiles))
	for i, profile := range d.profiles {
		matchCount := 0.0
		weight := 0.0
		for _, key := range profile.RequiredSymptomKeys {
			switch answers.Flag(key) {
			case domain.YES:
				matchCount++
				weight += 2
			case domain.NOT_SURE:
				matchCount += 0.5
				weight++
			}
		}

		keywordHits := 0
		if otherSymptoms != "" && otherSymptoms != "None" {
			for _, pattern := range d.keywords[i] {
				if pattern.MatchString(otherSymptoms) {
					keywordHits++
				}
			}
		}
		// Keyword hits raise the weight only; they never count toward
		// the match percentage.
		weight += float64(keywordHits)

		if matchCount == 0 && keywordHits == 0 {
			continue
		}

		candidates = append(candidates, domain.DiagnosisCandidate{
			DiseaseName:      profile.Name,
			MatchPercentage:  matchPercentage(matchCount, len(profile.RequiredSymptomKeys)),
			WeightedScore:    matchCount + weight*0.5,
			Description:      profile.Description,
			Precautions:      profile.Precautions,
			ContagiousPeriod: profile.ContagiousPeriod,
			RecoveryTime:     profile.RecoveryTime,
		})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].WeightedScore > candidates[b].WeightedScore
	})

	d.logger.WithFields(logrus.Fields{
		"profiles":   len(d.profiles),
		"candidates": len(candidates),
	}).Debug("Completed diagnosis ranking")

	return candidates
}

// matchPercentage converts a match count into a percentage of the
// profile's required symptoms, clamped to [0, 100].
func matchPercentage(matchCount float64, required int) int {
	if required == 0 {
		return 0
	}
	pct := int(math.Round(100 * matchCount / float64(required)))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
