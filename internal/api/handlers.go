package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/epidemiccare-server/internal/catalog"
	"github.com/epidemiccare-server/internal/domain"
	"github.com/epidemiccare-server/internal/session"
)

// submitAnswerRequest carries one raw answer for the current step.
type submitAnswerRequest struct {
	Value string `json:"value"`
}

// recordProgressRequest carries one daily check-in.
type recordProgressRequest struct {
	Date            string   `json:"date"` // YYYY-MM-DD, defaults to today
	Rating          int      `json:"rating"`
	Symptoms        []string `json:"symptoms"`
	MedicationTaken bool     `json:"medication_taken"`
}

// handleListDiseases returns the static disease catalog.
func (s *Server) handleListDiseases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"diseases": catalog.Diseases()})
}

// handleCreateConsultation starts a new session and returns the first
// doctor prompt.
func (s *Server) handleCreateConsultation(c *gin.Context) {
	sess := s.sessions.Create()

	sess.Lock()
	prompt, _ := s.consultation.NextPrompt(sess.State)
	sess.Unlock()

	s.speak(prompt)

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sess.ID,
		"prompt":     prompt,
	})
}

// handleGetConsultation returns a summary of the session's progress
// through the question sequence.
func (s *Server) handleGetConsultation(c *gin.Context) {
	sess, ok := s.getSession(c)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"session_id":  sess.ID,
		"step_index":  sess.State.StepIndex,
		"total_steps": len(s.consultation.Steps()),
		"complete":    s.consultation.IsComplete(sess.State),
		"created_at":  sess.CreatedAt,
	})
}

// handleGetPrompt returns the current doctor prompt. Re-requesting the
// prompt without submitting an answer never duplicates it in the
// transcript.
func (s *Server) handleGetPrompt(c *gin.Context) {
	sess, ok := s.getSession(c)
	if !ok {
		return
	}

	sess.Lock()
	prompt, active := s.consultation.NextPrompt(sess.State)
	sess.Unlock()

	if !active {
		c.JSON(http.StatusOK, gin.H{"complete": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompt": prompt, "complete": false})
}

// handleSubmitAnswer records one answer and advances the consultation.
func (s *Server) handleSubmitAnswer(c *gin.Context) {
	sess, ok := s.getSession(c)
	if !ok {
		return
	}

	var req submitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, domain.ErrInvalidInput, "invalid request body", err.Error())
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if err := s.consultation.SubmitAnswer(sess.State, req.Value); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			requestID := c.GetString("request_id")
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      domain.NewAPIError(domain.ErrInvalidInput, vErr.Message, "", requestID),
				"validation": vErr,
			})
			return
		}
		s.respondError(c, http.StatusInternalServerError, domain.ErrInternalServer, "failed to record answer", err.Error())
		return
	}

	if s.consultation.IsComplete(sess.State) {
		s.ensureAssessment(sess)
		c.JSON(http.StatusOK, gin.H{"complete": true})
		return
	}

	prompt, _ := s.consultation.NextPrompt(sess.State)
	s.speak(prompt)
	c.JSON(http.StatusOK, gin.H{"prompt": prompt, "complete": false})
}

// handleReset performs a full session reset: consultation state,
// assessment snapshot and progress log.
func (s *Server) handleReset(c *gin.Context) {
	sess, ok := s.getSession(c)
	if !ok {
		return
	}

	sess.Lock()
	s.consultation.Reset(sess.State)
	sess.Assessment = nil
	sess.Progress = &domain.ProgressLog{}
	prompt, _ := s.consultation.NextPrompt(sess.State)
	sess.Unlock()

	s.speak(prompt)

	c.JSON(http.StatusOK, gin.H{"prompt": prompt})
}

// handleGetTranscript returns the consultation chat so far.
func (s *Server) handleGetTranscript(c *gin.Context) {
	sess, ok := s.getSession(c)
	if !ok {
		return
	}

	sess.Lock()
	transcript := append([]domain.TranscriptEntry(nil), sess.State.Transcript...)
	sess.Unlock()

	c.JSON(http.StatusOK, gin.H{"transcript": transcript})
}

// handleGetAssessment returns the cached assessment once the
// consultation is complete.
func (s *Server) handleGetAssessment(c *gin.Context) {
	sess, ok := s.getSession(c)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()

	if !s.consultation.IsComplete(sess.State) {
		s.respondError(c, http.StatusConflict, domain.ErrNotComplete, "consultation is not complete yet", "")
		return
	}

	s.ensureAssessment(sess)
	c.JSON(http.StatusOK, sess.Assessment)
}

// handleRecordProgress appends one daily check-in to the session's
// progress log.
func (s *Server) handleRecordProgress(c *gin.Context) {
	sess, ok := s.getSession(c)
	if !ok {
		return
	}

	var req recordProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, domain.ErrInvalidInput, "invalid request body", err.Error())
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			s.respondError(c, http.StatusBadRequest, domain.ErrInvalidInput, "date must be formatted YYYY-MM-DD", req.Date)
			return
		}
		date = parsed
	}

	sess.Lock()
	defer sess.Unlock()

	if err := s.progress.Record(sess.Progress, date, req.Rating, req.Symptoms, req.MedicationTaken); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			requestID := c.GetString("request_id")
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      domain.NewAPIError(domain.ErrInvalidInput, vErr.Message, "", requestID),
				"validation": vErr,
			})
			return
		}
		var dErr *domain.DuplicateEntryError
		if errors.As(err, &dErr) {
			s.respondError(c, http.StatusConflict, domain.ErrDuplicateEntry, dErr.Error(), "")
			return
		}
		s.respondError(c, http.StatusInternalServerError, domain.ErrInternalServer, "failed to record progress", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"entries": len(sess.Progress.Entries)})
}

// handleGetProgress returns the progress log plus the derived adherence
// and history series.
func (s *Server) handleGetProgress(c *gin.Context) {
	sess, ok := s.getSession(c)
	if !ok {
		return
	}

	sess.Lock()
	defer sess.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"entries":           sess.Progress.Entries,
		"adherence":         s.progress.Adherence(sess.Progress),
		"rating_series":     s.progress.RatingSeries(sess.Progress),
		"symptom_frequency": s.progress.SymptomFrequency(sess.Progress),
	})
}

// ensureAssessment computes the assessment snapshot exactly once per
// completed consultation; the caller must hold the session lock.
func (s *Server) ensureAssessment(sess *session.Session) {
	if sess.Assessment == nil {
		sess.Assessment = s.assessment.Run(sess.State.Answers)
	}
}

// getSession resolves the :id path parameter, responding 404 for
// unknown or expired sessions.
func (s *Server) getSession(c *gin.Context) (*session.Session, bool) {
	id := c.Param("id")
	sess, ok := s.sessions.Get(id)
	if !ok {
		s.respondError(c, http.StatusNotFound, domain.ErrSessionNotFound, "session not found or expired", id)
		return nil, false
	}
	return sess, true
}

// respondError writes the standard error envelope.
func (s *Server) respondError(c *gin.Context, status int, code, message, details string) {
	requestID := c.GetString("request_id")
	c.JSON(status, gin.H{
		"error": domain.NewAPIError(code, message, details, requestID),
	})
}
