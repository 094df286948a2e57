package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/epidemiccare-server/internal/domain"
	"github.com/epidemiccare-server/internal/session"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsReadLimit    = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// chatMessage is the single frame type exchanged over the chat socket.
// The server sends "prompt", "error" and "assessment" frames, the
// client sends "answer" frames.
type chatMessage struct {
	Type       string                   `json:"type"`
	Text       string                   `json:"text,omitempty"`
	Complete   bool                     `json:"complete,omitempty"`
	Assessment *domain.AssessmentResult `json:"assessment,omitempty"`
}

// handleChat runs the consultation over a websocket: the server pushes
// each doctor prompt, the client replies with answers, and once the
// questionnaire completes the full assessment is pushed and the socket
// closed.
func (s *Server) handleChat(c *gin.Context) {
	sess, ok := s.getSession(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(wsReadLimit)

	log := s.logger.WithFields(logrus.Fields{
		"session_id": sess.ID,
		"client_ip":  c.ClientIP(),
	})
	log.Info("Chat session opened")

	sess.Lock()
	prompt, active := s.consultation.NextPrompt(sess.State)
	sess.Unlock()

	if !active {
		s.pushAssessment(conn, sess, log)
		return
	}
	if err := writeChat(conn, chatMessage{Type: "prompt", Text: prompt}); err != nil {
		return
	}
	s.speak(prompt)

	for {
		var in chatMessage
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Debug("Chat session closed unexpectedly")
			}
			return
		}
		if in.Type != "answer" {
			_ = writeChat(conn, chatMessage{Type: "error", Text: "expected an answer frame"})
			continue
		}

		sess.Lock()
		err := s.consultation.SubmitAnswer(sess.State, in.Text)
		complete := err == nil && s.consultation.IsComplete(sess.State)
		var next string
		if err == nil && !complete {
			next, _ = s.consultation.NextPrompt(sess.State)
		}
		sess.Unlock()

		if err != nil {
			var vErr *domain.ValidationError
			if errors.As(err, &vErr) {
				if werr := writeChat(conn, chatMessage{Type: "error", Text: vErr.Message}); werr != nil {
					return
				}
				continue
			}
			log.WithError(err).Error("Failed to record chat answer")
			return
		}

		if complete {
			s.pushAssessment(conn, sess, log)
			log.Info("Chat session completed")
			return
		}

		if err := writeChat(conn, chatMessage{Type: "prompt", Text: next}); err != nil {
			return
		}
		s.speak(next)
	}
}

// pushAssessment computes the assessment if needed and sends it as the
// final frame.
func (s *Server) pushAssessment(conn *websocket.Conn, sess *session.Session, log *logrus.Entry) {
	sess.Lock()
	s.ensureAssessment(sess)
	result := sess.Assessment
	sess.Unlock()

	if err := writeChat(conn, chatMessage{Type: "assessment", Complete: true, Assessment: result}); err != nil {
		log.WithError(err).Debug("Failed to push assessment frame")
	}
}

func writeChat(conn *websocket.Conn, msg chatMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return conn.WriteJSON(msg)
}
