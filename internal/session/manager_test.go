package session

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epidemiccare-server/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager(testLogger(), 10, time.Minute)

	sess := m.Create()
	require.NotEmpty(t, sess.ID)
	require.NotNil(t, sess.State)
	require.NotNil(t, sess.Progress)
	assert.Equal(t, 0, sess.State.StepIndex)

	got, ok := m.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
}

func TestManagerUnknownID(t *testing.T) {
	m := NewManager(testLogger(), 10, time.Minute)

	_, ok := m.Get("no-such-session")
	assert.False(t, ok)
}

func TestManagerDelete(t *testing.T) {
	m := NewManager(testLogger(), 10, time.Minute)

	sess := m.Create()
	m.Delete(sess.ID)

	_, ok := m.Get(sess.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())
}

func TestManagerSessionIsolation(t *testing.T) {
	m := NewManager(testLogger(), 10, time.Minute)

	a := m.Create()
	b := m.Create()
	require.NotEqual(t, a.ID, b.ID)

	a.State.Answers[domain.StepName] = domain.Answer{Kind: domain.TEXT, Text: "Ana"}
	a.State.StepIndex = 3

	assert.Empty(t, b.State.Answers, "sessions must not share state")
	assert.Equal(t, 0, b.State.StepIndex)
}

func TestManagerCapacityEviction(t *testing.T) {
	m := NewManager(testLogger(), 2, time.Minute)

	first := m.Create()
	m.Create()
	m.Create()

	assert.Equal(t, 2, m.Len())
	_, ok := m.Get(first.ID)
	assert.False(t, ok, "oldest session is evicted at capacity")
}

func TestManagerTTLExpiry(t *testing.T) {
	m := NewManager(testLogger(), 10, 20*time.Millisecond)

	sess := m.Create()
	time.Sleep(60 * time.Millisecond)

	_, ok := m.Get(sess.ID)
	assert.False(t, ok, "expired session must not be returned")
}
