package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(NewRegistry())

	m.ObserveAuth("login", nil)
	m.ObserveAuth("login", errors.New("bad password"))
	m.ObserveAuth("login", errors.New("bad password"))
	m.GuardRejected("TOKEN_BLACKLISTED")
	m.FailOpen()
	m.MoodCreated()
	m.Purged(3)
	m.Purged(0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", ResultSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AuthAttempts.WithLabelValues("login", ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GuardRejections.WithLabelValues("TOKEN_BLACKLISTED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BlacklistFailOpen))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MoodEntriesCreated))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.BlacklistRowsPurged))
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New(NewRegistry())

	m.ObserveRequest("GET", "/api/mood", 200, time.Now())

	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Now())
		m.ObserveAuth("login", nil)
		m.GuardRejected("TOKEN_INVALID")
		m.FailOpen()
		m.MoodCreated()
		m.Purged(1)
	})
}
