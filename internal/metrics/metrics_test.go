package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersAndViewers(t *testing.T) {
	viewers := 3
	m := New(func() int { return viewers })

	m.ObserveUpload(OutcomePublished)
	m.ObserveUpload(OutcomePublished)
	m.ObserveUpload(OutcomeRejected)
	m.ObservePublish()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.uploads.WithLabelValues(OutcomePublished)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.uploads.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.published))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "awards_board_viewers 3"), body)
	assert.Contains(t, body, `awards_uploads_total{outcome="published"} 2`)
}
