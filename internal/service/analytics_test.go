package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/hajzi/admin-console/internal/errors"
)

const analyticsDoc = `{
	"success": true,
	"data": {
		"bookings": {"byDay": [3, 5, 2, 8], "total": 18},
		"revenue": {"byDay": [120.5, 200, 80, 310]}
	}
}`

type evalStub struct {
	validateErr error
	value       any
	evalErr     error
}

func (e evalStub) Validate(string) error { return e.validateErr }

func (e evalStub) Evaluate(string, any) (any, error) { return e.value, e.evalErr }

func newAnalytics(t *testing.T) *Analytics {
	t.Helper()
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/analytics", r.URL.Path)
		assert.Equal(t, "30d", r.URL.Query().Get("range"))
		_, _ = w.Write([]byte(analyticsDoc))
	}))
	return NewAnalytics(AnalyticsOptions{API: api})
}

func TestAnalytics_SeriesExtraction(t *testing.T) {
	snap, err := newAnalytics(t).Fetch(context.Background(), "30d")
	require.NoError(t, err)

	series, err := snap.Series("bookings.byDay")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5, 2, 8}, series)

	total, err := snap.Value("bookings.total")
	require.NoError(t, err)
	assert.InDelta(t, 18, total, 0.001)
}

func TestAnalytics_NonSeriesSelectionFails(t *testing.T) {
	snap, err := newAnalytics(t).Fetch(context.Background(), "30d")
	require.NoError(t, err)

	_, err = snap.Series("bookings.total")
	assert.True(t, apperrors.IsValidation(err))

	_, err = snap.Value("bookings.byDay")
	assert.True(t, apperrors.IsValidation(err))
}

func TestAnalytics_ValidateWrapsEvaluatorError(t *testing.T) {
	svc := NewAnalytics(AnalyticsOptions{Evaluator: evalStub{validateErr: assert.AnError}})

	err := svc.Validate("not a valid expr(")

	assert.True(t, apperrors.IsValidation(err))
}

func TestAnalytics_ValidateAcceptsGoodExpression(t *testing.T) {
	svc := NewAnalytics(AnalyticsOptions{})

	assert.NoError(t, svc.Validate("bookings.byDay[0]"))
	assert.Error(t, svc.Validate("bookings.["))
}
