package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementFieldRegistration(OutcomeAdded)
	m.IncrementFieldRegistration(OutcomeAdded)
	m.IncrementFieldRegistration(OutcomeConflict)
	m.IncrementLookup(true)
	m.IncrementLookup(false)
	m.IncrementLookup(false)
	m.IncrementFormRegistered(FormSkipped)
	m.SetEntries(7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FieldRegistrations.WithLabelValues(OutcomeAdded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FieldRegistrations.WithLabelValues(OutcomeConflict)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Lookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FormsRegistered.WithLabelValues(FormSkipped)))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Entries))
}

func TestNew_SeparateRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
