package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registration outcomes.
const (
	OutcomeAdded     = "added"
	OutcomeUnchanged = "unchanged"
	OutcomeConflict  = "conflict"
)

// Form outcomes.
const (
	FormRegistered = "registered"
	FormSkipped    = "skipped"
	FormRejected   = "rejected"
)

// Metrics provides observability for the form field type registry.
type Metrics struct {
	FieldRegistrations *prometheus.CounterVec
	Lookups            *prometheus.CounterVec
	FormsRegistered    *prometheus.CounterVec
	Entries            prometheus.Gauge
}

// New creates the registry metrics on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FieldRegistrations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "formtypes_field_registrations_total",
			Help: "Field type registrations by outcome (added, unchanged, conflict)",
		}, []string{"outcome"}),
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "formtypes_lookups_total",
			Help: "Field type lookups by result (hit, miss)",
		}, []string{"result"}),
		FormsRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "formtypes_forms_registered_total",
			Help: "Whole data forms passed to the registry by outcome",
		}, []string{"outcome"}),
		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "formtypes_entries",
			Help: "Current number of (form type, field) entries in the registry",
		}),
	}
}

func (m *Metrics) IncrementFieldRegistration(outcome string) {
	m.FieldRegistrations.WithLabelValues(outcome).Inc()
}

// IncrementLookup records a lookup; hit reports whether a type was found.
func (m *Metrics) IncrementLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.Lookups.WithLabelValues(result).Inc()
}

func (m *Metrics) IncrementFormRegistered(outcome string) {
	m.FormsRegistered.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetEntries(count int) {
	m.Entries.Set(float64(count))
}
