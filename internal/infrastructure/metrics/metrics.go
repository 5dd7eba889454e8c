package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SamplingMetrics covers the merchant sampling funnel end to end.
type SamplingMetrics struct {
	ActivationsCreatedTotal   prometheus.CounterVec
	ParticipationsTotal       prometheus.CounterVec
	VerificationsTotal        prometheus.CounterVec
	RedemptionsTotal          prometheus.CounterVec
	GraduationsTotal          prometheus.CounterVec
	StateTransitionsTotal     prometheus.CounterVec
	ActivationsExpiredTotal   prometheus.Counter
	GraduationCheckDuration   prometheus.HistogramVec
}

func NewSamplingMetrics() *SamplingMetrics {
	return &SamplingMetrics{
		ActivationsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sampling_activations_created_total",
				Help: "Sampling activations created, by value type",
			},
			[]string{"value_type"},
		),
		ParticipationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sampling_participations_total",
				Help: "Participation events recorded, by action type",
			},
			[]string{"action_type"},
		),
		VerificationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sampling_verifications_total",
				Help: "Participation verifications, by method",
			},
			[]string{"method"},
		),
		RedemptionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sampling_redemptions_total",
				Help: "Redemptions recorded, by activation value type",
			},
			[]string{"value_type"},
		),
		GraduationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sampling_graduations_total",
				Help: "Merchant graduations, by trigger reason",
			},
			[]string{"reason"},
		),
		StateTransitionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "merchant_state_transitions_total",
				Help: "Merchant state transitions, by target state",
			},
			[]string{"to_state"},
		),
		ActivationsExpiredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sampling_activations_expired_total",
				Help: "Activations closed out after their window ended",
			},
		),
		GraduationCheckDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sampling_graduation_check_duration_seconds",
				Help:    "Graduation trigger evaluation duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"graduated"},
		),
	}
}

// Record helpers are nil-safe so usecases can run without metrics wired.

func (m *SamplingMetrics) RecordActivationCreated(valueType string) {
	if m == nil {
		return
	}
	m.ActivationsCreatedTotal.WithLabelValues(valueType).Inc()
}

func (m *SamplingMetrics) RecordParticipation(actionType string) {
	if m == nil {
		return
	}
	m.ParticipationsTotal.WithLabelValues(actionType).Inc()
}

func (m *SamplingMetrics) RecordVerification(method string) {
	if m == nil {
		return
	}
	m.VerificationsTotal.WithLabelValues(method).Inc()
}

func (m *SamplingMetrics) RecordRedemption(valueType string) {
	if m == nil {
		return
	}
	m.RedemptionsTotal.WithLabelValues(valueType).Inc()
}

func (m *SamplingMetrics) RecordGraduation(reason string) {
	if m == nil {
		return
	}
	m.GraduationsTotal.WithLabelValues(reason).Inc()
}

func (m *SamplingMetrics) RecordStateTransition(toState string) {
	if m == nil {
		return
	}
	m.StateTransitionsTotal.WithLabelValues(toState).Inc()
}

func (m *SamplingMetrics) RecordActivationExpired() {
	if m == nil {
		return
	}
	m.ActivationsExpiredTotal.Inc()
}

func (m *SamplingMetrics) RecordGraduationCheck(seconds float64, graduated bool) {
	if m == nil {
		return
	}
	label := "false"
	if graduated {
		label = "true"
	}
	m.GraduationCheckDuration.WithLabelValues(label).Observe(seconds)
}
