package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics agrupa los collectors del servicio.
// Se registran en un Registerer explícito para que los tests no choquen con el registry global.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DonationsSubmitted prometheus.Counter
	DonorsCreated      *prometheus.CounterVec
	UsersRegistered    prometheus.Counter
}

// DonorSource distingue el alta explícita del alta implícita al donar.
const (
	DonorSourceSubmission = "submission"
	DonorSourceAdmin      = "admin"
)

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shelter_http_requests_total",
			Help: "Total HTTP requests by route, method and status code",
		}, []string{"route", "method", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shelter_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "method"}),
		DonationsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shelter_donations_submitted_total",
			Help: "Total donations committed through the public submission workflow",
		}),
		DonorsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shelter_donors_created_total",
			Help: "Total donors created, by source",
		}, []string{"source"}),
		UsersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shelter_users_registered_total",
			Help: "Total user accounts created",
		}),
	}

	if reg != nil {
		reg.MustRegister(
			m.HTTPRequests,
			m.HTTPRequestDuration,
			m.DonationsSubmitted,
			m.DonorsCreated,
			m.UsersRegistered,
		)
	}
	return m
}

// NewNop crea collectors sin registrar (tests / servicios sin /metrics).
func NewNop() *Metrics {
	return New(nil)
}

// ObserveRequest registra un request terminado.
func (m *Metrics) ObserveRequest(route, method string, status int, start time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(route, method, statusLabel(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncDonationSubmitted() {
	if m == nil {
		return
	}
	m.DonationsSubmitted.Inc()
}

func (m *Metrics) IncDonorCreated(source string) {
	if m == nil {
		return
	}
	m.DonorsCreated.WithLabelValues(source).Inc()
}

func (m *Metrics) IncUserRegistered() {
	if m == nil {
		return
	}
	m.UsersRegistered.Inc()
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
