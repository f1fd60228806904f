// Package metrics define as métricas Prometheus do GoLoja.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "goloja"

var (
	// HTTPRequestDuration mede a latência por rota (padrão do chi, não o caminho real).
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route", "status_code"},
	)

	// LoginAttempts conta tentativas de login por desfecho.
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	// TokensIssued conta tokens emitidos.
	TokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "tokens_issued_total",
			Help:      "Tokens issued after a successful login",
		},
	)
)

// Desfechos de login.
const (
	LoginSuccess         = "success"
	LoginInvalidEmail    = "invalid_email"
	LoginInvalidPassword = "invalid_password"
)
