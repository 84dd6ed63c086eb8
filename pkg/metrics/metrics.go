package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge

	ReservationsCreated *prometheus.CounterVec
	SlotConflicts       prometheus.Counter
	NotificationsFailed prometheus.Counter
}

// New создает и регистрирует коллекторы в собственном реестре
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		DBInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		DBIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		ReservationsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Reservations created, by initial status",
			ConstLabels: labels,
		}, []string{"status"}),
		SlotConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_slot_conflicts_total",
			Help:        "Reservation attempts rejected because the slot was taken",
			ConstLabels: labels,
		}),
		NotificationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "notifications_failed_total",
			Help:        "Booking notifications that could not be delivered",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.ReservationsCreated,
		m.SlotConflicts,
		m.NotificationsFailed,
	)

	return m
}

// Handler HTTP-обработчик для отдачи метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает реестр (используется в тестах)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Методы ниже безопасно вызывать на nil (метрики выключены)

func (m *Metrics) IncReservationCreated(status string) {
	if m == nil {
		return
	}
	m.ReservationsCreated.WithLabelValues(status).Inc()
}

func (m *Metrics) IncSlotConflict() {
	if m == nil {
		return
	}
	m.SlotConflicts.Inc()
}

func (m *Metrics) IncNotificationFailed() {
	if m == nil {
		return
	}
	m.NotificationsFailed.Inc()
}
