// Prometheus metrics: live session and topic counts, publishing and delivery
// counters, inbound message accounting.

package main

import (
	"net/http"

	"github.com/chatwire/chat/server/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "chat"

// statsCollector implements hub.Observer.
type statsCollector struct {
	registry *prometheus.Registry

	liveSessions *prometheus.GaugeVec
	liveTopics   prometheus.Gauge
	published    prometheus.Counter
	delivered    prometheus.Counter
	dropped      prometheus.Counter
	inbound      *prometheus.CounterVec
	inboundDrop  *prometheus.CounterVec
	rejections   *prometheus.CounterVec
}

// newStatsCollector registers metrics with reg. A new registry with Go and process
// collectors is created if reg is nil.
func newStatsCollector(reg *prometheus.Registry) *statsCollector {
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	factory := promauto.With(reg)

	return &statsCollector{
		registry: reg,
		liveSessions: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "live_sessions",
			Help:      "Number of live websocket sessions.",
		}, []string{"kind"}),
		liveTopics: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "live_topics",
			Help:      "Number of topics with at least one local subscriber.",
		}),
		published: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "published_events_total",
			Help:      "Events published to topics with local subscribers.",
		}),
		delivered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "deliveries_total",
			Help:      "Events queued to sessions.",
		}),
		dropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "deliveries_dropped_total",
			Help:      "Events dropped because a session queue stayed full or the session closed.",
		}),
		inbound: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "inbound_messages_total",
			Help:      "Chat messages received, stored and published.",
		}, []string{"kind"}),
		inboundDrop: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "inbound_dropped_total",
			Help:      "Inbound frames dropped.",
		}, []string{"reason"}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rejected_connections_total",
			Help:      "Websocket connections refused.",
		}, []string{"reason"}),
	}
}

// Published is called by the registry after a fan-out.
func (sc *statsCollector) Published(topic string, delivered, failed int) {
	sc.published.Inc()
	sc.delivered.Add(float64(delivered))
	sc.dropped.Add(float64(failed))
}

// TopicsChanged is called by the registry when a topic is created or dropped.
func (sc *statsCollector) TopicsChanged(live int) {
	sc.liveTopics.Set(float64(live))
}

func (sc *statsCollector) sessionOpened(kind string) {
	sc.liveSessions.WithLabelValues(kind).Inc()
}

func (sc *statsCollector) sessionClosed(kind string) {
	sc.liveSessions.WithLabelValues(kind).Dec()
}

func (sc *statsCollector) inboundAccepted(kind string) {
	sc.inbound.WithLabelValues(kind).Inc()
}

func (sc *statsCollector) inboundDropped(reason string) {
	sc.inboundDrop.WithLabelValues(reason).Inc()
}

func (sc *statsCollector) rejected(reason string) {
	sc.rejections.WithLabelValues(reason).Inc()
}

// handler serves the metrics.
func (sc *statsCollector) handler() http.Handler {
	return promhttp.HandlerFor(sc.registry, promhttp.HandlerOpts{
		ErrorLog: logs.Err,
	})
}
