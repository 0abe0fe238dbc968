package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lucky_draw"

var (
	// Registry 應用程式自己的 collector，避免與 default registry 互相影響
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	ticketsIssued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tickets",
			Name:      "issued_total",
			Help:      "Total number of tickets issued, by prize tier.",
		},
		[]string{"tier"},
	)

	registrationsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tickets",
			Name:      "rejected_total",
			Help:      "Registrations rejected, by reason.",
		},
		[]string{"reason"},
	)

	slotClaimConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "claim_conflicts_total",
			Help:      "Slot claims lost to a concurrent registrant.",
		},
	)

	slotsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "slots_generated_total",
			Help:      "Ticket number slots generated, by prize tier.",
		},
		[]string{"tier"},
	)

	regenerations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "regenerations_total",
			Help:      "Pool regeneration jobs processed, by outcome.",
		},
		[]string{"outcome"},
	)

	allocationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "allocation_duration_seconds",
			Help:      "Duration of a full pool allocation round.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		ticketsIssued,
		registrationsRejected,
		slotClaimConflicts,
		slotsGenerated,
		regenerations,
		allocationDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler 輸出 /metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// GinMiddleware 記錄每個 request 的次數與耗時，path 使用路由樣板避免 label 爆量
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func RecordTicketIssued(tier string) {
	ticketsIssued.WithLabelValues(tier).Inc()
}

func RecordRegistrationRejected(reason string) {
	registrationsRejected.WithLabelValues(reason).Inc()
}

func RecordSlotClaimConflict() {
	slotClaimConflicts.Inc()
}

func RecordSlotsGenerated(tier string, count int) {
	slotsGenerated.WithLabelValues(tier).Add(float64(count))
}

func RecordRegeneration(outcome string) {
	regenerations.WithLabelValues(outcome).Inc()
}

func ObserveAllocation(duration time.Duration) {
	allocationDuration.Observe(duration.Seconds())
}
