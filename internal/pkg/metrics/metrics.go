package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "coupon_ledger"

// Redemption outcomes used as label values.
const (
	OutcomeSuccess         = "success"
	OutcomeNotFound        = "not_found"
	OutcomeAlreadyRedeemed = "already_redeemed"
	OutcomeConflict        = "conflict"
	OutcomeRejected        = "rejected"
	OutcomeError           = "error"
)

// Collector owns a private registry so several instances can coexist in tests.
// All recording methods are no-ops on a nil receiver.
type Collector struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	redemptionsTotal    *prometheus.CounterVec
	couponsIssuedTotal  prometheus.Counter
	tokenCollisions     prometheus.Counter
	otpIssuedTotal      prometheus.Counter
}

func NewCollector(version, env string) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		redemptionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "redemptions_total",
				Help:      "Coupon redemption attempts by outcome",
			},
			[]string{"outcome"},
		),
		couponsIssuedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coupons_issued_total",
			Help:      "Coupons created by batch issuance",
		}),
		tokenCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_collisions_total",
			Help:      "Generated coupon tokens rejected as duplicates",
		}),
		otpIssuedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "otp_issued_total",
			Help:      "One-time passwords issued",
		}),
	}

	info := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "service_info",
			Help:      "Service information",
		},
		[]string{"version", "env"},
	)
	info.WithLabelValues(version, env).Set(1)

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpRequestsTotal,
		c.httpRequestDuration,
		c.redemptionsTotal,
		c.couponsIssuedTotal,
		c.tokenCollisions,
		c.otpIssuedTotal,
		info,
	)

	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) ObserveRedemption(outcome string) {
	if c == nil {
		return
	}
	c.redemptionsTotal.WithLabelValues(outcome).Inc()
}

func (c *Collector) AddCouponsIssued(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.couponsIssuedTotal.Add(float64(n))
}

func (c *Collector) IncTokenCollision() {
	if c == nil {
		return
	}
	c.tokenCollisions.Inc()
}

func (c *Collector) IncOTPIssued() {
	if c == nil {
		return
	}
	c.otpIssuedTotal.Inc()
}

func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		endpoint := ctx.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}
		method := ctx.Request.Method
		status := strconv.Itoa(ctx.Writer.Status())

		c.httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		c.httpRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (c *Collector) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}
