package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sportsbot/statcache/internal/cache"
)

// Collector exposes cache statistics as Prometheus metrics. It reads a
// consistent snapshot on every scrape instead of instrumenting the cache's
// hot path, so registering it adds no cost to lookups.
type Collector struct {
	cache *cache.Cache

	hits       *prometheus.Desc
	misses     *prometheus.Desc
	saved      *prometheus.Desc
	hitRate    *prometheus.Desc
	catHits    *prometheus.Desc
	catMisses  *prometheus.Desc
	catEntries *prometheus.Desc
}

// NewCollector creates a collector over c with the given metric namespace
// (typically "statcache").
func NewCollector(c *cache.Cache, namespace string) *Collector {
	return &Collector{
		cache: c,
		hits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "hits_total"),
			"Total cache hits across all categories.",
			nil, nil,
		),
		misses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "misses_total"),
			"Total cache misses across all categories.",
			nil, nil,
		),
		saved: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "api_calls_saved_total"),
			"Upstream calls avoided; equals hits by definition, not provider telemetry.",
			nil, nil,
		),
		hitRate: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "hit_rate_percent"),
			"Hit rate since start or last stats reset.",
			nil, nil,
		),
		catHits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "category_hits_total"),
			"Cache hits per category.",
			[]string{"category"}, nil,
		),
		catMisses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "category_misses_total"),
			"Cache misses per category.",
			[]string{"category"}, nil,
		),
		catEntries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "category_entries"),
			"Live entries per category, expired-but-unswept included.",
			[]string{"category"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (col *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- col.hits
	ch <- col.misses
	ch <- col.saved
	ch <- col.hitRate
	ch <- col.catHits
	ch <- col.catMisses
	ch <- col.catEntries
}

// Collect implements prometheus.Collector.
func (col *Collector) Collect(ch chan<- prometheus.Metric) {
	s := col.cache.Stats()

	ch <- prometheus.MustNewConstMetric(col.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(col.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(col.saved, prometheus.CounterValue, float64(s.APICallsSaved))
	ch <- prometheus.MustNewConstMetric(col.hitRate, prometheus.GaugeValue, s.HitRatePercent)

	for cat, cs := range s.Categories {
		label := string(cat)
		ch <- prometheus.MustNewConstMetric(col.catHits, prometheus.CounterValue, float64(cs.Hits), label)
		ch <- prometheus.MustNewConstMetric(col.catMisses, prometheus.CounterValue, float64(cs.Misses), label)
		ch <- prometheus.MustNewConstMetric(col.catEntries, prometheus.GaugeValue, float64(cs.Entries), label)
	}
}
