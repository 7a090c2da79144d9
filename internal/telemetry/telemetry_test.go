package telemetry

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sportsbot/statcache/internal/cache"
)

func seededCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.New(cache.DefaultPolicy())
	if err != nil {
		t.Fatalf("cache.New error: %v", err)
	}
	t.Cleanup(c.Close)

	// One miss, then two hits.
	for i := 0; i < 3; i++ {
		_, err := c.PlayerIdentityFor("NFL", "Josh Allen", func() (cache.PlayerIdentity, error) {
			return cache.PlayerIdentity{PlayerID: "17", Name: "Josh Allen"}, nil
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	return c
}

func TestCollector_EmitsExpectedSeries(t *testing.T) {
	c := seededCache(t)

	reg := prometheus.NewRegistry()
	if err := reg.Register(NewCollector(c, "statcache")); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}

	byName := map[string]float64{}
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			name := fam.GetName()
			for _, lp := range m.GetLabel() {
				name += "{" + lp.GetName() + "=" + lp.GetValue() + "}"
			}
			switch {
			case m.GetCounter() != nil:
				byName[name] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				byName[name] = m.GetGauge().GetValue()
			}
		}
	}

	checks := map[string]float64{
		"statcache_hits_total":                                2,
		"statcache_misses_total":                              1,
		"statcache_api_calls_saved_total":                     2,
		"statcache_category_hits_total{category=player_id}":   2,
		"statcache_category_misses_total{category=player_id}": 1,
		"statcache_category_entries{category=player_id}":      1,
		"statcache_category_entries{category=roster}":         0,
	}
	for name, want := range checks {
		got, ok := byName[name]
		if !ok {
			t.Errorf("metric %s not found", name)
			continue
		}
		if got != want {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}

	if got := byName["statcache_hit_rate_percent"]; got < 66.6 || got > 66.8 {
		t.Errorf("hit rate = %v, want ~66.7", got)
	}
}

func TestHandler_ServesMetricsAndStats(t *testing.T) {
	c := seededCache(t)

	h, err := Handler(c, "statcache")
	if err != nil {
		t.Fatalf("Handler error: %v", err)
	}
	srv := httptest.NewServer(h)
	defer srv.Close()

	// /metrics exposes the prometheus text format.
	resp, err := srv.Client().Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Fatalf("GET /metrics status = %d, want 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "statcache_hits_total 2") {
		t.Errorf("/metrics output missing hits series:\n%s", body)
	}

	// /stats serves the JSON snapshot.
	resp2, err := srv.Client().Get(srv.URL + "/stats")
	if err != nil {
		t.Fatalf("GET /stats error: %v", err)
	}
	defer resp2.Body.Close()
	if ct := resp2.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var snap cache.Statistics
	if err := json.NewDecoder(resp2.Body).Decode(&snap); err != nil {
		t.Fatalf("decoding /stats: %v", err)
	}
	if snap.Hits != 2 || snap.Misses != 1 {
		t.Errorf("snapshot hits/misses = %d/%d, want 2/1", snap.Hits, snap.Misses)
	}
}
