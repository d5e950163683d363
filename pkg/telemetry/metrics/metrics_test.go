package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/validator"
	"github.com/oyurisousa/validador-censo-sub000/pkg/config"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

var (
	_ validator.Observer = (*Collector)(nil)
	_ reference.Observer = (*Collector)(nil)
)

func testConfig() *config.MetricsConfig {
	return &config.MetricsConfig{
		Enabled:         true,
		Namespace:       "test",
		Subsystem:       "censo",
		DurationBuckets: []float64{0.01, 0.1, 1},
	}
}

func TestCollector_NewCollector(t *testing.T) {
	cfg := &config.MetricsConfig{Enabled: true}
	registry := prometheus.NewRegistry()

	collector := NewCollector(cfg, registry)

	if collector.Registry() != registry {
		t.Error("Collector registry not set correctly")
	}
	if cfg.Namespace != config.DefaultMetricsNamespace || cfg.Subsystem != config.DefaultMetricsSubsystem {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if len(cfg.DurationBuckets) == 0 {
		t.Error("duration buckets not defaulted")
	}
}

func TestCollector_RecordValidation(t *testing.T) {
	collector := NewCollector(testConfig(), nil)

	collector.RecordValidation("initial", true, 120, 40*time.Millisecond)
	collector.RecordValidation("initial", false, 30, 2*time.Second)
	collector.RecordValidation("", false, 0, time.Millisecond)

	files := collector.validationMetrics.filesTotal
	if got := testutil.ToFloat64(files.WithLabelValues("initial", "true")); got != 1 {
		t.Errorf("valid initial files = %v", got)
	}
	if got := testutil.ToFloat64(files.WithLabelValues("initial", "false")); got != 1 {
		t.Errorf("invalid initial files = %v", got)
	}
	if got := testutil.ToFloat64(files.WithLabelValues("unknown", "false")); got != 1 {
		t.Errorf("unknown phase files = %v", got)
	}
	if got := testutil.ToFloat64(collector.validationMetrics.recordsTotal.WithLabelValues("initial")); got != 150 {
		t.Errorf("records = %v, want 150", got)
	}
	if got := testutil.CollectAndCount(collector.validationMetrics.duration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestCollector_RecordDiagnostic(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	collector.cardinalityLimiter = NewCardinalityLimiter(2)

	collector.RecordDiagnostic("required_field", "error")
	collector.RecordDiagnostic("required_field", "error")
	collector.RecordDiagnostic("director_missing", "warning")
	collector.RecordDiagnostic("invalid_date", "error")

	diags := collector.validationMetrics.diagnosticsTotal
	if got := testutil.ToFloat64(diags.WithLabelValues("required_field", "error")); got != 2 {
		t.Errorf("required_field = %v", got)
	}
	if got := testutil.ToFloat64(diags.WithLabelValues(otherLabel, "error")); got != 1 {
		t.Errorf("rules past the limit should be reported as other, got %v", got)
	}
}

func TestCollector_RecordReferenceLookup(t *testing.T) {
	collector := NewCollector(testConfig(), nil)

	collector.RecordReferenceLookup("municipality", reference.OutcomeValid, 20*time.Microsecond)
	collector.RecordReferenceLookup("municipality", reference.OutcomeInvalid, 15*time.Microsecond)
	collector.RecordReferenceLookup("municipality", reference.OutcomeValid, 10*time.Microsecond)

	lookups := collector.referenceMetrics.lookupsTotal
	if got := testutil.ToFloat64(lookups.WithLabelValues("municipality", "valid")); got != 2 {
		t.Errorf("valid lookups = %v", got)
	}
	if got := testutil.ToFloat64(lookups.WithLabelValues("municipality", "invalid")); got != 1 {
		t.Errorf("invalid lookups = %v", got)
	}
}

func TestCollector_InboxAndHistory(t *testing.T) {
	collector := NewCollector(testConfig(), nil)

	collector.RecordInboxFile("valid")
	collector.RecordInboxFile("failed")
	collector.RecordHistoryPruned(5)
	collector.RecordHistoryPruned(0)

	if got := testutil.ToFloat64(collector.inboxMetrics.filesTotal.WithLabelValues("valid")); got != 1 {
		t.Errorf("valid inbox files = %v", got)
	}
	if got := testutil.ToFloat64(collector.inboxMetrics.prunedTotal); got != 5 {
		t.Errorf("pruned = %v", got)
	}
}

type fakeCache struct {
	hits, misses int64
	size         int
}

func (f *fakeCache) Stats() (int64, int64) { return f.hits, f.misses }
func (f *fakeCache) Size() int             { return f.size }

func TestCollector_ObserveCache(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	cache := &fakeCache{hits: 7, misses: 3, size: 4}

	collector.ObserveCache("reference", cache)
	collector.ObserveCache("reference", cache)

	expected := `
# HELP test_censo_cache_entries Current number of entries in cache
# TYPE test_censo_cache_entries gauge
test_censo_cache_entries{cache="reference"} 4
`
	if err := testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "test_censo_cache_entries"); err != nil {
		t.Error(err)
	}

	cache.hits = 10
	expected = `
# HELP test_censo_cache_hits_total Total number of cache hits
# TYPE test_censo_cache_hits_total counter
test_censo_cache_hits_total{cache="reference"} 10
`
	if err := testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "test_censo_cache_hits_total"); err != nil {
		t.Error(err)
	}
}

func TestCollector_ObserveCacheWithCachedLookup(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	cached := reference.NewCachedLookup(reference.NewMemoryStore(), time.Minute, 10)
	defer cached.Close()

	collector.ObserveCache("reference", cached)

	got, err := testutil.GatherAndCount(collector.Registry(), "test_censo_cache_misses_total")
	if err != nil {
		t.Fatal(err)
	}
	if got != 1 {
		t.Errorf("cache misses series = %d", got)
	}
}

func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	collector := NewCollector(cfg, nil)

	collector.RecordValidation("initial", true, 10, time.Second)
	collector.RecordDiagnostic("required_field", "error")
	collector.RecordReferenceLookup("step", "valid", time.Microsecond)
	collector.ObserveCache("reference", &fakeCache{})

	if got := testutil.CollectAndCount(collector.validationMetrics.filesTotal); got != 0 {
		t.Errorf("disabled collector recorded %d file series", got)
	}
	if got, _ := testutil.GatherAndCount(collector.Registry(), "test_censo_cache_entries"); got != 0 {
		t.Errorf("disabled collector registered cache metrics")
	}
}

func TestCollector_Handler(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	collector.RecordValidation("situation", true, 3, time.Millisecond)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `test_censo_files_total{phase="situation",valid="true"} 1`) {
		t.Errorf("metrics body missing files_total:\n%s", rec.Body.String())
	}
}

func TestCardinalityLimiter(t *testing.T) {
	cl := NewCardinalityLimiter(2)

	if !cl.Allow("a") || !cl.Allow("b") {
		t.Fatal("expected first two label sets to be allowed")
	}
	if cl.Allow("c") {
		t.Error("third label set should be rejected")
	}
	if !cl.Allow("a") {
		t.Error("existing label set should stay allowed")
	}
	if cl.Count() != 2 {
		t.Errorf("count = %d", cl.Count())
	}
}
