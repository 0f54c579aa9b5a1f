package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travelcms/services/metrics"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := metrics.InitRegistry()

	metrics.ObserveHTTP("/api/v1/home", "GET", 200, 12*time.Millisecond)
	metrics.ObserveCopy(nil)
	metrics.ObserveCopy(errors.New("boom"))
	metrics.ObservePDF(30 * time.Millisecond)

	mh := metrics.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, name := range []string{"travelcms_http_requests_total", "travelcms_package_copies_total", "travelcms_itinerary_pdf_render_seconds"} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestLabelErr(t *testing.T) {
	if metrics.LabelErr(nil) != "none" {
		t.Fatalf("nil error should be labelled none")
	}
	if got := metrics.LabelErr(errors.New("x")); got != "*errors.errorString" {
		t.Fatalf("unexpected label %q", got)
	}
}
