package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMutationCounter(t *testing.T) {
	m := New()
	m.Mutation("skills", "create", true)
	m.Mutation("skills", "create", true)
	m.Mutation("skills", "delete", false)

	if got := testutil.ToFloat64(m.mutations.WithLabelValues("skills", "create", "success")); got != 2 {
		t.Fatalf("expected 2 successful creates, got %v", got)
	}
	if got := testutil.ToFloat64(m.mutations.WithLabelValues("skills", "delete", "failure")); got != 1 {
		t.Fatalf("expected 1 failed delete, got %v", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.Contact("sent")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "designfolio_contact_messages_total") {
		t.Fatalf("expected contact counter in output")
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.Mutation("hero", "save", true)
	m.Storage("upload", false)
	m.Contact("sent")
	m.PageCache(true)
}
