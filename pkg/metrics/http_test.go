package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestObserveRequestRecordsFamilies(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/reports", 200, 25*time.Millisecond)
	m.ObserveRequest("GET", "/reports", 200, 40*time.Millisecond)
	m.ObserveRequest("POST", "/reports", 201, 10*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	byName := map[string]*dto.MetricFamily{}
	for _, fam := range families {
		byName[fam.GetName()] = fam
	}

	counter, ok := byName["http_requests_total"]
	if !ok {
		t.Fatal("expected http_requests_total family")
	}
	var getCount float64
	for _, metric := range counter.GetMetric() {
		labels := map[string]string{}
		for _, pair := range metric.GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
		if labels["method"] == "GET" && labels["route"] == "/reports" && labels["status"] == "200" {
			getCount = metric.GetCounter().GetValue()
		}
	}
	if getCount != 2 {
		t.Fatalf("expected 2 GET /reports observations, got %v", getCount)
	}

	histogram, ok := byName["http_request_duration_seconds"]
	if !ok {
		t.Fatal("expected http_request_duration_seconds family")
	}
	if len(histogram.GetMetric()) == 0 {
		t.Fatal("expected at least one histogram series")
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest("GET", "/reports", 200, time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.ObserveRequest("GET", "", 500, time.Millisecond)
}
