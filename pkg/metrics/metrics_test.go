package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorsRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	for _, c := range Collectors() {
		if err := reg.Register(c); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}

	PurchasesTotal.WithLabelValues("forks", Currency(false)).Inc()
	if got := testutil.ToFloat64(PurchasesTotal.WithLabelValues("forks", "score")); got < 1 {
		t.Errorf("purchases counter = %v, expected at least 1", got)
	}
	if Currency(true) != "premium" {
		t.Errorf("Currency(true) = %s", Currency(true))
	}
}
