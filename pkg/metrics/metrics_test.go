package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/gaffer/pkg/metrics"
)

// gatheredNames collects the metric family names a registry exposes.
func gatheredNames(t *testing.T, reg *prometheus.Registry) map[string]bool {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

// counterValue sums the values of a counter family across its label sets.
func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		var total float64
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func TestNewManager(t *testing.T) {
	Convey("Given a manager on a fresh registry", t, func() {
		reg := prometheus.NewRegistry()
		metrics.NewManager(metrics.WithPrometheusRegistry(reg))

		Convey("Then the allocation and roster collectors are registered", func() {
			names := gatheredNames(t, reg)
			So(names["gaffer_allocation_runs_total"], ShouldBeTrue)
			So(names["gaffer_allocation_errors_total"], ShouldBeTrue)
			So(names["gaffer_allocation_latency_ms"], ShouldBeTrue)
			So(names["gaffer_allocation_tasks_assigned_total"], ShouldBeTrue)
			So(names["gaffer_allocation_last_efficiency_percent"], ShouldBeTrue)
			So(names["gaffer_roster_members"], ShouldBeTrue)
			So(names["gaffer_roster_tasks"], ShouldBeTrue)
			So(names["gaffer_system_goroutines"], ShouldBeTrue)
		})
	})

	Convey("Given a manager with a custom namespace and subsystem", t, func() {
		reg := prometheus.NewRegistry()
		metrics.NewManager(
			metrics.WithPrometheusRegistry(reg),
			metrics.WithNamespace("custom"),
			metrics.WithSubsystem("matching"),
			metrics.WithHistogramBuckets([]float64{1, 10, 100}),
		)

		Convey("Then the allocation metrics carry the custom prefix", func() {
			names := gatheredNames(t, reg)
			So(names["custom_matching_runs_total"], ShouldBeTrue)
			So(names["custom_matching_latency_ms"], ShouldBeTrue)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the package-level helpers", t, func() {
		reg := metrics.GetRegistry()
		before := counterValue(t, reg, "gaffer_allocation_runs_total")

		Convey("When recording an allocation run", func() {
			metrics.RecordAllocationRun()
			metrics.RecordAllocationLatency(12)
			metrics.RecordTasksAssigned(2)
			metrics.RecordTasksUnassigned(1)
			metrics.UpdateLastEfficiency(67)

			Convey("Then the run counter advances on the global registry", func() {
				So(counterValue(t, reg, "gaffer_allocation_runs_total"), ShouldEqual, before+1)
			})
		})

		Convey("When recording roster and HTTP activity", func() {
			metrics.UpdateMemberCount(3)
			metrics.UpdateTaskCount(5)
			metrics.RecordRosterMutation("member", "add")
			metrics.RecordHTTPRequest("members", "POST", "201")
			metrics.RecordHTTPRequestDuration("members", "POST", 3)
			metrics.RecordErrorByEndpoint("members", "POST", "client_error")

			Convey("Then the labeled families are exposed", func() {
				names := gatheredNames(t, reg)
				So(names["gaffer_roster_mutations_total"], ShouldBeTrue)
				So(names["gaffer_http_requests_total"], ShouldBeTrue)
				So(names["gaffer_http_errors_total"], ShouldBeTrue)
			})
		})
	})
}
