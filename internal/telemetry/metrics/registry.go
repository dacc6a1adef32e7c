package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry returns the registry served on /metrics. Besides the given collectors
// it exposes a constant version gauge, the go runtime (gc and memory only) and the process.
func NewRegistry(namespace, version string, extraCollectors ...prometheus.Collector) *prometheus.Registry {
	reg := prometheus.NewRegistry()

	if version == "" {
		version = "unknown"
	}
	versionInfo := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "version_info",
		Help:        "Constant 1, labeled with the running version (last commit hash)",
		ConstLabels: prometheus.Labels{"version": version},
	})
	versionInfo.Set(1)

	reg.MustRegister(
		versionInfo,
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsGC, collectors.MetricsMemory),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
	)
	reg.MustRegister(extraCollectors...)

	return reg
}
