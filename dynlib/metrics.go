package dynlib

import "github.com/prometheus/client_golang/prometheus"

// Collector exports the resolution outcome of libraries as Prometheus gauges.
// Collecting never triggers resolution.
type Collector struct {
	libs     []*Library
	state    *prometheus.Desc
	loaded   *prometheus.Desc
	resident *prometheus.Desc
	missing  *prometheus.Desc
}

// NewCollector creates a collector over libs. With no arguments it reports
// whatever is registered at collection time.
func NewCollector(libs ...*Library) *Collector {
	labels := []string{"library", "component"}
	return &Collector{
		libs: libs,
		state: prometheus.NewDesc("ndkshim_library_state",
			"Initialization state: 0 not started, 1 in progress, 2 done.", labels, nil),
		loaded: prometheus.NewDesc("ndkshim_library_loaded",
			"1 if a library image was obtained.", labels, nil),
		resident: prometheus.NewDesc("ndkshim_library_resident",
			"1 if the library was already mapped before resolution.", labels, nil),
		missing: prometheus.NewDesc("ndkshim_library_missing_symbols",
			"Number of symbols that fell back to stubs.", labels, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.state
	ch <- c.loaded
	ch <- c.resident
	ch <- c.missing
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	libs := c.libs
	if len(libs) == 0 {
		libs = Libraries()
	}
	for _, l := range libs {
		ch <- prometheus.MustNewConstMetric(c.state, prometheus.GaugeValue, float64(l.State()), l.name, l.Component())
		ch <- prometheus.MustNewConstMetric(c.loaded, prometheus.GaugeValue, boolGauge(l.Loaded()), l.name, l.Component())
		ch <- prometheus.MustNewConstMetric(c.resident, prometheus.GaugeValue, boolGauge(l.Resident()), l.name, l.Component())
		ch <- prometheus.MustNewConstMetric(c.missing, prometheus.GaugeValue, float64(len(l.Missing())), l.name, l.Component())
	}
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
