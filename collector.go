package region

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes a region's metrics as Prometheus gauges. Register it
// against the registry that scrapes the component owning the region:
//
//	reg.MustRegister(region.NewCollector(r, "myapp"))
//
// Collect reads the region without synchronization, so it must run on the
// same goroutine that uses the region, or the caller must synchronize.
type Collector struct {
	region *Region

	blocks      *prometheus.Desc
	inUse       *prometheus.Desc
	capacity    *prometheus.Desc
	utilization *prometheus.Desc
}

// NewCollector creates a collector for r. The namespace may be empty.
func NewCollector(r *Region, namespace string) *Collector {
	return &Collector{
		region: r,
		blocks: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "blocks"),
			"Number of blocks in the region's chain.",
			nil, nil,
		),
		inUse: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "bytes_in_use"),
			"Bytes handed out by the region, including alignment padding.",
			nil, nil,
		),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "capacity_bytes"),
			"Total usable capacity of all blocks in the region.",
			nil, nil,
		),
		utilization: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "utilization_ratio"),
			"Ratio of bytes in use to total capacity.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.blocks
	ch <- c.inUse
	ch <- c.capacity
	ch <- c.utilization
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.region.Metrics()
	ch <- prometheus.MustNewConstMetric(c.blocks, prometheus.GaugeValue, float64(m.Blocks))
	ch <- prometheus.MustNewConstMetric(c.inUse, prometheus.GaugeValue, float64(m.SizeInUse))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(m.Capacity))
	ch <- prometheus.MustNewConstMetric(c.utilization, prometheus.GaugeValue, m.Utilization)
}
