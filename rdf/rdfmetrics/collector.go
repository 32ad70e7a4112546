// Package rdfmetrics exposes dataset sizes as Prometheus metrics.
package rdfmetrics

import (
	"github.com/geoknoesis/rdfstore/rdf"
	"github.com/prometheus/client_golang/prometheus"
)

const defaultGraphLabel = "default"

// Collector reports the number of graphs in a dataset and the number of
// triples in each graph. It reads the dataset on every scrape, so scrapes
// must be serialised with writes to the dataset the same way any other
// reader would be.
type Collector struct {
	dataset *rdf.Dataset
	graphs  *prometheus.Desc
	triples *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector for ds. Metric names are prefixed with
// namespace, e.g. "rdfstore_graph_triples".
func NewCollector(namespace string, ds *rdf.Dataset) *Collector {
	return &Collector{
		dataset: ds,
		graphs: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "dataset", "graphs"),
			"Number of graphs in the dataset",
			nil, nil,
		),
		triples: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "graph", "triples"),
			"Number of triples in a graph",
			[]string{"graph"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.graphs
	ch <- c.triples
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.graphs, prometheus.GaugeValue, float64(c.dataset.GraphCount()))
	for g := range c.dataset.Graphs() {
		ch <- prometheus.MustNewConstMetric(c.triples, prometheus.GaugeValue, float64(g.Len()), graphName(g.Name()))
	}
}

func graphName(name rdf.Term) string {
	if name == nil {
		return defaultGraphLabel
	}
	return rdf.FormatTerm(name)
}
