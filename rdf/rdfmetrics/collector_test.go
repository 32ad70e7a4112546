package rdfmetrics

import (
	"testing"

	"github.com/geoknoesis/rdfstore/rdf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iri(local string) rdf.IRI { return rdf.IRI{Value: "http://ex/" + local} }

func TestCollectorReportsDatasetSizes(t *testing.T) {
	ds := rdf.NewDataset()
	ds.Add(rdf.NewQuad(iri("s"), iri("p"), iri("o1"), iri("g")))
	ds.Add(rdf.NewQuad(iri("s"), iri("p"), iri("o2"), iri("g")))
	ds.Add(rdf.NewQuad(iri("s"), iri("p"), iri("o"), nil))

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewCollector("rdfstore", ds)))

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			key := family.GetName()
			for _, label := range metric.GetLabel() {
				key += "|" + label.GetValue()
			}
			values[key] = metric.GetGauge().GetValue()
		}
	}

	assert.Len(t, values, 3)
	assert.Equal(t, 2.0, values["rdfstore_dataset_graphs"])
	assert.Equal(t, 2.0, values["rdfstore_graph_triples|<http://ex/g>"])
	assert.Equal(t, 1.0, values["rdfstore_graph_triples|"+defaultGraphLabel])
}

func TestCollectorTracksMutations(t *testing.T) {
	ds := rdf.NewDataset()
	c := NewCollector("", ds)
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "dataset_graphs", families[0].GetName())
	assert.Zero(t, families[0].GetMetric()[0].GetGauge().GetValue())

	ds.Add(rdf.NewQuad(iri("s"), iri("p"), iri("o"), iri("g")))
	families, err = reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 2)
}
