package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/geoknoesis/rdfstore/rdf"
	"github.com/geoknoesis/rdfstore/rdf/rdfmetrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose  bool
	prefixes string
}

type matchFlags struct {
	subject   string
	predicate string
	object    string
	graph     string
}

func newRootCommand(log *logrus.Logger) *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "rdfstore",
		Short:         "Query N-Triples and N-Quads files with triple patterns",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&flags.prefixes, "prefixes", "", "YAML profile with prefixes and terms for pattern arguments")

	root.AddCommand(newMatchCommand(log, flags), newStatsCommand(log))
	return root
}

func newMatchCommand(log *logrus.Logger, root *rootFlags) *cobra.Command {
	flags := &matchFlags{}
	cmd := &cobra.Command{
		Use:   "match [files...]",
		Short: "Print the quads matching a pattern as N-Quads",
		Long:  `Print the quads matching a pattern as N-Quads.

Blank node labels in the input files are kept as written, so a pattern term
such as _:x matches the node labelled _:x. The same label in two input files
names the same node.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := rdf.NewProfile()
			if root.prefixes != "" {
				loaded, err := rdf.LoadProfileFile(root.prefixes)
				if err != nil {
					return err
				}
				profile = loaded
			}
			pattern, err := parsePattern(flags, profile)
			if err != nil {
				return err
			}
			ds, err := loadDataset(log, args)
			if err != nil {
				return err
			}
			return rdf.WriteQuads(cmd.OutOrStdout(), ds.Match(pattern[0], pattern[1], pattern[2], pattern[3]))
		},
	}
	cmd.Flags().StringVarP(&flags.subject, "subject", "s", "", "subject term (blank node labels such as _:x are kept as written in the input files)")
	cmd.Flags().StringVarP(&flags.predicate, "predicate", "p", "", "predicate term")
	cmd.Flags().StringVarP(&flags.object, "object", "o", "", "object term (blank node labels are kept as written)")
	cmd.Flags().StringVarP(&flags.graph, "graph", "g", "", "graph name")
	return cmd
}

func newStatsCommand(log *logrus.Logger) *cobra.Command {
	var metrics bool
	cmd := &cobra.Command{
		Use:   "stats [files...]",
		Short: "Print graph and triple counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(log, args)
			if err != nil {
				return err
			}
			if metrics {
				return writeMetrics(cmd.OutOrStdout(), ds)
			}
			return writeStats(cmd.OutOrStdout(), ds)
		},
	}
	cmd.Flags().BoolVar(&metrics, "metrics", false, "print counts in Prometheus text exposition format")
	return cmd
}

// parsePattern returns subject, predicate, object and graph; empty flags stay unbound.
func parsePattern(flags *matchFlags, resolver rdf.Resolver) ([4]rdf.Term, error) {
	var pattern [4]rdf.Term
	for i, text := range []string{flags.subject, flags.predicate, flags.object, flags.graph} {
		if text == "" {
			continue
		}
		term, err := rdf.ParseTerm(text, resolver)
		if err != nil {
			return pattern, fmt.Errorf("pattern term %q: %w", text, err)
		}
		pattern[i] = term
	}
	return pattern, nil
}

func loadDataset(log *logrus.Logger, paths []string) (*rdf.Dataset, error) {
	ds := rdf.NewDataset(rdf.OptLogger(log))
	for _, path := range paths {
		if err := loadFile(log, ds, path); err != nil {
			return nil, err
		}
	}
	log.WithFields(logrus.Fields{
		"files":   len(paths),
		"graphs":  ds.GraphCount(),
		"triples": ds.Len(),
	}).Debug("dataset loaded")
	return ds, nil
}

func loadFile(log *logrus.Logger, ds *rdf.Dataset, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".nt":
		g := rdf.NewGraph(nil)
		if err := rdf.ReadNTriples(f, g, rdf.OptLogger(log), rdf.OptPreserveBlankNodeLabels()); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for t := range g.All() {
			ds.Add(t.ToQuadInGraph(nil))
		}
		return nil
	case ".nq":
		if err := rdf.ReadNQuads(f, ds, rdf.OptLogger(log), rdf.OptPreserveBlankNodeLabels()); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	default:
		return fmt.Errorf("%s: unsupported file extension (want .nt or .nq)", path)
	}
}

func writeStats(w io.Writer, ds *rdf.Dataset) error {
	type row struct {
		name    string
		triples int
	}
	var rows []row
	for g := range ds.Graphs() {
		name := "(default)"
		if g.Name() != nil {
			name = rdf.FormatTerm(g.Name())
		}
		rows = append(rows, row{name: name, triples: g.Len()})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })

	if _, err := fmt.Fprintf(w, "graphs: %d\ntriples: %d\n", ds.GraphCount(), ds.Len()); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", r.name, r.triples); err != nil {
			return err
		}
	}
	return nil
}

func writeMetrics(w io.Writer, ds *rdf.Dataset) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(rdfmetrics.NewCollector("rdfstore", ds)); err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return err
		}
	}
	return nil
}
