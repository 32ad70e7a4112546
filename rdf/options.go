package rdf

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Dataset or a decoder.
type Option func(*Options)

// Options holds settings shared by datasets and decoders.
type Options struct {
	// Logger receives debug events (graph creation, load summaries).
	Logger logrus.FieldLogger

	// BlankNodes allocates nodes for blank node labels read from documents.
	BlankNodes BlankNodeFactory

	// PreserveBlankNodeLabels keeps document labels as blank node tokens
	// instead of allocating fresh nodes, so _:x read from any document is
	// BlankNode{ID: "x"}. BlankNodes is ignored when set.
	PreserveBlankNodeLabels bool
}

// OptLogger sets the logger.
func OptLogger(logger logrus.FieldLogger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// OptBlankNodeFactory sets the factory used for blank node labels read from documents.
func OptBlankNodeFactory(factory BlankNodeFactory) Option {
	return func(opts *Options) {
		opts.BlankNodes = factory
	}
}

// OptPreserveBlankNodeLabels makes decoders keep blank node labels as tokens.
// Equal labels in different documents then name the same node.
func OptPreserveBlankNodeLabels() Option {
	return func(opts *Options) {
		opts.PreserveBlankNodeLabels = true
	}
}

func defaultOptions() Options {
	return Options{
		Logger:     discardLogger(),
		BlankNodes: NewBlankNode,
	}
}

func applyOptions(opts []Option) Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = discardLogger()
	}
	if options.BlankNodes == nil {
		options.BlankNodes = NewBlankNode
	}
	return options
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
