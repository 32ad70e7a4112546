// Command rdfstore loads N-Triples and N-Quads files into an in-memory
// dataset and answers single-pattern queries against it.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if err := newRootCommand(log).Execute(); err != nil {
		log.WithError(err).Error("rdfstore failed")
		os.Exit(1)
	}
}
