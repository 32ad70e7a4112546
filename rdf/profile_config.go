package rdf

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ProfileConfig is the YAML form of a Profile:
//
//	prefixes:
//	  ex: http://example.org/
//	  foaf: http://xmlns.com/foaf/0.1/
//	terms:
//	  name: http://xmlns.com/foaf/0.1/name
//	defaultPrefix: http://example.org/
//	vocabulary: http://www.w3.org/2000/01/rdf-schema#
type ProfileConfig struct {
	Prefixes      map[string]string `yaml:"prefixes"`
	Terms         map[string]string `yaml:"terms"`
	DefaultPrefix string            `yaml:"defaultPrefix"`
	Vocabulary    string            `yaml:"vocabulary"`
}

// Profile builds a Profile from the configuration.
func (c ProfileConfig) Profile() *Profile {
	p := &Profile{
		Prefixes: NewPrefixMap(c.Prefixes),
		Terms:    NewTermMap(c.Terms),
	}
	if c.DefaultPrefix != "" {
		p.SetDefaultPrefix(c.DefaultPrefix)
	}
	if c.Vocabulary != "" {
		p.SetDefaultVocabulary(c.Vocabulary)
	}
	return p
}

// Validate checks that every namespace, term and default is an absolute IRI.
func (c ProfileConfig) Validate() error {
	for prefix, ns := range c.Prefixes {
		if err := ValidateIRI(ns); err != nil {
			return fmt.Errorf("prefix %q: %w", prefix, err)
		}
	}
	for term, iri := range c.Terms {
		if err := ValidateIRI(iri); err != nil {
			return fmt.Errorf("term %q: %w", term, err)
		}
	}
	if c.DefaultPrefix != "" {
		if err := ValidateIRI(c.DefaultPrefix); err != nil {
			return fmt.Errorf("defaultPrefix: %w", err)
		}
	}
	if c.Vocabulary != "" {
		if err := ValidateIRI(c.Vocabulary); err != nil {
			return fmt.Errorf("vocabulary: %w", err)
		}
	}
	return nil
}

// LoadProfile decodes and validates a YAML profile document. An empty
// document yields an empty profile.
func LoadProfile(r io.Reader) (*Profile, error) {
	var cfg ProfileConfig
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ParseError{Format: "profile", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg.Profile(), nil
}

// LoadProfileFile reads a YAML profile from path.
func LoadProfileFile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()
	return LoadProfile(f)
}
