package rdf

import (
	"fmt"
	"maps"
	"strings"
)

// Namespace is an IRI prefix from which terms are minted.
//
//	foaf := rdf.Namespace("http://xmlns.com/foaf/0.1/")
//	foaf.Term("name") // <http://xmlns.com/foaf/0.1/name>
type Namespace string

// Term returns the IRI formed by appending local to the namespace.
func (ns Namespace) Term(local string) IRI {
	return IRI{Value: string(ns) + local}
}

// IRI returns the namespace itself as an IRI.
func (ns Namespace) IRI() IRI { return IRI{Value: string(ns)} }

// String returns the namespace IRI.
func (ns Namespace) String() string { return string(ns) }

// Resolver expands a prefixed name or bare term into a full IRI.
type Resolver interface {
	Resolve(name string) (IRI, error)
}

// Shortener abbreviates an IRI, returning it unchanged when no mapping applies.
type Shortener interface {
	Shrink(iri IRI) string
}

// PrefixMap maps prefixes to namespace IRIs. The empty prefix is the default
// namespace. The zero value is an empty map.
type PrefixMap struct {
	prefixes map[string]string

	// Schemes decides which names are already absolute IRIs.
	// DefaultSchemes is used when nil.
	Schemes SchemeRegistry
}

// NewPrefixMap returns a prefix map seeded with the given mappings.
func NewPrefixMap(prefixes map[string]string) *PrefixMap {
	pm := &PrefixMap{prefixes: make(map[string]string, len(prefixes))}
	maps.Copy(pm.prefixes, prefixes)
	return pm
}

// Set maps prefix to namespace.
func (pm *PrefixMap) Set(prefix, namespace string) {
	if pm.prefixes == nil {
		pm.prefixes = make(map[string]string)
	}
	pm.prefixes[prefix] = namespace
}

// Get returns the namespace mapped to prefix.
func (pm *PrefixMap) Get(prefix string) (string, bool) {
	ns, ok := pm.prefixes[prefix]
	return ns, ok
}

// SetDefault sets the namespace used for names with an empty prefix, such as ":me".
func (pm *PrefixMap) SetDefault(namespace string) {
	pm.Set("", namespace)
}

// Len returns the number of mappings.
func (pm *PrefixMap) Len() int { return len(pm.prefixes) }

// Prefixes returns a copy of the mappings.
func (pm *PrefixMap) Prefixes() map[string]string {
	return maps.Clone(pm.prefixes)
}

// AddAll copies the mappings of other into pm. Existing prefixes are only
// replaced when override is set.
func (pm *PrefixMap) AddAll(other *PrefixMap, override bool) *PrefixMap {
	for prefix, ns := range other.prefixes {
		if _, exists := pm.prefixes[prefix]; exists && !override {
			continue
		}
		pm.Set(prefix, ns)
	}
	return pm
}

// Resolve expands a CURIE.
//
//   - "[p:ref]" is always treated as a CURIE.
//   - Otherwise, if the text before the first ':' is a registered scheme,
//     the name is already an absolute IRI and is returned unchanged.
//   - A name with no ':' resolves against the default namespace.
//   - "p:ref" resolves against the namespace mapped to p.
//
// Names whose prefix has no mapping fail with ErrUnresolvedPrefix.
func (pm *PrefixMap) Resolve(curie string) (IRI, error) {
	explicit := false
	if len(curie) >= 2 && curie[0] == '[' && curie[len(curie)-1] == ']' {
		curie = curie[1 : len(curie)-1]
		explicit = true
	}
	prefix, reference, hasSep := strings.Cut(curie, ":")
	if !explicit && hasSep && pm.schemes().IsScheme(prefix) {
		return IRI{Value: curie}, nil
	}
	if !hasSep {
		if ns, ok := pm.prefixes[""]; ok {
			return IRI{Value: ns + prefix}, nil
		}
		return IRI{}, fmt.Errorf("%w: no default namespace for %q", ErrUnresolvedPrefix, curie)
	}
	if ns, ok := pm.prefixes[prefix]; ok {
		return IRI{Value: ns + reference}, nil
	}
	return IRI{}, fmt.Errorf("%w: %q in %q", ErrUnresolvedPrefix, prefix, curie)
}

// Shrink abbreviates iri with the longest matching namespace whose
// remainder is a valid local name. It returns the IRI value unchanged when
// no namespace applies.
func (pm *PrefixMap) Shrink(iri IRI) string {
	if qname, ok := abbreviateQName(iri.Value, pm.prefixes); ok {
		return qname
	}
	return iri.Value
}

func (pm *PrefixMap) schemes() SchemeRegistry {
	if pm.Schemes != nil {
		return pm.Schemes
	}
	return DefaultSchemes
}

func abbreviateQName(iri string, prefixes map[string]string) (string, bool) {
	bestNS := ""
	bestPrefix := ""
	found := false
	for prefix, ns := range prefixes {
		if ns == "" || !strings.HasPrefix(iri, ns) {
			continue
		}
		if !isQNameLocal(iri[len(ns):]) {
			continue
		}
		// Ties on length go to the lexically smallest prefix so output is stable.
		if len(ns) > len(bestNS) || (len(ns) == len(bestNS) && prefix < bestPrefix) {
			bestNS = ns
			bestPrefix = prefix
			found = true
		}
	}
	if !found {
		return "", false
	}
	return bestPrefix + ":" + iri[len(bestNS):], true
}

func isQNameLocal(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		ch := value[i]
		if i == 0 {
			if !isNameStartChar(ch) {
				return false
			}
		} else if !isNameChar(ch) {
			return false
		}
	}
	return true
}

func isNameStartChar(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z') || ch == '_'
}

func isNameChar(ch byte) bool {
	return isNameStartChar(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == '.'
}

// TermMap maps bare terms such as "label" to IRIs, with an optional default
// vocabulary for terms that have no explicit mapping. The zero value is an
// empty map.
type TermMap struct {
	terms      map[string]string
	vocabulary string
	hasVocab   bool
}

// NewTermMap returns a term map seeded with the given mappings.
func NewTermMap(terms map[string]string) *TermMap {
	tm := &TermMap{terms: make(map[string]string, len(terms))}
	maps.Copy(tm.terms, terms)
	return tm
}

// Set maps term to iri.
func (tm *TermMap) Set(term, iri string) {
	if tm.terms == nil {
		tm.terms = make(map[string]string)
	}
	tm.terms[term] = iri
}

// SetDefault sets the vocabulary IRI prepended to unknown terms.
func (tm *TermMap) SetDefault(vocabulary string) {
	tm.vocabulary = vocabulary
	tm.hasVocab = true
}

// Len returns the number of explicit mappings.
func (tm *TermMap) Len() int { return len(tm.terms) }

// AddAll copies the mappings of other into tm. Existing terms are only
// replaced when override is set.
func (tm *TermMap) AddAll(other *TermMap, override bool) *TermMap {
	for term, iri := range other.terms {
		if _, exists := tm.terms[term]; exists && !override {
			continue
		}
		tm.Set(term, iri)
	}
	if other.hasVocab && (override || !tm.hasVocab) {
		tm.SetDefault(other.vocabulary)
	}
	return tm
}

// Resolve returns the IRI mapped to term, or the default vocabulary joined
// with term. Without either it fails with ErrUnresolvedPrefix.
func (tm *TermMap) Resolve(term string) (IRI, error) {
	if iri, ok := tm.terms[term]; ok {
		return IRI{Value: iri}, nil
	}
	if tm.hasVocab {
		return IRI{Value: tm.vocabulary + term}, nil
	}
	return IRI{}, fmt.Errorf("%w: unknown term %q", ErrUnresolvedPrefix, term)
}

// Shrink returns a term mapped to iri, or the IRI value when none is.
// When several terms map to the same IRI the lexically smallest wins.
func (tm *TermMap) Shrink(iri IRI) string {
	best := ""
	for term, value := range tm.terms {
		if value == iri.Value && (best == "" || term < best) {
			best = term
		}
	}
	if best != "" {
		return best
	}
	return iri.Value
}

// Profile bundles a prefix map and a term map. A zero Profile allocates
// both maps on first use.
type Profile struct {
	Prefixes *PrefixMap
	Terms    *TermMap
}

// NewProfile returns an empty profile.
func NewProfile() *Profile {
	return &Profile{Prefixes: NewPrefixMap(nil), Terms: NewTermMap(nil)}
}

// Resolve expands name through the prefix map when it contains ':' and
// through the term map otherwise.
func (p *Profile) Resolve(name string) (IRI, error) {
	p.init()
	if strings.Contains(name, ":") {
		return p.Prefixes.Resolve(name)
	}
	return p.Terms.Resolve(name)
}

// Shrink prefers a bare term, then a prefixed name, then the IRI itself.
func (p *Profile) Shrink(iri IRI) string {
	p.init()
	if term := p.Terms.Shrink(iri); term != iri.Value {
		return term
	}
	return p.Prefixes.Shrink(iri)
}

func (p *Profile) init() {
	if p.Prefixes == nil {
		p.Prefixes = NewPrefixMap(nil)
	}
	if p.Terms == nil {
		p.Terms = NewTermMap(nil)
	}
}

// SetPrefix maps prefix to namespace.
func (p *Profile) SetPrefix(prefix, namespace string) {
	p.init()
	p.Prefixes.Set(prefix, namespace)
}

// SetTerm maps term to iri.
func (p *Profile) SetTerm(term, iri string) {
	p.init()
	p.Terms.Set(term, iri)
}

// SetDefaultPrefix sets the default namespace for prefixed names.
func (p *Profile) SetDefaultPrefix(namespace string) {
	p.init()
	p.Prefixes.SetDefault(namespace)
}

// SetDefaultVocabulary sets the vocabulary for unmapped terms.
func (p *Profile) SetDefaultVocabulary(vocabulary string) {
	p.init()
	p.Terms.SetDefault(vocabulary)
}

// Import copies the mappings of other into p.
func (p *Profile) Import(other *Profile, override bool) *Profile {
	p.init()
	if other.Prefixes != nil {
		p.Prefixes.AddAll(other.Prefixes, override)
	}
	if other.Terms != nil {
		p.Terms.AddAll(other.Terms, override)
	}
	return p
}
