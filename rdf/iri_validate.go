package rdf

import (
	"fmt"
	"net/url"
)

// ValidateIRI checks that iri is an absolute IRI: it must carry a
// syntactically valid scheme and contain no characters that have to be
// percent-encoded inside <...>. Failures wrap ErrInvalidArgument.
//
// This is a structural check only; it does not consult a scheme registry.
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("%w: empty IRI", ErrInvalidArgument)
	}
	for i, r := range iri {
		if isIRIExcluded(r) {
			return fmt.Errorf("%w: character %q at position %d in IRI %q must be percent-encoded",
				ErrInvalidArgument, r, i, iri)
		}
	}

	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("%w: invalid IRI syntax: %v", ErrInvalidArgument, err)
	}
	if parsed.Scheme == "" {
		return fmt.Errorf("%w: IRI %q has no scheme", ErrInvalidArgument, iri)
	}
	// url.Parse already limits schemes to ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
	return nil
}
