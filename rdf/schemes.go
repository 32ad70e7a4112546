package rdf

import "strings"

// SchemeRegistry reports whether a string is a recognised IRI scheme.
// Resolvers use it to tell an absolute IRI such as "http://x" apart from a
// prefixed name such as "ex:x".
type SchemeRegistry interface {
	IsScheme(name string) bool
}

// SchemeSet is a SchemeRegistry backed by a set of lower-case scheme names.
type SchemeSet map[string]struct{}

// NewSchemeSet returns a registry holding the given schemes.
func NewSchemeSet(schemes ...string) SchemeSet {
	set := make(SchemeSet, len(schemes))
	for _, s := range schemes {
		set[strings.ToLower(s)] = struct{}{}
	}
	return set
}

// IsScheme reports whether name is registered. Matching is case-insensitive.
func (s SchemeSet) IsScheme(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// DefaultSchemes holds the permanent IANA URI schemes plus a few
// provisional ones common in linked data.
var DefaultSchemes = NewSchemeSet(
	"aaa", "aaas", "about", "acap", "acct", "cap", "cid", "coap", "coaps",
	"crid", "data", "dav", "dict", "dns", "doi", "example", "file", "ftp",
	"geo", "go", "gopher", "h323", "http", "https", "iax", "icap", "im",
	"imap", "info", "ipp", "ipps", "iris", "iris.beep", "iris.lwz",
	"iris.xpc", "iris.xpcs", "jabber", "ldap", "mailto", "mid", "msrp",
	"msrps", "mtqp", "mupdate", "news", "nfs", "ni", "nih", "nntp",
	"opaquelocktoken", "pkcs11", "pop", "pres", "reload", "rtsp", "rtsps",
	"rtspu", "service", "session", "shttp", "sieve", "sip", "sips", "sms",
	"snmp", "soap.beep", "soap.beeps", "stun", "stuns", "tag", "tel",
	"telnet", "tftp", "thismessage", "tip", "tn3270", "turn", "turns", "tv",
	"urn", "vemmi", "ws", "wss", "xcon", "xcon-userid", "xmlrpc.beep",
	"xmlrpc.beeps", "xmpp", "z39.50r", "z39.50s",
)
