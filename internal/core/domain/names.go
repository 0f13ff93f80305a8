package domain

import "strings"

// Namer derives per-user domain names under a fixed root domain.
// It is immutable and safe for concurrent use.
type Namer struct {
	rootDomain string
}

// NewNamer returns a Namer for rootDomain, e.g. "starchart.com".
// An empty root domain is rejected so no malformed name is ever built.
func NewNamer(rootDomain string) (*Namer, error) {
	rootDomain = strings.TrimSuffix(strings.TrimSpace(rootDomain), ".")
	if rootDomain == "" {
		return nil, ErrMissingRootDomain
	}
	return &Namer{rootDomain: rootDomain}, nil
}

// RootDomain returns the configured root domain.
func (n *Namer) RootDomain() string {
	return n.rootDomain
}

// StripDots removes every '.' from username so it forms a single DNS label.
// "john.smith" and "johnsmith" collide; that is accepted.
func StripDots(username string) string {
	return strings.ReplaceAll(username, ".", "")
}

// BuildBaseDomain returns the user's base domain, e.g. "johnsmith.starchart.com".
func (n *Namer) BuildBaseDomain(username string) string {
	return StripDots(username) + "." + n.rootDomain
}

// BuildDomain returns name under the user's base domain, or the base domain
// itself when name is empty.
func (n *Namer) BuildDomain(username, name string) string {
	if name == "" {
		return n.BuildBaseDomain(username)
	}
	return name + "." + n.BuildBaseDomain(username)
}

// SubdomainFromFQDN returns the part of fqdn in front of the user's base
// domain. The match is a plain, case-sensitive suffix check; an empty
// prefix (".johnsmith.starchart.com") is rejected.
func (n *Namer) SubdomainFromFQDN(username, fqdn string) (string, error) {
	base := n.BuildBaseDomain(username)
	suffix := "." + base
	sub := strings.TrimSuffix(fqdn, suffix)
	if !strings.HasSuffix(fqdn, suffix) || sub == "" {
		return "", &InvalidDomainError{Username: username, FQDN: fqdn, BaseDomain: base}
	}
	return sub, nil
}
