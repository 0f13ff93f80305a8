// Package domain contains the core business logic and entities for starchart.
package domain

import (
	"time"
)

// RecordType represents the type of a DNS record (e.g., A, AAAA, MX).
type RecordType string

const (
	// TypeA represents an IPv4 address record.
	TypeA RecordType = "A"
	// TypeAAAA represents an IPv6 address record.
	TypeAAAA RecordType = "AAAA"
	// TypeCNAME represents a canonical name record.
	TypeCNAME RecordType = "CNAME"
	// TypeMX represents a mail exchange record.
	TypeMX RecordType = "MX"
	// TypeTXT represents a text record.
	TypeTXT RecordType = "TXT"
)

// Valid reports whether users may create records of this type.
func (t RecordType) Valid() bool {
	switch t {
	case TypeA, TypeAAAA, TypeCNAME, TypeMX, TypeTXT:
		return true
	}
	return false
}

// Record represents a DNS resource record inside a user's namespace.
type Record struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Name      string     `json:"name"` // e.g., www, empty for the base domain
	FQDN      string     `json:"fqdn"` // e.g., www.johnsmith.starchart.com
	Type      RecordType `json:"type"`
	Value     string     `json:"value"`
	TTL       int        `json:"ttl"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// DomainInfo describes how an FQDN sits inside a user's namespace.
type DomainInfo struct {
	Username   string `json:"username"`
	BaseDomain string `json:"base_domain"`
	FQDN       string `json:"fqdn"`
	Subdomain  string `json:"subdomain"`
}
