package domain

import (
	"errors"
	"strings"
	"testing"
)

func newTestNamer(t *testing.T) *Namer {
	t.Helper()
	n, err := NewNamer("starchart.com")
	if err != nil {
		t.Fatalf("NewNamer failed: %v", err)
	}
	return n
}

func TestNewNamer(t *testing.T) {
	t.Run("Empty Root Domain", func(t *testing.T) {
		for _, root := range []string{"", "  ", "."} {
			if _, err := NewNamer(root); !errors.Is(err, ErrMissingRootDomain) {
				t.Errorf("NewNamer(%q) error = %v, want ErrMissingRootDomain", root, err)
			}
		}
	})

	t.Run("Trailing Dot Trimmed", func(t *testing.T) {
		n, err := NewNamer("starchart.com.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.RootDomain() != "starchart.com" {
			t.Errorf("expected starchart.com, got %s", n.RootDomain())
		}
	})
}

func TestStripDots(t *testing.T) {
	for _, u := range []string{"", "john", "john.smith", "a.b.c.d", "...", "faculty.jane.doe."} {
		got := StripDots(u)
		if strings.Contains(got, ".") {
			t.Errorf("StripDots(%q) = %q still contains a dot", u, got)
		}
		if want := len(u) - strings.Count(u, "."); len(got) != want {
			t.Errorf("StripDots(%q) length = %d, want %d", u, len(got), want)
		}
	}
}

func TestBuildDomain(t *testing.T) {
	n := newTestNamer(t)

	if got := n.BuildBaseDomain("john.smith"); got != "johnsmith.starchart.com" {
		t.Errorf("BuildBaseDomain = %q", got)
	}
	if got := n.BuildDomain("john.smith", ""); got != n.BuildBaseDomain("john.smith") {
		t.Errorf("BuildDomain without name = %q, want base domain", got)
	}
	if got := n.BuildDomain("john.smith", "www"); got != "www.johnsmith.starchart.com" {
		t.Errorf("BuildDomain = %q", got)
	}
	if got := n.BuildDomain("jane", "api.v2"); got != "api.v2."+n.BuildBaseDomain("jane") {
		t.Errorf("BuildDomain multi-label = %q", got)
	}
}

func TestSubdomainFromFQDN(t *testing.T) {
	n := newTestNamer(t)

	t.Run("Round Trip", func(t *testing.T) {
		users := []string{"john.smith", "jane", "faculty.a.b"}
		names := []string{"www", "api.v2", "x", "osd-600"}
		for _, u := range users {
			for _, name := range names {
				got, err := n.SubdomainFromFQDN(u, n.BuildDomain(u, name))
				if err != nil {
					t.Fatalf("SubdomainFromFQDN(%q, %q) failed: %v", u, name, err)
				}
				if got != name {
					t.Errorf("round trip for %q/%q = %q", u, name, got)
				}
			}
		}
	})

	t.Run("Concrete Case", func(t *testing.T) {
		got, err := n.SubdomainFromFQDN("john.smith", "www.johnsmith.starchart.com")
		if err != nil || got != "www" {
			t.Errorf("expected www, got %q (err %v)", got, err)
		}
	})

	t.Run("Other User", func(t *testing.T) {
		_, err := n.SubdomainFromFQDN("john.smith", "www.otheruser.starchart.com")
		if !errors.Is(err, ErrInvalidDomain) {
			t.Fatalf("expected ErrInvalidDomain, got %v", err)
		}
		var ide *InvalidDomainError
		if !errors.As(err, &ide) {
			t.Fatalf("expected *InvalidDomainError, got %T", err)
		}
		if ide.BaseDomain != "johnsmith.starchart.com" || ide.FQDN != "www.otheruser.starchart.com" {
			t.Errorf("unexpected error fields: %+v", ide)
		}
	})

	t.Run("Not A Subdomain", func(t *testing.T) {
		cases := []string{
			"johnsmith.starchart.com", // the base domain itself has no subdomain
			"wwwjohnsmith.starchart.com",
			"www.JohnSmith.starchart.com", // no case folding
			".johnsmith.starchart.com",    // empty subdomain
			"",
		}
		for _, fqdn := range cases {
			if _, err := n.SubdomainFromFQDN("john.smith", fqdn); !errors.Is(err, ErrInvalidDomain) {
				t.Errorf("SubdomainFromFQDN(%q) error = %v, want ErrInvalidDomain", fqdn, err)
			}
		}
	})
}
