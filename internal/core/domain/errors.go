package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDomain is matched by every *InvalidDomainError.
	ErrInvalidDomain = errors.New("invalid domain")
	// ErrMissingRootDomain is returned when no root domain is configured.
	ErrMissingRootDomain = errors.New("root domain is not configured")
	// ErrRecordNotFound is returned when a record does not exist for the owner.
	ErrRecordNotFound = errors.New("record not found")
	// ErrUserNotFound is returned when the user store has no such account.
	ErrUserNotFound = errors.New("user not found")
)

// InvalidDomainError reports an FQDN that is not a subdomain of the user's
// base domain.
type InvalidDomainError struct {
	Username   string
	FQDN       string
	BaseDomain string
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("%s is not a subdomain of %s (user %q)", e.FQDN, e.BaseDomain, e.Username)
}

func (e *InvalidDomainError) Is(target error) bool {
	return target == ErrInvalidDomain
}
