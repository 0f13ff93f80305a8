package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var validLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// ValidateRecordName checks a user-supplied record name. An empty name
// addresses the base domain itself; otherwise every label must be valid.
func ValidateRecordName(name string) error {
	if name == "" {
		return nil
	}
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return fmt.Errorf("record name must not start or end with a dot")
	}
	if len(name) > 200 {
		return fmt.Errorf("record name exceeds 200 characters")
	}

	for _, label := range strings.Split(name, ".") {
		if len(label) > 63 {
			return fmt.Errorf("label '%s' exceeds 63 characters", label)
		}
		if label == "" {
			return fmt.Errorf("record name contains empty label")
		}
		if !validLabelRegex.MatchString(label) {
			return fmt.Errorf("label '%s' contains invalid characters or format", label)
		}
	}
	return nil
}

// ValidateRecord checks the type and value of a record before it is stored.
func ValidateRecord(rec *Record) error {
	if err := ValidateRecordName(rec.Name); err != nil {
		return err
	}
	if !rec.Type.Valid() {
		return fmt.Errorf("unsupported record type %q", rec.Type)
	}
	if strings.TrimSpace(rec.Value) == "" {
		return fmt.Errorf("record value cannot be empty")
	}
	return nil
}
