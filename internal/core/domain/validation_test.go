package domain

import (
	"strings"
	"testing"
)

func TestValidateRecordName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false}, // base domain
		{"www", false},
		{"a.b.c", false},
		{"label-with-hyphen", false},
		{"osd600", false},
		{strings.Repeat("a", 64), true},
		{"-start-with-hyphen", true},
		{"end-with-hyphen-", true},
		{"invalid_char", true},
		{"trailing.", true},
		{".leading", true},
		{"double..dot", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateRecordName(tt.name); (err != nil) != tt.wantErr {
				t.Errorf("ValidateRecordName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		label   string
		rec     Record
		wantErr bool
	}{
		{"valid A", Record{Name: "www", Type: TypeA, Value: "1.2.3.4"}, false},
		{"valid TXT at base", Record{Type: TypeTXT, Value: "hello"}, false},
		{"unsupported type", Record{Name: "www", Type: "SOA", Value: "x"}, true},
		{"empty value", Record{Name: "www", Type: TypeA, Value: "  "}, true},
		{"bad name", Record{Name: "bad_name", Type: TypeA, Value: "1.2.3.4"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if err := ValidateRecord(&tt.rec); (err != nil) != tt.wantErr {
				t.Errorf("ValidateRecord(%+v) error = %v, wantErr %v", tt.rec, err, tt.wantErr)
			}
		})
	}
}
