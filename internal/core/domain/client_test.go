package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDocumentType(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    DocumentType
		wantErr bool
	}{
		{name: "canonical name", token: "DNI", want: DocumentDNI},
		{name: "passport", token: "PASAPORTE", want: DocumentPasaporte},
		{name: "unknown token", token: "LICENCIA", wantErr: true},
		{name: "lowercase is rejected", token: "dni", wantErr: true},
		{name: "empty token", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDocumentType(tt.token)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEnumValue) {
					t.Fatalf("expected ErrInvalidEnumValue, got %v", err)
				}
				if !strings.Contains(err.Error(), tt.token) && tt.token != "" {
					t.Fatalf("error should name the offending token: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseProductTypes_NilVsEmpty(t *testing.T) {
	got, err := ParseProductTypes(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("nil input must resolve to nil, got %v", got)
	}

	got, err = ParseProductTypes([]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("empty input must resolve to an empty non-nil slice, got %v", got)
	}
}

func TestParseProductTypes_RejectsFirstInvalidToken(t *testing.T) {
	_, err := ParseProductTypes([]string{"CHEQ", "BOGUS"})
	if !errors.Is(err, ErrInvalidEnumValue) {
		t.Fatalf("expected ErrInvalidEnumValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "BOGUS") {
		t.Fatalf("error should reference the offending token: %v", err)
	}

	// order of validity must not matter
	_, err = ParseProductTypes([]string{"BOGUS", "CHEQ"})
	if !errors.Is(err, ErrInvalidEnumValue) {
		t.Fatalf("expected ErrInvalidEnumValue, got %v", err)
	}
}

func TestParseProductTypes_AllMembers(t *testing.T) {
	for _, pt := range AllProductTypes() {
		got, err := ParseProductTypes([]string{string(pt)})
		if err != nil {
			t.Fatalf("member %s should parse: %v", pt, err)
		}
		if len(got) != 1 || got[0] != pt {
			t.Fatalf("expected [%s], got %v", pt, got)
		}
	}
}
