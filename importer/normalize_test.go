package importer

import (
	"testing"
	"time"

	"clubroster/roster"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "(512) 555-0101", want: "5125550101"},
		{raw: "512.555.0101 x2", want: "51255501012"},
		{raw: "n/a", want: ""},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizePhone(tt.raw); got != tt.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDeceased(t *testing.T) {
	for _, truthy := range []string{"yes", "Y", "TRUE", "1", " Yes "} {
		if !ParseDeceased(truthy) {
			t.Fatalf("expected %q to parse as deceased", truthy)
		}
	}
	for _, falsy := range []string{"", "no", "N", "0", "false", "deceased"} {
		if ParseDeceased(falsy) {
			t.Fatalf("expected %q to parse as not deceased", falsy)
		}
	}
}

func TestNormalize_Dates(t *testing.T) {
	raw := RawRow{
		MembershipExpiration: "2026-12-31",
		DateOfBirth:          "2/1/1970",
	}

	row := Normalize(raw)
	if row.MembershipExpiration == nil {
		t.Fatalf("expected expiration date to parse")
	}
	want := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
	if !row.MembershipExpiration.Equal(want) {
		t.Fatalf("expected %v, got %v", want, *row.MembershipExpiration)
	}
	if row.DateOfBirth == nil {
		t.Fatalf("expected date of birth to parse")
	}
	if row.DateOfBirth.Year() != 1970 || row.DateOfBirth.Month() != time.February {
		t.Fatalf("unexpected date of birth: %v", *row.DateOfBirth)
	}
}

func TestNormalize_UnparseableDateIsAbsentNotError(t *testing.T) {
	row := Normalize(RawRow{MembershipExpiration: "next spring", DateOfBirth: "??"})
	if row.MembershipExpiration != nil || row.DateOfBirth != nil {
		t.Fatalf("expected unparseable dates to degrade to absent, got %+v", row)
	}
}

func TestNormalize_EmailLowercased(t *testing.T) {
	row := Normalize(RawRow{Email: "Jane.Doe@Example.ORG"})
	if row.Email != "jane.doe@example.org" {
		t.Fatalf("expected lowercased email, got %q", row.Email)
	}

	row = Normalize(RawRow{})
	if row.Email != "" {
		t.Fatalf("expected absent email to stay empty, got %q", row.Email)
	}
}

func TestNormalize_Enums(t *testing.T) {
	row := Normalize(RawRow{
		MembershipType: "associate member",
		PhoneType:      "Mobile",
		Phone:          "512-555-0101",
		Deceased:       "Y",
	})

	if row.MembershipType != roster.MembershipAssociate {
		t.Fatalf("expected Associate, got %q", row.MembershipType)
	}
	if row.PhoneType != roster.PhoneCell {
		t.Fatalf("expected Cell, got %q", row.PhoneType)
	}
	if row.PhoneNormalized != "5125550101" {
		t.Fatalf("expected normalized digits, got %q", row.PhoneNormalized)
	}
	if !row.Deceased {
		t.Fatalf("expected deceased flag set")
	}

	row = Normalize(RawRow{})
	if row.MembershipType != roster.MembershipFull {
		t.Fatalf("expected default Full membership, got %q", row.MembershipType)
	}
}
