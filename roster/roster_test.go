package roster

import "testing"

func TestParseMembershipType(t *testing.T) {
	tests := []struct {
		raw  string
		want MembershipType
	}{
		{raw: "Honorary", want: MembershipHonorary},
		{raw: "honor roll", want: MembershipHonorary},
		{raw: "Associate Member", want: MembershipAssociate},
		{raw: "ASSOC", want: MembershipAssociate},
		{raw: "Inactive", want: MembershipInactive},
		{raw: "Full", want: MembershipFull},
		{raw: "Regular", want: MembershipFull},
		{raw: "", want: MembershipFull},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParseMembershipType(tt.raw); got != tt.want {
				t.Fatalf("ParseMembershipType(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParsePhoneType(t *testing.T) {
	tests := []struct {
		raw  string
		want PhoneType
	}{
		{raw: "Cell", want: PhoneCell},
		{raw: "mobile phone", want: PhoneCell},
		{raw: "Work", want: PhoneWork},
		{raw: "Office", want: PhoneWork},
		{raw: "Home", want: PhoneHome},
		{raw: "fax", want: ""},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := ParsePhoneType(tt.raw); got != tt.want {
				t.Fatalf("ParsePhoneType(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMemberFullName(t *testing.T) {
	member := Member{FirstName: "Jane", LastName: "Doe"}
	if got := member.FullName(); got != "Jane Doe" {
		t.Fatalf("expected %q, got %q", "Jane Doe", got)
	}

	member = Member{FirstName: "Jane"}
	if got := member.FullName(); got != "Jane" {
		t.Fatalf("expected trimmed name, got %q", got)
	}
}
