package importer

import (
	"strings"
	"time"

	"clubroster/roster"
)

// Row is the normalized form of one roster row, ready for reconciliation.
type Row struct {
	RowID         string
	CharterNumber string
	ClubName      string
	ClubState     string

	ContactID              string
	Prefix                 string
	FirstName              string
	MiddleName             string
	LastName               string
	BadgeNickname          string
	Suffix                 string
	StreetAddress          string
	Address2               string
	City                   string
	State                  string
	Zip                    string
	Phone                  string
	PhoneNormalized        string
	PhoneType              roster.PhoneType
	Email                  string
	MembershipType         roster.MembershipType
	MembershipExpiration   *time.Time
	AssociatePrimaryMember string
	Gender                 string
	Occupation             string
	Employer               string
	DateOfBirth            *time.Time
	Deceased               bool
	Exception              string
}

// Normalize converts raw extracted strings into canonical domain values.
// Every normalization failure degrades to "field absent"; only the
// reconcile step decides whether a row is structurally unusable.
func Normalize(raw RawRow) Row {
	return Row{
		RowID:                  raw.RowID,
		CharterNumber:          raw.CharterNumber,
		ClubName:               raw.ClubName,
		ClubState:              raw.ClubState,
		ContactID:              raw.ContactID,
		Prefix:                 raw.Prefix,
		FirstName:              raw.FirstName,
		MiddleName:             raw.MiddleName,
		LastName:               raw.LastName,
		BadgeNickname:          raw.BadgeNickname,
		Suffix:                 raw.Suffix,
		StreetAddress:          raw.StreetAddress,
		Address2:               raw.Address2,
		City:                   raw.City,
		State:                  raw.State,
		Zip:                    raw.Zip,
		Phone:                  raw.Phone,
		PhoneNormalized:        NormalizePhone(raw.Phone),
		PhoneType:              roster.ParsePhoneType(raw.PhoneType),
		Email:                  strings.ToLower(raw.Email),
		MembershipType:         roster.ParseMembershipType(raw.MembershipType),
		MembershipExpiration:   parseDate(raw.MembershipExpiration),
		AssociatePrimaryMember: raw.AssociatePrimaryMember,
		Gender:                 raw.Gender,
		Occupation:             raw.Occupation,
		Employer:               raw.Employer,
		DateOfBirth:            parseDate(raw.DateOfBirth),
		Deceased:               ParseDeceased(raw.Deceased),
		Exception:              raw.Exception,
	}
}

// NormalizePhone strips every non-digit character; an all-symbol value
// normalizes to absent.
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

// ParseDeceased accepts the truthy spellings seen in roster exports.
func ParseDeceased(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "y", "true", "1":
		return true
	default:
		return false
	}
}

var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"1/2/06",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
	time.RFC3339,
}

// parseDate parses a calendar date in the formats roster exports produce.
// Unparseable input is treated as absent, never as a row error.
func parseDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed
		}
	}
	return nil
}
