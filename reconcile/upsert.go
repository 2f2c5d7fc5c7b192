package reconcile

import (
	"clubroster/importer"
	"clubroster/internal/timeutil"
	"clubroster/roster"
)

// newMember builds a member entirely from the normalized row values.
func newMember(row importer.Row, clubID string) roster.Member {
	return roster.Member{
		ContactID:              row.ContactID,
		Prefix:                 row.Prefix,
		FirstName:              row.FirstName,
		MiddleName:             row.MiddleName,
		LastName:               row.LastName,
		BadgeNickname:          row.BadgeNickname,
		Suffix:                 row.Suffix,
		StreetAddress:          row.StreetAddress,
		Address2:               row.Address2,
		City:                   row.City,
		State:                  row.State,
		Zip:                    row.Zip,
		Phone:                  row.Phone,
		PhoneNormalized:        row.PhoneNormalized,
		PhoneType:              row.PhoneType,
		Email:                  row.Email,
		MembershipType:         row.MembershipType,
		MembershipExpiration:   row.MembershipExpiration,
		AssociatePrimaryMember: row.AssociatePrimaryMember,
		Gender:                 row.Gender,
		Occupation:             row.Occupation,
		Employer:               row.Employer,
		DateOfBirth:            row.DateOfBirth,
		Deceased:               row.Deceased,
		ClubID:                 clubID,
	}
}

// mergeMember overlays the row onto the existing member: an incoming
// non-empty value always wins (last-import-wins), empty incoming values
// leave the stored value alone. The deceased flag and the club reference
// always take the incoming value.
func mergeMember(existing roster.Member, row importer.Row, clubID string) roster.Member {
	merged := existing
	merged.ContactID = pick(row.ContactID, existing.ContactID)
	merged.Prefix = pick(row.Prefix, existing.Prefix)
	merged.FirstName = row.FirstName
	merged.MiddleName = pick(row.MiddleName, existing.MiddleName)
	merged.LastName = row.LastName
	merged.BadgeNickname = pick(row.BadgeNickname, existing.BadgeNickname)
	merged.Suffix = pick(row.Suffix, existing.Suffix)
	merged.StreetAddress = pick(row.StreetAddress, existing.StreetAddress)
	merged.Address2 = pick(row.Address2, existing.Address2)
	merged.City = pick(row.City, existing.City)
	merged.State = pick(row.State, existing.State)
	merged.Zip = pick(row.Zip, existing.Zip)
	merged.Phone = pick(row.Phone, existing.Phone)
	merged.PhoneNormalized = importer.NormalizePhone(merged.Phone)
	if row.PhoneType != "" {
		merged.PhoneType = row.PhoneType
	}
	merged.Email = pick(row.Email, existing.Email)
	merged.MembershipType = row.MembershipType
	merged.MembershipExpiration = timeutil.Coalesce(row.MembershipExpiration, existing.MembershipExpiration)
	merged.AssociatePrimaryMember = pick(row.AssociatePrimaryMember, existing.AssociatePrimaryMember)
	merged.Gender = pick(row.Gender, existing.Gender)
	merged.Occupation = pick(row.Occupation, existing.Occupation)
	merged.Employer = pick(row.Employer, existing.Employer)
	merged.DateOfBirth = timeutil.Coalesce(row.DateOfBirth, existing.DateOfBirth)
	merged.Deceased = row.Deceased
	merged.ClubID = clubID
	return merged
}

// memberChanged compares every tracked field by exact equality, dates by
// instant. Zero differences means the row is Unchanged and no write happens.
func memberChanged(existing, merged roster.Member) bool {
	switch {
	case existing.ContactID != merged.ContactID,
		existing.Prefix != merged.Prefix,
		existing.FirstName != merged.FirstName,
		existing.MiddleName != merged.MiddleName,
		existing.LastName != merged.LastName,
		existing.BadgeNickname != merged.BadgeNickname,
		existing.Suffix != merged.Suffix,
		existing.StreetAddress != merged.StreetAddress,
		existing.Address2 != merged.Address2,
		existing.City != merged.City,
		existing.State != merged.State,
		existing.Zip != merged.Zip,
		existing.Phone != merged.Phone,
		existing.PhoneNormalized != merged.PhoneNormalized,
		existing.PhoneType != merged.PhoneType,
		existing.Email != merged.Email,
		existing.MembershipType != merged.MembershipType,
		existing.AssociatePrimaryMember != merged.AssociatePrimaryMember,
		existing.Gender != merged.Gender,
		existing.Occupation != merged.Occupation,
		existing.Employer != merged.Employer,
		existing.Deceased != merged.Deceased,
		existing.ClubID != merged.ClubID:
		return true
	case !timeutil.EqualInstant(existing.MembershipExpiration, merged.MembershipExpiration):
		return true
	case !timeutil.EqualInstant(existing.DateOfBirth, merged.DateOfBirth):
		return true
	default:
		return false
	}
}

func pick(incoming, existing string) string {
	if incoming != "" {
		return incoming
	}
	return existing
}
