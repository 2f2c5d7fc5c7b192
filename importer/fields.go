package importer

// Column header variants accepted per logical field. Order matters (first
// match wins) and matching is case-sensitive; these lists mirror the
// federation roster export contract and must not be reordered casually.
var (
	rowIDVariants            = []string{"RowID", "Row ID", "rowId", "ID"}
	charterNumberVariants    = []string{"CharterNumber", "Charter Number", "charterNumber"}
	clubNameVariants         = []string{"ClubName", "Club Name", "clubName"}
	clubStateVariants        = []string{"ClubState", "Club State", "State", "clubState"}
	contactIDVariants        = []string{"NFRWContact", "NFRW Contact", "nfrwContact"}
	prefixVariants           = []string{"Prefix", "prefix"}
	firstNameVariants        = []string{"FirstName", "First Name", "firstName"}
	middleNameVariants       = []string{"MiddleName", "Middle Name", "middleName"}
	lastNameVariants         = []string{"LastName", "Last Name", "lastName"}
	badgeNicknameVariants    = []string{"BadgeNickName", "Badge Nickname", "badgeNickname"}
	suffixVariants           = []string{"Suffix", "suffix"}
	streetAddressVariants    = []string{"Address_Line_1", "Address Line 1", "Address1", "streetAddress"}
	address2Variants         = []string{"Address_Line_2", "Address Line 2", "Address2", "address2"}
	cityVariants             = []string{"City", "city"}
	stateVariants            = []string{"State", "state"}
	zipVariants              = []string{"Zip", "ZipCode", "zip"}
	phoneVariants            = []string{"PrimaryPhone", "Primary Phone", "Phone", "phone"}
	phoneTypeVariants        = []string{"PhoneType", "Phone Type", "phoneType"}
	emailVariants            = []string{"Email", "email"}
	expirationVariants       = []string{"MemberExpirationDate", "Member Expiration Date", "Expiration", "membershipExpiration"}
	membershipTypeVariants   = []string{"MembershipType", "Membership Type", "membershipType"}
	associatePrimaryVariants = []string{"Associate_PrimaryMbrInfo", "Associate Primary Member", "associatePrimary"}
	genderVariants           = []string{"Gender", "gender"}
	occupationVariants       = []string{"Occupation", "occupation"}
	employerVariants         = []string{"Employer", "employer"}
	dateOfBirthVariants      = []string{"DateOfBirth", "Date Of Birth", "DOB", "dateOfBirth"}
	deceasedVariants         = []string{"Deceased?", "Deceased", "deceased"}
	exceptionVariants        = []string{"Exception", "exception"}
	exportSetIDVariants      = []string{"ExportSetID", "ExportSetId", "exportSetId", "exportSetID", "Export Set ID", "ExportSet"}
)

// RawRow holds the extracted-but-unnormalized string values for one row.
type RawRow struct {
	RowID                  string
	CharterNumber          string
	ClubName               string
	ClubState              string
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
	PhoneType              string
	Email                  string
	MembershipExpiration   string
	MembershipType         string
	AssociatePrimaryMember string
	Gender                 string
	Occupation             string
	Employer               string
	DateOfBirth            string
	Deceased               string
	Exception              string
}

// Extract pulls every known field out of a record. Pure; missing columns
// simply yield empty strings.
func Extract(record Record) RawRow {
	return RawRow{
		RowID:                  record.Get(rowIDVariants...),
		CharterNumber:          record.Get(charterNumberVariants...),
		ClubName:               record.Get(clubNameVariants...),
		ClubState:              record.Get(clubStateVariants...),
		ContactID:              record.Get(contactIDVariants...),
		Prefix:                 record.Get(prefixVariants...),
		FirstName:              record.Get(firstNameVariants...),
		MiddleName:             record.Get(middleNameVariants...),
		LastName:               record.Get(lastNameVariants...),
		BadgeNickname:          record.Get(badgeNicknameVariants...),
		Suffix:                 record.Get(suffixVariants...),
		StreetAddress:          record.Get(streetAddressVariants...),
		Address2:               record.Get(address2Variants...),
		City:                   record.Get(cityVariants...),
		State:                  record.Get(stateVariants...),
		Zip:                    record.Get(zipVariants...),
		Phone:                  record.Get(phoneVariants...),
		PhoneType:              record.Get(phoneTypeVariants...),
		Email:                  record.Get(emailVariants...),
		MembershipExpiration:   record.Get(expirationVariants...),
		MembershipType:         record.Get(membershipTypeVariants...),
		AssociatePrimaryMember: record.Get(associatePrimaryVariants...),
		Gender:                 record.Get(genderVariants...),
		Occupation:             record.Get(occupationVariants...),
		Employer:               record.Get(employerVariants...),
		DateOfBirth:            record.Get(dateOfBirthVariants...),
		Deceased:               record.Get(deceasedVariants...),
		Exception:              record.Get(exceptionVariants...),
	}
}

// SniffExportSetID reads the export set identifier from the first data row,
// if the source carried one.
func SniffExportSetID(records []Record) string {
	if len(records) == 0 {
		return ""
	}
	return records[0].Get(exportSetIDVariants...)
}
