package roster

import (
	"strings"
	"time"
)

// MembershipType buckets the free-form type strings found in roster exports.
type MembershipType string

const (
	MembershipFull      MembershipType = "Full"
	MembershipAssociate MembershipType = "Associate"
	MembershipHonorary  MembershipType = "Honorary"
	MembershipInactive  MembershipType = "Inactive"
)

// ParseMembershipType buckets by case-insensitive substring; anything
// unrecognized counts as a Full membership.
func ParseMembershipType(raw string) MembershipType {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(value, "honor"):
		return MembershipHonorary
	case strings.Contains(value, "assoc"):
		return MembershipAssociate
	case strings.Contains(value, "inactive"):
		return MembershipInactive
	default:
		return MembershipFull
	}
}

type PhoneType string

const (
	PhoneCell PhoneType = "Cell"
	PhoneWork PhoneType = "Work"
	PhoneHome PhoneType = "Home"
)

// ParsePhoneType returns "" when the raw value matches no known bucket.
func ParsePhoneType(raw string) PhoneType {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case value == "":
		return ""
	case strings.Contains(value, "cell") || strings.Contains(value, "mobile"):
		return PhoneCell
	case strings.Contains(value, "work") || strings.Contains(value, "office"):
		return PhoneWork
	case strings.Contains(value, "home"):
		return PhoneHome
	default:
		return ""
	}
}

type ClubStatus string

const (
	ClubActive   ClubStatus = "Active"
	ClubInactive ClubStatus = "Inactive"
)

// JobStatus is the import job lifecycle:
// Uploaded -> Processing -> Completed | Failed.
type JobStatus string

const (
	JobUploaded   JobStatus = "Uploaded"
	JobProcessing JobStatus = "Processing"
	JobCompleted  JobStatus = "Completed"
	JobFailed     JobStatus = "Failed"
)

// RowResult classifies one processed spreadsheet row.
type RowResult string

const (
	RowCreated   RowResult = "Created"
	RowUpdated   RowResult = "Updated"
	RowUnchanged RowResult = "Unchanged"
	RowSkipped   RowResult = "Skipped"
)

// Club is resolved during import by its external charter number, which is
// distinct from the internal ID.
type Club struct {
	ID            string
	Name          string
	CharterNumber string
	State         string
	Location      string
	Status        ClubStatus
	MemberAdminID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Member belongs to exactly one club at a time; an import may reassign it.
// ContactID is the external identifier and is authoritative for matching
// when present.
type Member struct {
	ID                     string
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
	PhoneType              PhoneType
	Email                  string
	MembershipType         MembershipType
	MembershipExpiration   *time.Time
	AssociatePrimaryMember string
	Gender                 string
	Occupation             string
	Employer               string
	DateOfBirth            *time.Time
	Deceased               bool
	ClubID                 string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// FullName is the display form used in audit listings.
func (m Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// ImportJob tracks one uploaded roster file. ClubID is empty for
// system-wide imports that span multiple clubs.
type ImportJob struct {
	ID               string
	Filename         string
	OriginalName     string
	FilePath         string
	ExportSetID      string
	ClubID           string
	UploadedBy       string
	Status           JobStatus
	RecordsProcessed int
	RecordsCreated   int
	RecordsUpdated   int
	RecordsSkipped   int
	Errors           []string
	ProcessingNotes  string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ImportRow is the append-only audit record for one input row. Club and
// member references stay empty when the row was skipped before resolution.
type ImportRow struct {
	ID        string
	JobID     string
	RowID     string
	ClubID    string
	MemberID  string
	Result    RowResult
	Exception string
	CreatedAt time.Time
}
