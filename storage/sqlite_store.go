package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"clubroster/roster"
)

type SQLiteStore struct {
	db *sql.DB
}

var (
	ErrClubNotFound   = errors.New("club not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrJobNotFound    = errors.New("import job not found")
)

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS clubs (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	charter_number TEXT NOT NULL UNIQUE,
	state TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'Active',
	member_admin_id TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS members (
	id TEXT PRIMARY KEY,
	contact_id TEXT NOT NULL DEFAULT '',
	prefix TEXT NOT NULL DEFAULT '',
	first_name TEXT NOT NULL,
	middle_name TEXT NOT NULL DEFAULT '',
	last_name TEXT NOT NULL,
	badge_nickname TEXT NOT NULL DEFAULT '',
	suffix TEXT NOT NULL DEFAULT '',
	street_address TEXT NOT NULL DEFAULT '',
	address2 TEXT NOT NULL DEFAULT '',
	city TEXT NOT NULL DEFAULT '',
	state TEXT NOT NULL DEFAULT '',
	zip TEXT NOT NULL DEFAULT '',
	phone TEXT NOT NULL DEFAULT '',
	phone_normalized TEXT NOT NULL DEFAULT '',
	phone_type TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	membership_type TEXT NOT NULL DEFAULT 'Full',
	membership_expiration TEXT,
	associate_primary_member TEXT NOT NULL DEFAULT '',
	gender TEXT NOT NULL DEFAULT '',
	occupation TEXT NOT NULL DEFAULT '',
	employer TEXT NOT NULL DEFAULT '',
	date_of_birth TEXT,
	deceased INTEGER NOT NULL DEFAULT 0,
	club_id TEXT NOT NULL REFERENCES clubs(id),
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_members_contact_id ON members(contact_id);
CREATE INDEX IF NOT EXISTS idx_members_name_club ON members(first_name, last_name, club_id);

CREATE TABLE IF NOT EXISTS import_jobs (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	original_name TEXT NOT NULL,
	file_path TEXT NOT NULL,
	export_set_id TEXT NOT NULL DEFAULT '',
	club_id TEXT NOT NULL DEFAULT '',
	uploaded_by TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'Uploaded',
	records_processed INTEGER NOT NULL DEFAULT 0,
	records_created INTEGER NOT NULL DEFAULT 0,
	records_updated INTEGER NOT NULL DEFAULT 0,
	records_skipped INTEGER NOT NULL DEFAULT 0,
	errors TEXT NOT NULL DEFAULT '[]',
	processing_notes TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS import_rows (
	id TEXT PRIMARY KEY,
	job_id TEXT NOT NULL REFERENCES import_jobs(id),
	row_id TEXT NOT NULL DEFAULT '',
	club_id TEXT NOT NULL DEFAULT '',
	member_id TEXT NOT NULL DEFAULT '',
	result TEXT NOT NULL,
	exception TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_import_rows_job_id ON import_rows(job_id);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) CreateClub(club *roster.Club) error {
	if club.ID == "" {
		club.ID = uuid.NewString()
	}
	if club.Status == "" {
		club.Status = roster.ClubActive
	}
	now := time.Now().UTC()
	club.CreatedAt = now
	club.UpdatedAt = now

	const insertStmt = `
INSERT INTO clubs (id, name, charter_number, state, location, status, member_admin_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`

	_, err := s.db.Exec(
		insertStmt,
		club.ID,
		club.Name,
		club.CharterNumber,
		club.State,
		club.Location,
		string(club.Status),
		club.MemberAdminID,
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("insert club %q: %w", club.CharterNumber, err)
	}
	return nil
}

const clubColumns = `id, name, charter_number, state, location, status, member_admin_id, created_at, updated_at`

// GetClubByCharterNumber does an exact, case-sensitive lookup on the
// external charter number.
func (s *SQLiteStore) GetClubByCharterNumber(charterNumber string) (roster.Club, bool, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE charter_number = ?;`
	club, err := scanClub(s.db.QueryRow(query, charterNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roster.Club{}, false, nil
		}
		return roster.Club{}, false, fmt.Errorf("query club by charter number %q: %w", charterNumber, err)
	}
	return club, true, nil
}

func (s *SQLiteStore) GetClub(id string) (roster.Club, bool, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE id = ?;`
	club, err := scanClub(s.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roster.Club{}, false, nil
		}
		return roster.Club{}, false, fmt.Errorf("query club %s: %w", id, err)
	}
	return club, true, nil
}

func (s *SQLiteStore) ListClubs() ([]roster.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs ORDER BY rowid;`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query clubs: %w", err)
	}
	defer rows.Close()

	clubs := make([]roster.Club, 0, 16)
	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			return nil, fmt.Errorf("scan club: %w", err)
		}
		clubs = append(clubs, club)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clubs: %w", err)
	}
	return clubs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClub(row rowScanner) (roster.Club, error) {
	var (
		club       roster.Club
		status     string
		createdRaw string
		updatedRaw string
	)
	if err := row.Scan(
		&club.ID,
		&club.Name,
		&club.CharterNumber,
		&club.State,
		&club.Location,
		&status,
		&club.MemberAdminID,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return roster.Club{}, err
	}
	club.Status = roster.ClubStatus(status)

	var err error
	club.CreatedAt, err = parseTime(createdRaw)
	if err != nil {
		return roster.Club{}, err
	}
	club.UpdatedAt, err = parseTime(updatedRaw)
	if err != nil {
		return roster.Club{}, err
	}
	return club, nil
}

const memberColumns = `id, contact_id, prefix, first_name, middle_name, last_name, badge_nickname, suffix,
	street_address, address2, city, state, zip, phone, phone_normalized, phone_type, email,
	membership_type, membership_expiration, associate_primary_member, gender, occupation, employer,
	date_of_birth, deceased, club_id, created_at, updated_at`

func (s *SQLiteStore) CreateMember(member *roster.Member) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	if member.MembershipType == "" {
		member.MembershipType = roster.MembershipFull
	}
	now := time.Now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now

	const insertStmt = `
INSERT INTO members (id, contact_id, prefix, first_name, middle_name, last_name, badge_nickname, suffix,
	street_address, address2, city, state, zip, phone, phone_normalized, phone_type, email,
	membership_type, membership_expiration, associate_primary_member, gender, occupation, employer,
	date_of_birth, deceased, club_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	_, err := s.db.Exec(
		insertStmt,
		member.ID,
		member.ContactID,
		member.Prefix,
		member.FirstName,
		member.MiddleName,
		member.LastName,
		member.BadgeNickname,
		member.Suffix,
		member.StreetAddress,
		member.Address2,
		member.City,
		member.State,
		member.Zip,
		member.Phone,
		member.PhoneNormalized,
		string(member.PhoneType),
		member.Email,
		string(member.MembershipType),
		formatTimePtr(member.MembershipExpiration),
		member.AssociatePrimaryMember,
		member.Gender,
		member.Occupation,
		member.Employer,
		formatTimePtr(member.DateOfBirth),
		boolToInt(member.Deceased),
		member.ClubID,
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("insert member %s %s: %w", member.FirstName, member.LastName, err)
	}
	return nil
}

// UpdateMember replaces every imported field for the member with the given ID.
func (s *SQLiteStore) UpdateMember(member *roster.Member) error {
	if member.ID == "" {
		return fmt.Errorf("member id is required")
	}
	now := time.Now().UTC()
	member.UpdatedAt = now

	const updateStmt = `
UPDATE members
SET contact_id = ?,
	prefix = ?,
	first_name = ?,
	middle_name = ?,
	last_name = ?,
	badge_nickname = ?,
	suffix = ?,
	street_address = ?,
	address2 = ?,
	city = ?,
	state = ?,
	zip = ?,
	phone = ?,
	phone_normalized = ?,
	phone_type = ?,
	email = ?,
	membership_type = ?,
	membership_expiration = ?,
	associate_primary_member = ?,
	gender = ?,
	occupation = ?,
	employer = ?,
	date_of_birth = ?,
	deceased = ?,
	club_id = ?,
	updated_at = ?
WHERE id = ?;`

	res, err := s.db.Exec(
		updateStmt,
		member.ContactID,
		member.Prefix,
		member.FirstName,
		member.MiddleName,
		member.LastName,
		member.BadgeNickname,
		member.Suffix,
		member.StreetAddress,
		member.Address2,
		member.City,
		member.State,
		member.Zip,
		member.Phone,
		member.PhoneNormalized,
		string(member.PhoneType),
		member.Email,
		string(member.MembershipType),
		formatTimePtr(member.MembershipExpiration),
		member.AssociatePrimaryMember,
		member.Gender,
		member.Occupation,
		member.Employer,
		formatTimePtr(member.DateOfBirth),
		boolToInt(member.Deceased),
		member.ClubID,
		formatTime(now),
		member.ID,
	)
	if err != nil {
		return fmt.Errorf("update member %s: %w", member.ID, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read updated row count: %w", err)
	}
	if rowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (s *SQLiteStore) GetMember(id string) (roster.Member, bool, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = ?;`
	member, err := scanMember(s.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roster.Member{}, false, nil
		}
		return roster.Member{}, false, fmt.Errorf("query member %s: %w", id, err)
	}
	return member, true, nil
}

// GetMemberByContactID looks up a member by external contact ID anywhere in
// the system, not scoped to a club.
func (s *SQLiteStore) GetMemberByContactID(contactID string) (roster.Member, bool, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE contact_id = ? ORDER BY rowid LIMIT 1;`
	member, err := scanMember(s.db.QueryRow(query, contactID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roster.Member{}, false, nil
		}
		return roster.Member{}, false, fmt.Errorf("query member by contact id %q: %w", contactID, err)
	}
	return member, true, nil
}

// FindMembersByNameAndClub returns candidates in insertion order, which the
// matcher treats as the natural retrieval order.
func (s *SQLiteStore) FindMembersByNameAndClub(firstName, lastName, clubID string) ([]roster.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members
WHERE first_name = ? AND last_name = ? AND club_id = ?
ORDER BY rowid;`

	rows, err := s.db.Query(query, firstName, lastName, clubID)
	if err != nil {
		return nil, fmt.Errorf("query members by name and club: %w", err)
	}
	defer rows.Close()

	members := make([]roster.Member, 0, 4)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return members, nil
}

func (s *SQLiteStore) CountMembers() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM members;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return count, nil
}

func scanMember(row rowScanner) (roster.Member, error) {
	var (
		member         roster.Member
		phoneType      string
		membershipType string
		expirationRaw  sql.NullString
		birthRaw       sql.NullString
		deceased       int
		createdRaw     string
		updatedRaw     string
	)
	if err := row.Scan(
		&member.ID,
		&member.ContactID,
		&member.Prefix,
		&member.FirstName,
		&member.MiddleName,
		&member.LastName,
		&member.BadgeNickname,
		&member.Suffix,
		&member.StreetAddress,
		&member.Address2,
		&member.City,
		&member.State,
		&member.Zip,
		&member.Phone,
		&member.PhoneNormalized,
		&phoneType,
		&member.Email,
		&membershipType,
		&expirationRaw,
		&member.AssociatePrimaryMember,
		&member.Gender,
		&member.Occupation,
		&member.Employer,
		&birthRaw,
		&deceased,
		&member.ClubID,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return roster.Member{}, err
	}

	member.PhoneType = roster.PhoneType(phoneType)
	member.MembershipType = roster.MembershipType(membershipType)
	member.Deceased = deceased != 0

	var err error
	member.MembershipExpiration, err = parseTimePtr(expirationRaw)
	if err != nil {
		return roster.Member{}, err
	}
	member.DateOfBirth, err = parseTimePtr(birthRaw)
	if err != nil {
		return roster.Member{}, err
	}
	member.CreatedAt, err = parseTime(createdRaw)
	if err != nil {
		return roster.Member{}, err
	}
	member.UpdatedAt, err = parseTime(updatedRaw)
	if err != nil {
		return roster.Member{}, err
	}
	return member, nil
}

func formatTime(value time.Time) string {
	return value.Format(time.RFC3339)
}

func formatTimePtr(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC().Format(time.RFC3339)
}

func parseTime(raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored timestamp %q: %w", raw, err)
	}
	return parsed, nil
}

func parseTimePtr(raw sql.NullString) (*time.Time, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	parsed, err := parseTime(raw.String)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
