package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"clubroster/roster"
)

func (s *SQLiteStore) CreateImportJob(job *roster.ImportJob) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = roster.JobUploaded
	}
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	errorsJSON, err := marshalErrors(job.Errors)
	if err != nil {
		return err
	}

	const insertStmt = `
INSERT INTO import_jobs (id, filename, original_name, file_path, export_set_id, club_id, uploaded_by,
	status, records_processed, records_created, records_updated, records_skipped, errors,
	processing_notes, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	_, err = s.db.Exec(
		insertStmt,
		job.ID,
		job.Filename,
		job.OriginalName,
		job.FilePath,
		job.ExportSetID,
		job.ClubID,
		job.UploadedBy,
		string(job.Status),
		job.RecordsProcessed,
		job.RecordsCreated,
		job.RecordsUpdated,
		job.RecordsSkipped,
		errorsJSON,
		job.ProcessingNotes,
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("insert import job %q: %w", job.OriginalName, err)
	}
	return nil
}

const jobColumns = `id, filename, original_name, file_path, export_set_id, club_id, uploaded_by,
	status, records_processed, records_created, records_updated, records_skipped, errors,
	processing_notes, created_at, updated_at`

func (s *SQLiteStore) GetImportJob(id string) (roster.ImportJob, bool, error) {
	query := `SELECT ` + jobColumns + ` FROM import_jobs WHERE id = ?;`
	job, err := scanImportJob(s.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roster.ImportJob{}, false, nil
		}
		return roster.ImportJob{}, false, fmt.Errorf("query import job %s: %w", id, err)
	}
	return job, true, nil
}

// ListImportJobs returns jobs newest first.
func (s *SQLiteStore) ListImportJobs() ([]roster.ImportJob, error) {
	query := `SELECT ` + jobColumns + ` FROM import_jobs ORDER BY created_at DESC, rowid DESC;`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query import jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]roster.ImportJob, 0, 16)
	for rows.Next() {
		job, err := scanImportJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan import job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate import jobs: %w", err)
	}
	return jobs, nil
}

func (s *SQLiteStore) SetImportJobStatus(id string, status roster.JobStatus) error {
	res, err := s.db.Exec(
		`UPDATE import_jobs SET status = ?, updated_at = ? WHERE id = ?;`,
		string(status),
		formatTime(time.Now().UTC()),
		id,
	)
	if err != nil {
		return fmt.Errorf("update import job %s status: %w", id, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read updated row count: %w", err)
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// FinalizeImportJob writes the terminal status, the rollup counters, and the
// per-row error listing in one statement.
func (s *SQLiteStore) FinalizeImportJob(job *roster.ImportJob) error {
	errorsJSON, err := marshalErrors(job.Errors)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	job.UpdatedAt = now

	const updateStmt = `
UPDATE import_jobs
SET status = ?,
	records_processed = ?,
	records_created = ?,
	records_updated = ?,
	records_skipped = ?,
	errors = ?,
	processing_notes = ?,
	updated_at = ?
WHERE id = ?;`

	res, err := s.db.Exec(
		updateStmt,
		string(job.Status),
		job.RecordsProcessed,
		job.RecordsCreated,
		job.RecordsUpdated,
		job.RecordsSkipped,
		errorsJSON,
		job.ProcessingNotes,
		formatTime(now),
		job.ID,
	)
	if err != nil {
		return fmt.Errorf("finalize import job %s: %w", job.ID, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read updated row count: %w", err)
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (s *SQLiteStore) CreateImportRow(row *roster.ImportRow) error {
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	row.CreatedAt = now

	const insertStmt = `
INSERT INTO import_rows (id, job_id, row_id, club_id, member_id, result, exception, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	_, err := s.db.Exec(
		insertStmt,
		row.ID,
		row.JobID,
		row.RowID,
		row.ClubID,
		row.MemberID,
		string(row.Result),
		row.Exception,
		formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("insert import row for job %s: %w", row.JobID, err)
	}
	return nil
}

// ImportRowDetail is the audit view of one processed row, with club and
// member references resolved to display names.
type ImportRowDetail struct {
	roster.ImportRow
	ClubName   string
	MemberName string
}

// ListImportRowDetails returns the full audit trail for a job in processing
// order.
func (s *SQLiteStore) ListImportRowDetails(jobID string) ([]ImportRowDetail, error) {
	const query = `
SELECT r.id, r.job_id, r.row_id, r.club_id, r.member_id, r.result, r.exception, r.created_at,
	COALESCE(c.name, ''),
	COALESCE(TRIM(m.first_name || ' ' || m.last_name), '')
FROM import_rows r
LEFT JOIN clubs c ON c.id = r.club_id
LEFT JOIN members m ON m.id = r.member_id
WHERE r.job_id = ?
ORDER BY r.rowid;`

	rows, err := s.db.Query(query, jobID)
	if err != nil {
		return nil, fmt.Errorf("query import rows for job %s: %w", jobID, err)
	}
	defer rows.Close()

	details := make([]ImportRowDetail, 0, 64)
	for rows.Next() {
		var (
			detail     ImportRowDetail
			result     string
			createdRaw string
		)
		if err := rows.Scan(
			&detail.ID,
			&detail.JobID,
			&detail.RowID,
			&detail.ClubID,
			&detail.MemberID,
			&result,
			&detail.Exception,
			&createdRaw,
			&detail.ClubName,
			&detail.MemberName,
		); err != nil {
			return nil, fmt.Errorf("scan import row: %w", err)
		}
		detail.Result = roster.RowResult(result)
		detail.CreatedAt, err = parseTime(createdRaw)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate import rows: %w", err)
	}
	return details, nil
}

func scanImportJob(row rowScanner) (roster.ImportJob, error) {
	var (
		job        roster.ImportJob
		status     string
		errorsRaw  string
		createdRaw string
		updatedRaw string
	)
	if err := row.Scan(
		&job.ID,
		&job.Filename,
		&job.OriginalName,
		&job.FilePath,
		&job.ExportSetID,
		&job.ClubID,
		&job.UploadedBy,
		&status,
		&job.RecordsProcessed,
		&job.RecordsCreated,
		&job.RecordsUpdated,
		&job.RecordsSkipped,
		&errorsRaw,
		&job.ProcessingNotes,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return roster.ImportJob{}, err
	}
	job.Status = roster.JobStatus(status)

	if errorsRaw != "" {
		if err := json.Unmarshal([]byte(errorsRaw), &job.Errors); err != nil {
			return roster.ImportJob{}, fmt.Errorf("decode import job errors: %w", err)
		}
	}

	var err error
	job.CreatedAt, err = parseTime(createdRaw)
	if err != nil {
		return roster.ImportJob{}, err
	}
	job.UpdatedAt, err = parseTime(updatedRaw)
	if err != nil {
		return roster.ImportJob{}, err
	}
	return job, nil
}

func marshalErrors(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encode import job errors: %w", err)
	}
	return string(encoded), nil
}
