// Package reconcile drives the roster import pipeline: resolve the club for
// each spreadsheet row, match or create the member, detect field-level
// changes, and append one audit row per input row.
package reconcile

import (
	"fmt"

	"clubroster/importer"
	"clubroster/roster"
)

// Store is the persistence surface the pipeline needs. *storage.SQLiteStore
// satisfies it; tests substitute failing fakes for the error paths.
type Store interface {
	GetImportJob(id string) (roster.ImportJob, bool, error)
	SetImportJobStatus(id string, status roster.JobStatus) error
	FinalizeImportJob(job *roster.ImportJob) error
	CreateImportRow(row *roster.ImportRow) error

	GetClubByCharterNumber(charterNumber string) (roster.Club, bool, error)
	CreateClub(club *roster.Club) error

	GetMemberByContactID(contactID string) (roster.Member, bool, error)
	FindMembersByNameAndClub(firstName, lastName, clubID string) ([]roster.Member, error)
	CreateMember(member *roster.Member) error
	UpdateMember(member *roster.Member) error
}

// Result aggregates the per-row outcomes of one pipeline run.
type Result struct {
	Processed int
	Created   int
	Updated   int
	Unchanged int
	Skipped   int
	Errors    []string
}

// RunFile flips the job to Processing, reads the spreadsheet, and runs the
// row pipeline. A file that cannot be read or parsed fails the whole job;
// individual bad rows do not.
func RunFile(store Store, jobID, path string) (*Result, error) {
	if err := store.SetImportJobStatus(jobID, roster.JobProcessing); err != nil {
		return nil, err
	}

	reader, err := importer.ReaderForPath(path)
	if err != nil {
		failJob(store, jobID, err)
		return nil, err
	}

	records, err := reader.Read(path)
	if err != nil {
		failJob(store, jobID, err)
		return nil, err
	}

	return runRecords(store, jobID, records)
}

// Run processes an already-parsed sequence of records for the given job.
func Run(store Store, jobID string, records []importer.Record) (*Result, error) {
	if err := store.SetImportJobStatus(jobID, roster.JobProcessing); err != nil {
		return nil, err
	}
	return runRecords(store, jobID, records)
}

// runRecords walks the rows strictly in spreadsheet order: a club created by
// an earlier row must be visible to later rows of the same job.
func runRecords(store Store, jobID string, records []importer.Record) (*Result, error) {
	result := &Result{Errors: []string{}}

	for _, record := range records {
		outcome := processRow(store, record)

		result.Processed++
		switch outcome.Result {
		case roster.RowCreated:
			result.Created++
		case roster.RowUpdated:
			result.Updated++
		case roster.RowUnchanged:
			result.Unchanged++
		case roster.RowSkipped:
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", record.RowNumber, outcome.Exception))
		}

		auditRow := roster.ImportRow{
			JobID:     jobID,
			RowID:     outcome.RowID,
			ClubID:    outcome.ClubID,
			MemberID:  outcome.MemberID,
			Result:    outcome.Result,
			Exception: outcome.Exception,
		}
		if err := store.CreateImportRow(&auditRow); err != nil {
			err = fmt.Errorf("record audit row %d: %w", record.RowNumber, err)
			failJob(store, jobID, err)
			return nil, err
		}
	}

	job, ok, err := store.GetImportJob(jobID)
	if err != nil {
		failJob(store, jobID, err)
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("import job %s not found", jobID)
	}

	job.Status = roster.JobCompleted
	job.RecordsProcessed = result.Processed
	job.RecordsCreated = result.Created
	job.RecordsUpdated = result.Updated
	job.RecordsSkipped = result.Skipped
	job.Errors = result.Errors
	if err := store.FinalizeImportJob(&job); err != nil {
		return nil, err
	}

	return result, nil
}

// failJob records a top-level failure on the job. Best effort: the original
// error is what callers see, not a secondary status-write failure.
func failJob(store Store, jobID string, cause error) {
	job, ok, err := store.GetImportJob(jobID)
	if err != nil || !ok {
		return
	}
	job.Status = roster.JobFailed
	job.Errors = []string{cause.Error()}
	_ = store.FinalizeImportJob(&job)
}
