package reconcile

import (
	"clubroster/importer"
	"clubroster/roster"
)

// Exception texts for structural skips. These are part of the audit
// contract; re-imports of a corrected file rely on the exact wording.
const (
	exceptionMissingCharter = "Missing CharterNumber"
	exceptionMissingName    = "Missing required firstName/lastName"
)

// RowOutcome is the value a single row reduces to. Errors during resolution
// or persistence are absorbed here as Skipped outcomes so one bad row never
// aborts the job.
type RowOutcome struct {
	RowID     string
	ClubID    string
	MemberID  string
	Result    roster.RowResult
	Exception string
}

func skippedOutcome(outcome RowOutcome, exception string) RowOutcome {
	outcome.Result = roster.RowSkipped
	outcome.Exception = exception
	return outcome
}

func processRow(store Store, record importer.Record) RowOutcome {
	row := importer.Normalize(importer.Extract(record))
	outcome := RowOutcome{RowID: row.RowID}

	if row.CharterNumber == "" {
		return skippedOutcome(outcome, exceptionMissingCharter)
	}

	club, err := resolveClub(store, row)
	if err != nil {
		return skippedOutcome(outcome, err.Error())
	}
	outcome.ClubID = club.ID

	if row.FirstName == "" || row.LastName == "" {
		return skippedOutcome(outcome, exceptionMissingName)
	}

	existing, found, err := matchMember(store, club, row)
	if err != nil {
		return skippedOutcome(outcome, err.Error())
	}

	if !found {
		member := newMember(row, club.ID)
		if err := store.CreateMember(&member); err != nil {
			return skippedOutcome(outcome, err.Error())
		}
		outcome.MemberID = member.ID
		outcome.Result = roster.RowCreated
		outcome.Exception = row.Exception
		return outcome
	}

	outcome.MemberID = existing.ID
	merged := mergeMember(existing, row, club.ID)
	if !memberChanged(existing, merged) {
		outcome.Result = roster.RowUnchanged
		outcome.Exception = row.Exception
		return outcome
	}

	if err := store.UpdateMember(&merged); err != nil {
		return skippedOutcome(outcome, err.Error())
	}
	outcome.Result = roster.RowUpdated
	outcome.Exception = row.Exception
	return outcome
}
