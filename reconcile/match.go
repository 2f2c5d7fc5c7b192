package reconcile

import (
	"fmt"
	"strings"

	"clubroster/importer"
	"clubroster/roster"
)

// resolveClub finds the club by its external charter number, creating it
// when no club matches. Within one job this find-or-create is idempotent
// because rows run sequentially.
func resolveClub(store Store, row importer.Row) (roster.Club, error) {
	club, found, err := store.GetClubByCharterNumber(row.CharterNumber)
	if err != nil {
		return roster.Club{}, err
	}
	if found {
		return club, nil
	}

	name := row.ClubName
	if name == "" {
		name = fmt.Sprintf("Club %s", row.CharterNumber)
	}
	club = roster.Club{
		Name:          name,
		CharterNumber: row.CharterNumber,
		State:         row.ClubState,
		Location:      row.ClubState,
		Status:        roster.ClubActive,
	}
	if err := store.CreateClub(&club); err != nil {
		return roster.Club{}, err
	}
	return club, nil
}

// matchMember applies the tiered identity strategy:
//
//  1. external contact ID, system-wide — authoritative when it hits
//  2. exact first+last name within the club, correlated by email
//     (case-insensitive) or, failing that, by normalized phone digits
//
// Tier 2 takes the first qualifying candidate in retrieval order. Same name
// alone never matches; that keeps two different people who share a name in
// one club from being merged.
func matchMember(store Store, club roster.Club, row importer.Row) (roster.Member, bool, error) {
	if row.ContactID != "" {
		member, found, err := store.GetMemberByContactID(row.ContactID)
		if err != nil {
			return roster.Member{}, false, err
		}
		if found {
			return member, true, nil
		}
	}

	candidates, err := store.FindMembersByNameAndClub(row.FirstName, row.LastName, club.ID)
	if err != nil {
		return roster.Member{}, false, err
	}
	for _, candidate := range candidates {
		if row.Email != "" && candidate.Email != "" && strings.EqualFold(candidate.Email, row.Email) {
			return candidate, true, nil
		}
		if row.PhoneNormalized != "" && candidate.PhoneNormalized != "" && candidate.PhoneNormalized == row.PhoneNormalized {
			return candidate, true, nil
		}
	}

	return roster.Member{}, false, nil
}
