package importer

import "testing"

func TestRecordGet_FirstVariantWins(t *testing.T) {
	record := Record{Values: map[string]string{
		"FirstName":  "Jane",
		"First Name": "Janet",
	}}

	if got := record.Get("FirstName", "First Name", "firstName"); got != "Jane" {
		t.Fatalf("expected first variant to win, got %q", got)
	}
}

func TestRecordGet_SkipsEmptyValues(t *testing.T) {
	record := Record{Values: map[string]string{
		"FirstName":  "   ",
		"First Name": "Janet",
	}}

	if got := record.Get("FirstName", "First Name"); got != "Janet" {
		t.Fatalf("expected blank cell to be skipped, got %q", got)
	}
}

func TestRecordGet_CaseSensitive(t *testing.T) {
	record := Record{Values: map[string]string{
		"firstname": "jane",
	}}

	if got := record.Get("FirstName", "First Name", "firstName"); got != "" {
		t.Fatalf("expected no match for differently-cased header, got %q", got)
	}
}

func TestRecordGet_TrimsValue(t *testing.T) {
	record := Record{Values: map[string]string{
		"Email": "  jane@example.org  ",
	}}

	if got := record.Get("Email", "email"); got != "jane@example.org" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestRecordGet_MissingColumns(t *testing.T) {
	record := Record{Values: map[string]string{}}

	if got := record.Get("CharterNumber", "Charter Number", "charterNumber"); got != "" {
		t.Fatalf("expected empty result for missing columns, got %q", got)
	}
}
