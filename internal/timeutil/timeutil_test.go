package timeutil

import (
	"testing"
	"time"
)

func TestEqualInstant(t *testing.T) {
	utc := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
	local := utc.In(time.FixedZone("X", -6*3600))
	other := utc.Add(24 * time.Hour)

	tests := []struct {
		name string
		a, b *time.Time
		want bool
	}{
		{name: "both nil", a: nil, b: nil, want: true},
		{name: "one nil", a: &utc, b: nil, want: false},
		{name: "same instant different zones", a: &utc, b: &local, want: true},
		{name: "different instants", a: &utc, b: &other, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualInstant(tt.a, tt.b); got != tt.want {
				t.Fatalf("EqualInstant = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoalesce(t *testing.T) {
	a := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)

	if got := Coalesce(&a, &b); got != &a {
		t.Fatalf("expected preferred value")
	}
	if got := Coalesce(nil, &b); got != &b {
		t.Fatalf("expected fallback value")
	}
	if got := Coalesce(nil, nil); got != nil {
		t.Fatalf("expected nil for two absent values")
	}
}
