package services

import "testing"

func TestNormalizeStationName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Shell Gas Station", "gasstation"},
		{"Shell Gas Station #123", "gasstation"},
		{"  Chevron   Extra  Mile ", "extramile"},
		{"7-Eleven #40112", ""},
		{"Joe's Corner Store", "joescornerstore"},
		{"WAWA 8021", "8021"},
	}

	for _, tc := range cases {
		if got := normalizeStationName(tc.in); got != tc.want {
			t.Fatalf("normalizeStationName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNameSimilarity(t *testing.T) {
	if got := nameSimilarity("gasstation", "gasstation"); got != 1.0 {
		t.Fatalf("identical names should score 1.0, got %v", got)
	}

	if got := nameSimilarity("gasstation", "gas"); got != 0.9 {
		t.Fatalf("substring containment should score 0.9, got %v", got)
	}

	// One edit over an 8-rune name: 1 - 1/8.
	if got := nameSimilarity("kwiktrip", "kwiktrap"); got != 0.875 {
		t.Fatalf("expected edit-distance score 0.875, got %v", got)
	}

	if got := nameSimilarity("", ""); got != 1.0 {
		t.Fatalf("two empty names should score 1.0, got %v", got)
	}

	// An empty name is contained in anything, so it still scores 0.9.
	if got := nameSimilarity("abc", ""); got != 0.9 {
		t.Fatalf("empty vs non-empty should hit containment, got %v", got)
	}
}
