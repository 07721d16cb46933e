package buildinfo

import "testing"

func TestShortAndLong(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)

	cases := []struct {
		version, commit, date string
		short, long           string
	}{
		{"dev", "unknown", "unknown", "dev", "dev"},
		{"dev", "abc123", "unknown", "abc123", "abc123"},
		{"v1.0.0", "abc123", "2026-01-02", "v1.0.0", "v1.0.0 abc123 (2026-01-02)"},
	}
	for _, tc := range cases {
		Version, Commit, Date = tc.version, tc.commit, tc.date
		if got := Short(); got != tc.short {
			t.Fatalf("Short()=%q, want %q", got, tc.short)
		}
		if got := Long(); got != tc.long {
			t.Fatalf("Long()=%q, want %q", got, tc.long)
		}
	}
}
