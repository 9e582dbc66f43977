package storage

import "testing"

// TestLikePattern verifies user input cannot inject LIKE wildcards.
func TestLikePattern(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"gj", "%gj%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\x`, `%c:\\x%`},
	}
	for _, tt := range tests {
		if got := likePattern(tt.in); got != tt.want {
			t.Errorf("likePattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestExoplanetColumns verifies the column list matches the select prefix.
func TestExoplanetColumns(t *testing.T) {
	if len(exoplanetColumns) != 12 {
		t.Fatalf("len(exoplanetColumns) = %d, want 12", len(exoplanetColumns))
	}
	want := "SELECT pl_name, hostname, pl_rade, pl_bmasse, g_fraction, intensity_index, pl_orbper, pl_orbsmax, pl_eqt, st_teff, sy_dist, default_flag FROM exoplanets"
	if selectExoplanets != want {
		t.Errorf("selectExoplanets = %q", selectExoplanets)
	}
}
