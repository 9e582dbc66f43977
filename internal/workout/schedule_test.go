package workout

import (
	"reflect"
	"testing"
)

// TestDurationMinutes verifies the intensity-linear session length.
func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{1, 38}, {2, 40}, {3, 41}, {5, 45}, {8, 50}, {10, 54},
	}
	for _, tt := range tests {
		if got := DurationMinutes(tt.index); got != tt.want {
			t.Errorf("DurationMinutes(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

// TestSafetyNotes verifies the band table and that callers get a copy.
func TestSafetyNotes(t *testing.T) {
	tests := []struct {
		fraction float64
		want     int
		first    string
	}{
		{0.3, 2, "Low gravity: Focus on resistance training to maintain bone density"},
		{0.5, 2, "Low gravity: Focus on resistance training to maintain bone density"},
		{1.0, 0, ""},
		{1.5, 0, ""},
		{2.0, 3, "High gravity: Reduce impact exercises to prevent injury"},
	}
	for _, tt := range tests {
		got := SafetyNotes(tt.fraction)
		if got == nil {
			t.Fatalf("SafetyNotes(%v) = nil", tt.fraction)
		}
		if len(got) != tt.want {
			t.Fatalf("SafetyNotes(%v) len = %d, want %d", tt.fraction, len(got), tt.want)
		}
		if tt.want > 0 && got[0] != tt.first {
			t.Errorf("SafetyNotes(%v)[0] = %q, want %q", tt.fraction, got[0], tt.first)
		}
	}

	notes := SafetyNotes(2.0)
	notes[0] = "changed"
	if SafetyNotes(2.0)[0] == "changed" {
		t.Error("SafetyNotes returned shared storage")
	}
}

// TestComposeSession verifies a session at double gravity.
func TestComposeSession(t *testing.T) {
	s := ComposeSession("Heavy", 2.0, 8, DefaultLibrary())
	if s.DurationMinutes != 50 {
		t.Errorf("DurationMinutes = %d, want 50", s.DurationMinutes)
	}
	if len(s.Exercises) != 6 {
		t.Fatalf("len(Exercises) = %d, want 6", len(s.Exercises))
	}
	if s.Exercises[0].Name != "Squats" || s.Exercises[5].Name != "Yoga Flow" {
		t.Error("exercises not in library order")
	}
	if len(s.SafetyNotes) != 3 {
		t.Errorf("len(SafetyNotes) = %d, want 3", len(s.SafetyNotes))
	}
}

// TestDeviceSetPoints verifies only strength exercises produce set-points.
func TestDeviceSetPoints(t *testing.T) {
	points := DeviceSetPoints(ComposeSession("Heavy", 2.0, 8, DefaultLibrary()))
	want := []string{"Squats", "Push-ups", "Deadlifts", "Resistance Band"}
	if len(points) != len(want) {
		t.Fatalf("len = %d, want %d", len(points), len(want))
	}
	for i, name := range want {
		if points[i].Exercise != name {
			t.Errorf("points[%d] = %q, want %q", i, points[i].Exercise, name)
		}
	}
	if points[0].SetPoint != 108 || points[0].BaseLoad != 60 || points[0].ScaledLoad != 108 {
		t.Errorf("Squats set-point = %+v", points[0])
	}
}

// TestIntensityNotes verifies the tier-driven advisories.
func TestIntensityNotes(t *testing.T) {
	if got := IntensityNotes(9); len(got) != 1 || got[0] != "High intensity: Ensure proper warm-up and cool-down" {
		t.Errorf("IntensityNotes(9) = %v", got)
	}
	if got := IntensityNotes(2); len(got) != 1 || got[0] != "Low intensity: Focus on form and technique" {
		t.Errorf("IntensityNotes(2) = %v", got)
	}
	if got := IntensityNotes(5); got == nil || len(got) != 0 {
		t.Errorf("IntensityNotes(5) = %v, want empty", got)
	}
}

// TestComposeWeek verifies themes, labels, volume and recovery guidance.
func TestComposeWeek(t *testing.T) {
	week := ComposeWeek("Kepler-452b", 2.0, 8, DefaultLibrary())

	if len(week.Sessions) != 7 {
		t.Fatalf("len(Sessions) = %d, want 7", len(week.Sessions))
	}
	sum := 0
	for i, s := range week.Sessions {
		sum += s.DurationMinutes
		if s.Day != i+1 {
			t.Errorf("session %d Day = %d", i, s.Day)
		}
		if s.Theme != WeeklyThemes()[i] {
			t.Errorf("session %d Theme = %q", i, s.Theme)
		}
	}
	if week.Sessions[0].PlanetLabel != "Kepler-452b - Day 1 (Full Body Strength)" {
		t.Errorf("label = %q", week.Sessions[0].PlanetLabel)
	}
	if week.Sessions[6].PlanetLabel != "Kepler-452b - Day 7 (Flexibility & Recovery)" {
		t.Errorf("label = %q", week.Sessions[6].PlanetLabel)
	}
	if week.TotalWeeklyVolume != sum || sum != 350 {
		t.Errorf("TotalWeeklyVolume = %d, sum = %d, want 350", week.TotalWeeklyVolume, sum)
	}

	want := []string{
		"Total weekly volume: 350 minutes",
		"Extra sleep recommended due to high gravity stress",
		"Hydration needs may vary based on planetary conditions",
		"Monitor for unusual fatigue patterns in altered gravity",
	}
	if !reflect.DeepEqual(week.RecoveryRecommendations, want) {
		t.Errorf("RecoveryRecommendations = %v, want %v", week.RecoveryRecommendations, want)
	}
}

// TestComposeWeekStandardRecovery verifies the sleep threshold is exclusive.
func TestComposeWeekStandardRecovery(t *testing.T) {
	week := ComposeWeek("Earth", 1.2, 5, DefaultLibrary())
	if week.RecoveryRecommendations[1] != "Standard recovery protocols apply" {
		t.Errorf("recommendation = %q", week.RecoveryRecommendations[1])
	}
	if week.TotalWeeklyVolume != 315 {
		t.Errorf("TotalWeeklyVolume = %d, want 315", week.TotalWeeklyVolume)
	}
}

// TestSchedulerVariants verifies a theme variant replaces that day's session
// and the weekly volume follows it.
func TestSchedulerVariants(t *testing.T) {
	sched := Scheduler{Variants: map[Theme]Variant{
		ThemeRecovery: func(s Session) Session {
			s.DurationMinutes = 20
			return s
		},
	}}
	week := sched.Compose("Earth", 1.0, 5, DefaultLibrary())
	if week.Sessions[3].DurationMinutes != 20 {
		t.Errorf("recovery day = %d min, want 20", week.Sessions[3].DurationMinutes)
	}
	if week.TotalWeeklyVolume != 6*45+20 {
		t.Errorf("TotalWeeklyVolume = %d, want %d", week.TotalWeeklyVolume, 6*45+20)
	}
}

// TestComposeWeekDeterministic verifies identical inputs give identical output.
func TestComposeWeekDeterministic(t *testing.T) {
	a := ComposeWeek("TRAPPIST-1e", 0.93, 5, DefaultLibrary())
	b := ComposeWeek("TRAPPIST-1e", 0.93, 5, DefaultLibrary())
	if !reflect.DeepEqual(a, b) {
		t.Error("ComposeWeek is not deterministic")
	}
}
