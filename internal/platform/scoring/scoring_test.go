package scoring

import "testing"

func TestGradeFirstMatchWins(t *testing.T) {
	bands := []Band{{Above: 140, Points: 3}, {Above: 100, Points: 1}}

	cases := []struct {
		value float64
		want  int
	}{
		{200, 3},
		{141, 3},
		{140, 1}, // strictly greater-than
		{101, 1},
		{100, 0},
		{0, 0},
	}
	for _, tc := range cases {
		if got := Grade(tc.value, bands); got != tc.want {
			t.Errorf("Grade(%v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestGradeBelow(t *testing.T) {
	bands := []BandBelow{{Below: 90, Points: 4}, {Below: 95, Points: 3}, {Below: 98, Points: 1}}

	cases := []struct {
		value float64
		want  int
	}{
		{85, 4},
		{90, 3},
		{94.9, 3},
		{97, 1},
		{98, 0},
		{100, 0},
	}
	for _, tc := range cases {
		if got := GradeBelow(tc.value, bands); got != tc.want {
			t.Errorf("GradeBelow(%v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestChoice(t *testing.T) {
	weights := map[string]int{"current": 5, "former": 3, "regular": -1}

	if got := Choice("current", weights); got != 5 {
		t.Errorf("Choice(current) = %d, want 5", got)
	}
	if got := Choice("regular", weights); got != -1 {
		t.Errorf("Choice(regular) = %d, want -1", got)
	}
	if got := Choice("", weights); got != 0 {
		t.Errorf("Choice(empty) = %d, want 0", got)
	}
	if got := Choice("never", weights); got != 0 {
		t.Errorf("Choice(unknown) = %d, want 0", got)
	}
}

func TestLadderBucketCoversEveryScore(t *testing.T) {
	ladder := Ladder{{Min: 15, Level: "high"}, {Min: 8, Level: "moderate"}, {Min: 0, Level: "low"}}

	cases := []struct {
		score int
		want  string
	}{
		{30, "high"},
		{15, "high"},
		{14, "moderate"},
		{8, "moderate"},
		{7, "low"},
		{0, "low"},
		{-2, "low"}, // below the floor still maps to the floor bucket
	}
	for _, tc := range cases {
		if got := ladder.Bucket(tc.score); got != tc.want {
			t.Errorf("Bucket(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestConfidenceClamped(t *testing.T) {
	if got := Confidence(60, 5, 95, 4); got != 80 {
		t.Errorf("Confidence = %d, want 80", got)
	}
	if got := Confidence(60, 5, 95, 20); got != 95 {
		t.Errorf("Confidence above cap = %d, want 95", got)
	}
	if got := Confidence(60, 5, 95, -3); got != 60 {
		t.Errorf("Confidence below floor = %d, want 60", got)
	}
	// Deterministic: same inputs, same output.
	if Confidence(75, 2, 90, 6) != Confidence(75, 2, 90, 6) {
		t.Error("Confidence is not deterministic")
	}
}

func TestDedup(t *testing.T) {
	in := []string{"COPD", "Asthma", "COPD", "Emphysema", "Asthma", "Bronchitis"}
	got := Dedup(in, 3)
	want := []string{"COPD", "Asthma", "Emphysema"}
	if len(got) != len(want) {
		t.Fatalf("Dedup returned %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dedup[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTruncate(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e"}
	if got := Truncate(in, 3); len(got) != 3 {
		t.Errorf("Truncate = %d items, want 3", len(got))
	}
	if got := Truncate(in, 10); len(got) != 5 {
		t.Errorf("Truncate beyond length = %d items, want 5", len(got))
	}
}
