package reversi

import "testing"

func TestNotationStartingPosition(t *testing.T) {
	if got := Notation(New(), Black); got != StartingNotation {
		t.Fatalf("starting notation = %q, want %q", got, StartingNotation)
	}
}

func TestParseNotationRoundTrip(t *testing.T) {
	b, toMove, err := ParseNotation(StartingNotation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toMove != Black {
		t.Fatalf("expected Black to move, got %v", toMove)
	}
	if b != New() {
		t.Fatalf("parsed board differs from starting position")
	}

	// Round-trip a mid-game position.
	next, err := Apply(b, Black, Move{Row: 2, Col: 3})
	if err != nil {
		t.Fatalf("legal move rejected: %v", err)
	}
	text := Notation(next, White)
	parsed, side, err := ParseNotation(text)
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if parsed != next || side != White {
		t.Fatalf("round trip mismatch for %q", text)
	}
}

func TestParseNotationRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"8/8/8/8 b",
		"8/8/8/3wb3/3bw3/8/8/8",
		"8/8/8/3wb3/3bw3/8/8/8 x",
		"9/8/8/3wb3/3bw3/8/8/8 b",
		"8/8/8/3wbq3/3bw3/8/8/8 b",
		"8/8/8/3wb4/3bw3/8/8/8 b",
	}
	for _, s := range cases {
		if _, _, err := ParseNotation(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestMoveNotation(t *testing.T) {
	cases := []struct {
		text string
		move Move
	}{
		{"a1", Move{Row: 0, Col: 0}},
		{"d3", Move{Row: 2, Col: 3}},
		{"h8", Move{Row: 7, Col: 7}},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.text)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", tc.text, err)
		}
		if got != tc.move {
			t.Errorf("ParseMove(%q) = %v, want %v", tc.text, got, tc.move)
		}
		if back := FormatMove(tc.move); back != tc.text {
			t.Errorf("FormatMove(%v) = %q, want %q", tc.move, back, tc.text)
		}
	}

	for _, bad := range []string{"", "a", "i1", "a9", "a0", "11", "aa1"} {
		if _, err := ParseMove(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
