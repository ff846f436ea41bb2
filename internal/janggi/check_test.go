package janggi

import "testing"

func TestIsInCheckNoOpponents(t *testing.T) {
	pos := mustDecode(t, "9/9/9/9/9/9/9/9/4k4/9 b")
	if pos.IsInCheck(Blue) {
		t.Fatal("lone general cannot be in check")
	}
}

func TestIsInCheckChariotFile(t *testing.T) {
	pos := mustDecode(t, "9/4K4/4R4/9/9/9/9/9/4k4/9 b")
	if !pos.IsInCheck(Blue) {
		t.Fatal("open file chariot should give check")
	}
	if pos.IsInCheck(Red) {
		t.Fatal("red is not attacked")
	}

	// A blocker on the file lifts the check.
	pos = mustDecode(t, "9/4K4/4R4/9/9/4s4/9/9/4k4/9 b")
	if pos.IsInCheck(Blue) {
		t.Fatal("blocked chariot cannot give check")
	}
}

func TestIsInCheckCannonScreen(t *testing.T) {
	// Cannon on e1 with the blue soldier as screen checks the general.
	pos := mustDecode(t, "4C4/3K5/9/9/9/4s4/9/9/4k4/9 b")
	if !pos.IsInCheck(Blue) {
		t.Fatal("screened cannon should give check")
	}

	// Two interposed pieces: no check.
	pos = mustDecode(t, "4C4/3K5/9/9/4s4/4s4/9/9/4k4/9 b")
	if pos.IsInCheck(Blue) {
		t.Fatal("cannon cannot jump two screens")
	}
}

func TestIsInCheckHorse(t *testing.T) {
	pos := mustDecode(t, "9/4K4/9/9/9/9/5H3/9/4k4/9 b")
	if !pos.IsInCheck(Blue) {
		t.Fatal("horse on f7 should check e9")
	}

	// Block the horse leg on f8.
	pos = mustDecode(t, "9/4K4/9/9/9/9/5H3/5s3/4k4/9 b")
	if pos.IsInCheck(Blue) {
		t.Fatal("leg-blocked horse cannot check")
	}
}

func TestIsCheckmateEscapeExists(t *testing.T) {
	// Chariot checks down the e file but the general can sidestep.
	pos := mustDecode(t, "9/4K4/4R4/9/9/9/9/9/4k4/9 b")
	if !pos.IsInCheck(Blue) {
		t.Fatal("setup should be check")
	}
	if pos.IsCheckmate(Blue) {
		t.Fatal("general has d9/f9 and the corners, not mate")
	}
}

func TestIsCheckmateTwoChariotsAndSoldier(t *testing.T) {
	// Chariot b10 delivers check along the bottom rank; chariot a9 holds e9,
	// the soldier f9 holds f10 and e9. No escape, no interposition.
	pos := mustDecode(t, "9/4K4/9/9/9/9/9/9/R4S3/1R2k4 b")
	if !pos.IsInCheck(Blue) {
		t.Fatal("setup should be check")
	}
	if !pos.IsCheckmate(Blue) {
		t.Fatal("expected checkmate")
	}
}

func TestSpeculativeSearchRestoresPosition(t *testing.T) {
	pos := mustDecode(t, "9/4K4/4R4/9/9/9/9/9/4k4/9 b")
	before := *pos
	pos.IsCheckmate(Blue)
	if before != *pos {
		t.Fatal("checkmate search mutated the position")
	}
}
