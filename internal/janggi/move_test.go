package janggi

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// destinations returns the candidate destinations of the piece on the
// labelled point, as sorted labels.
func destinations(t *testing.T, pos *Position, from string) []string {
	t.Helper()
	sq, ok := SquareOf(from)
	if !ok {
		t.Fatalf("bad label %q", from)
	}
	if pos.Board.Squares[sq] == 0 {
		t.Fatalf("no piece on %s", from)
	}
	var moves []Move
	genMovesFrom(pos, sq, &moves)
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = LabelOf(m.To)
	}
	sort.Strings(out)
	return out
}

func wantDests(dests ...string) []string {
	sort.Strings(dests)
	return dests
}

func TestSoldierMoves(t *testing.T) {
	// Red soldier on the left edge: forward or one sideways step, never back.
	pos := mustDecode(t, "9/9/9/S8/9/9/9/9/9/9 r")
	got := destinations(t, pos, "a4")
	if diff := cmp.Diff(wantDests("a5", "b4"), got); diff != "" {
		t.Fatalf("soldier dests (-want +got):\n%s", diff)
	}

	// Blue soldier on a red palace corner gains the corridor diagonal.
	pos = mustDecode(t, "9/9/3s5/9/9/9/9/9/9/9 b")
	got = destinations(t, pos, "d3")
	if diff := cmp.Diff(wantDests("c3", "e3", "d2", "e2"), got); diff != "" {
		t.Fatalf("palace-corner soldier dests (-want +got):\n%s", diff)
	}

	// From the palace center both far corners open up.
	pos = mustDecode(t, "9/4s4/9/9/9/9/9/9/9/9 b")
	got = destinations(t, pos, "e2")
	if diff := cmp.Diff(wantDests("d2", "f2", "e1", "d1", "f1"), got); diff != "" {
		t.Fatalf("palace-center soldier dests (-want +got):\n%s", diff)
	}
}

func TestCannonNeedsScreen(t *testing.T) {
	pos := mustDecode(t, "9/9/1C7/9/9/9/9/9/9/9 r")
	if got := destinations(t, pos, "b3"); len(got) != 0 {
		t.Fatalf("cannon without screen moved: %v", got)
	}

	// Screen on b6, enemy chariot on b9: land anywhere past the screen up to
	// and including the chariot.
	pos = mustDecode(t, "9/9/1C7/9/9/1h7/9/9/1r7/9 r")
	got := destinations(t, pos, "b3")
	if diff := cmp.Diff(wantDests("b7", "b8", "b9"), got); diff != "" {
		t.Fatalf("screened cannon dests (-want +got):\n%s", diff)
	}
}

func TestCannonIgnoresCannonScreensAndTargets(t *testing.T) {
	// A cannon as screen blocks the whole direction.
	pos := mustDecode(t, "9/9/1C7/9/9/1c7/9/9/1r7/9 r")
	if got := destinations(t, pos, "b3"); len(got) != 0 {
		t.Fatalf("cannon jumped a cannon screen: %v", got)
	}

	// A cannon as target is not capturable; squares before it stay open.
	pos = mustDecode(t, "9/9/1C7/9/9/1h7/9/9/1c7/9 r")
	got := destinations(t, pos, "b3")
	if diff := cmp.Diff(wantDests("b7", "b8"), got); diff != "" {
		t.Fatalf("cannon-target dests (-want +got):\n%s", diff)
	}
}

func TestCannonPalaceJump(t *testing.T) {
	// Red cannon on blue palace corner d8, screen on the center e9.
	pos := mustDecode(t, "9/9/9/9/9/9/9/3C5/4h4/9 r")
	got := destinations(t, pos, "d8")
	found := false
	for _, d := range got {
		if d == "f10" {
			found = true
		}
	}
	if !found {
		t.Fatalf("palace jump d8->f10 missing from %v", got)
	}

	// A cannon screen on the center forbids the jump.
	pos = mustDecode(t, "9/9/9/9/9/9/9/3C5/4c4/9 r")
	for _, d := range destinations(t, pos, "d8") {
		if d == "f10" {
			t.Fatal("palace jump over a cannon screen")
		}
	}
}

func TestChariotSlidesAndStops(t *testing.T) {
	// Friendly soldier on e2 and enemy chariot on e8 bracket the file.
	pos := mustDecode(t, "9/4S4/9/9/4R4/9/9/4r4/9/9 r")
	got := destinations(t, pos, "e5")
	want := wantDests(
		"e3", "e4", // up to the friendly soldier, exclusive
		"e6", "e7", "e8", // down to the enemy chariot, inclusive
		"a5", "b5", "c5", "d5", "f5", "g5", "h5", "i5",
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("chariot dests (-want +got):\n%s", diff)
	}
}

func TestChariotPalaceDiagonals(t *testing.T) {
	// From a blue palace corner the corridor runs through the center to the
	// far corner.
	pos := mustDecode(t, "9/9/9/9/9/9/9/3R5/9/9 r")
	got := destinations(t, pos, "d8")
	for _, want := range []string{"e9", "f10"} {
		found := false
		for _, d := range got {
			if d == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("corridor dest %s missing from %v", want, got)
		}
	}

	// An enemy on the center stops the slide there.
	pos = mustDecode(t, "9/9/9/9/9/9/9/3R5/4h4/9 r")
	got = destinations(t, pos, "d8")
	for _, d := range got {
		if d == "f10" {
			t.Fatal("chariot slid through an occupied palace center")
		}
	}
}

func TestElephantBlockedLegs(t *testing.T) {
	pos := mustDecode(t, "9/9/9/9/4E4/9/9/9/9/9 r")
	got := destinations(t, pos, "e5")
	want := wantDests("c2", "g2", "c8", "g8", "b3", "b7", "h3", "h7")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("open elephant dests (-want +got):\n%s", diff)
	}

	// A piece on the orthogonal leg e6 kills both downward moves.
	pos = mustDecode(t, "9/9/9/9/4E4/4s4/9/9/9/9 r")
	got = destinations(t, pos, "e5")
	if diff := cmp.Diff(wantDests("c2", "g2", "b3", "b7", "h3", "h7"), got); diff != "" {
		t.Fatalf("leg-blocked elephant dests (-want +got):\n%s", diff)
	}

	// A piece on the diagonal leg f7 kills only e5->g8.
	pos = mustDecode(t, "9/9/9/9/4E4/9/5s3/9/9/9 r")
	got = destinations(t, pos, "e5")
	if diff := cmp.Diff(wantDests("c2", "g2", "c8", "b3", "b7", "h3", "h7"), got); diff != "" {
		t.Fatalf("diagonal-blocked elephant dests (-want +got):\n%s", diff)
	}
}

func TestHorseBlockedLeg(t *testing.T) {
	pos := mustDecode(t, "9/9/9/9/4H4/9/9/9/9/9 r")
	got := destinations(t, pos, "e5")
	want := wantDests("d3", "f3", "d7", "f7", "c4", "c6", "g4", "g6")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("open horse dests (-want +got):\n%s", diff)
	}

	// A piece on f5 blocks both rightward moves.
	pos = mustDecode(t, "9/9/9/9/4Hs3/9/9/9/9/9 r")
	got = destinations(t, pos, "e5")
	if diff := cmp.Diff(wantDests("d3", "f3", "d7", "f7", "c4", "c6"), got); diff != "" {
		t.Fatalf("leg-blocked horse dests (-want +got):\n%s", diff)
	}
}

func TestGeneralAndGuardStayInPalace(t *testing.T) {
	// From the center every palace point is reachable.
	pos := mustDecode(t, "9/9/9/9/9/9/9/9/4k4/9 b")
	got := destinations(t, pos, "e9")
	want := wantDests("d8", "e8", "f8", "d9", "f9", "d10", "e10", "f10")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("center general dests (-want +got):\n%s", diff)
	}

	// From a corner: two orthogonal steps plus the corridor to the center.
	pos = mustDecode(t, "9/9/9/9/9/9/9/9/9/3a5 b")
	got = destinations(t, pos, "d10")
	if diff := cmp.Diff(wantDests("d9", "e10", "e9"), got); diff != "" {
		t.Fatalf("corner guard dests (-want +got):\n%s", diff)
	}

	// From an edge midpoint there is no diagonal line.
	pos = mustDecode(t, "9/9/9/9/9/9/9/4k4/9/9 b")
	got = destinations(t, pos, "e8")
	if diff := cmp.Diff(wantDests("d8", "f8", "e9"), got); diff != "" {
		t.Fatalf("edge general dests (-want +got):\n%s", diff)
	}
}
