package models

import "testing"

func TestValidSide(t *testing.T) {
	if !ValidSide(SideFor) || !ValidSide(SideAgainst) {
		t.Error("Expected for and against to be valid sides")
	}

	for _, s := range []Side{"", "neutral", "FOR", "For"} {
		if ValidSide(s) {
			t.Errorf("Expected side %q to be invalid", s)
		}
	}
}
