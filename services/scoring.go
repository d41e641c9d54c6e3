package services

import (
	"unicode/utf8"

	"agorahub/models"
)

// Winner values for DebateStats.
const (
	WinnerFor     = "for"
	WinnerAgainst = "against"
	WinnerDraw    = "draw"
)

// Every argument earns one base point; arguments long enough to show
// real effort earn one more. The threshold is inclusive.
const (
	basePoints           = 1
	lengthBonusThreshold = 120
	lengthBonus          = 1
)

// DebateStats summarizes one debate's arguments. It is recomputed on
// every read and never persisted.
type DebateStats struct {
	ForCount         int    `json:"forCount"`
	AgainstCount     int    `json:"againstCount"`
	ForPoints        int    `json:"forPoints"`
	AgainstPoints    int    `json:"againstPoints"`
	ParticipantCount int    `json:"participantCount"`
	Winner           string `json:"winner"`
}

// ArgumentPoints returns the score a single argument contributes to its side.
func ArgumentPoints(arg models.Argument) int {
	points := basePoints
	if utf8.RuneCountInString(arg.Text) >= lengthBonusThreshold {
		points += lengthBonus
	}
	return points
}

// ComputeStats folds a debate's arguments into per-side counts and
// points, counts distinct authors across both sides, and decides the
// winner by comparing point totals. The arguments are assumed to carry
// valid sides; validation happens before persistence. Safe for
// concurrent use, no state survives a call.
func ComputeStats(arguments []models.Argument) DebateStats {
	var stats DebateStats
	authors := make(map[string]struct{}, len(arguments))

	for _, arg := range arguments {
		points := ArgumentPoints(arg)
		if arg.Side == models.SideAgainst {
			stats.AgainstCount++
			stats.AgainstPoints += points
		} else {
			stats.ForCount++
			stats.ForPoints += points
		}
		authors[arg.AuthorName] = struct{}{}
	}

	stats.ParticipantCount = len(authors)

	switch {
	case stats.ForPoints > stats.AgainstPoints:
		stats.Winner = WinnerFor
	case stats.AgainstPoints > stats.ForPoints:
		stats.Winner = WinnerAgainst
	default:
		stats.Winner = WinnerDraw
	}

	return stats
}
