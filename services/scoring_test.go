package services

import (
	"strings"
	"testing"

	"agorahub/models"
)

func arg(side models.Side, text, author string) models.Argument {
	return models.Argument{Side: side, Text: text, AuthorName: author}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	if stats.ForCount != 0 || stats.AgainstCount != 0 {
		t.Errorf("Expected zero counts, got for=%d against=%d", stats.ForCount, stats.AgainstCount)
	}
	if stats.ForPoints != 0 || stats.AgainstPoints != 0 {
		t.Errorf("Expected zero points, got for=%d against=%d", stats.ForPoints, stats.AgainstPoints)
	}
	if stats.ParticipantCount != 0 {
		t.Errorf("Expected 0 participants, got %d", stats.ParticipantCount)
	}
	if stats.Winner != WinnerDraw {
		t.Errorf("Expected draw on empty input, got %s", stats.Winner)
	}
}

func TestComputeStatsCountsMatchInput(t *testing.T) {
	arguments := []models.Argument{
		arg(models.SideFor, "short", "Alice"),
		arg(models.SideAgainst, "short", "Bob"),
		arg(models.SideFor, "short", "Carol"),
		arg(models.SideAgainst, "short", "Alice"),
		arg(models.SideAgainst, "short", "Dave"),
	}

	stats := ComputeStats(arguments)
	if stats.ForCount+stats.AgainstCount != len(arguments) {
		t.Errorf("Expected counts to sum to %d, got %d", len(arguments), stats.ForCount+stats.AgainstCount)
	}
	if stats.ForCount != 2 || stats.AgainstCount != 3 {
		t.Errorf("Expected 2 for / 3 against, got %d/%d", stats.ForCount, stats.AgainstCount)
	}
}

func TestLengthBonusThreshold(t *testing.T) {
	// 119 characters earns the base point only; 120 earns the bonus.
	just := ComputeStats([]models.Argument{arg(models.SideFor, strings.Repeat("a", 119), "Alice")})
	if just.ForPoints != 1 {
		t.Errorf("Expected 1 point at 119 chars, got %d", just.ForPoints)
	}

	at := ComputeStats([]models.Argument{arg(models.SideFor, strings.Repeat("a", 120), "Alice")})
	if at.ForPoints != 2 {
		t.Errorf("Expected 2 points at 120 chars, got %d", at.ForPoints)
	}
}

func TestParticipantsDistinctAcrossSides(t *testing.T) {
	stats := ComputeStats([]models.Argument{
		arg(models.SideFor, "pro point", "Alice"),
		arg(models.SideAgainst, "con point", "Alice"),
	})

	if stats.ParticipantCount != 1 {
		t.Errorf("Expected same author on both sides to count once, got %d", stats.ParticipantCount)
	}
}

func TestParticipantsCaseSensitive(t *testing.T) {
	stats := ComputeStats([]models.Argument{
		arg(models.SideFor, "pro point", "alice"),
		arg(models.SideFor, "another", "Alice"),
	})

	if stats.ParticipantCount != 2 {
		t.Errorf("Expected case-sensitive author matching, got %d participants", stats.ParticipantCount)
	}
}

func TestWinnerAgainstOnPoints(t *testing.T) {
	stats := ComputeStats([]models.Argument{
		arg(models.SideFor, strings.Repeat("a", 50), "Alice"),
		arg(models.SideAgainst, strings.Repeat("b", 200), "Bob"),
	})

	if stats.ForPoints != 1 || stats.AgainstPoints != 2 {
		t.Errorf("Expected 1 vs 2 points, got %d vs %d", stats.ForPoints, stats.AgainstPoints)
	}
	if stats.Winner != WinnerAgainst {
		t.Errorf("Expected against to win, got %s", stats.Winner)
	}
	if stats.ParticipantCount != 2 {
		t.Errorf("Expected 2 participants, got %d", stats.ParticipantCount)
	}
}

func TestWinnerDrawOnEqualPoints(t *testing.T) {
	// Two short for-arguments tie one long against-argument on points.
	stats := ComputeStats([]models.Argument{
		arg(models.SideFor, "x", "A"),
		arg(models.SideFor, "y", "B"),
		arg(models.SideAgainst, strings.Repeat("z", 150), "C"),
	})

	if stats.ForCount != 2 || stats.ForPoints != 2 {
		t.Errorf("Expected for side 2 count / 2 points, got %d/%d", stats.ForCount, stats.ForPoints)
	}
	if stats.AgainstCount != 1 || stats.AgainstPoints != 2 {
		t.Errorf("Expected against side 1 count / 2 points, got %d/%d", stats.AgainstCount, stats.AgainstPoints)
	}
	if stats.Winner != WinnerDraw {
		t.Errorf("Expected draw, got %s", stats.Winner)
	}
	if stats.ParticipantCount != 3 {
		t.Errorf("Expected 3 participants, got %d", stats.ParticipantCount)
	}
}

func TestComputeStatsOrderIndependent(t *testing.T) {
	arguments := []models.Argument{
		arg(models.SideFor, strings.Repeat("a", 130), "Alice"),
		arg(models.SideAgainst, "short rebuttal", "Bob"),
		arg(models.SideFor, "quick note", "Carol"),
		arg(models.SideAgainst, strings.Repeat("b", 121), "Alice"),
	}
	reversed := make([]models.Argument, len(arguments))
	for i, a := range arguments {
		reversed[len(arguments)-1-i] = a
	}

	first := ComputeStats(arguments)
	second := ComputeStats(reversed)
	if first != second {
		t.Errorf("Expected identical stats regardless of order, got %+v vs %+v", first, second)
	}
}

func TestComputeStatsDeterministic(t *testing.T) {
	arguments := []models.Argument{
		arg(models.SideFor, strings.Repeat("a", 120), "Alice"),
		arg(models.SideAgainst, "no", "Bob"),
	}

	if ComputeStats(arguments) != ComputeStats(arguments) {
		t.Error("Expected repeated invocations to return identical stats")
	}
}
