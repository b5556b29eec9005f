package routes

import (
	"testing"

	"primeresidency-server/models"
)

func TestMergePollOptionsPreservesVotesCaseInsensitive(t *testing.T) {
	existing := []models.PollOption{
		{Label: "Yes", Votes: 12, Position: 0},
		{Label: "No", Votes: 5, Position: 1},
	}

	merged := mergePollOptions(existing, []string{"yes", "No", "Abstain"})

	if len(merged) != 3 {
		t.Fatalf("expected 3 options, got %d", len(merged))
	}
	if merged[0].Votes != 12 {
		t.Errorf("expected 'yes' to keep 12 votes, got %d", merged[0].Votes)
	}
	if merged[1].Votes != 5 {
		t.Errorf("expected 'No' to keep 5 votes, got %d", merged[1].Votes)
	}
	if merged[2].Votes != 0 {
		t.Errorf("expected new option 'Abstain' to start at 0 votes, got %d", merged[2].Votes)
	}
}

func TestMergePollOptionsKeepsSubmittedOrder(t *testing.T) {
	existing := []models.PollOption{
		{Label: "A", Votes: 1, Position: 0},
		{Label: "B", Votes: 2, Position: 1},
	}

	merged := mergePollOptions(existing, []string{"B", "A"})

	if merged[0].Label != "B" || merged[0].Position != 0 {
		t.Errorf("expected B first at position 0, got %s at %d", merged[0].Label, merged[0].Position)
	}
	if merged[1].Label != "A" || merged[1].Position != 1 {
		t.Errorf("expected A second at position 1, got %s at %d", merged[1].Label, merged[1].Position)
	}
}

func TestMergePollOptionsDroppedLabelLosesVotes(t *testing.T) {
	existing := []models.PollOption{
		{Label: "Keep", Votes: 7, Position: 0},
		{Label: "Drop", Votes: 9, Position: 1},
	}

	merged := mergePollOptions(existing, []string{"Keep"})

	if len(merged) != 1 {
		t.Fatalf("expected 1 option, got %d", len(merged))
	}
	if merged[0].Label != "Keep" || merged[0].Votes != 7 {
		t.Errorf("expected Keep with 7 votes, got %s with %d", merged[0].Label, merged[0].Votes)
	}
}
