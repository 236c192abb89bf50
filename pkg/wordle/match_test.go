package wordle

import "testing"

func TestMatchHiddenElementText(t *testing.T) {
	text := "Message from 9 4 9 2 3 0 4 4 7 2, Wordle 1,510 3/6\n\n⬜🟨⬜⬜⬜\n⬜🟨🟩🟨⬜\n🟩🟩🟩🟩🟩boom, Thursday..."

	res := Match(text)
	if res == nil {
		t.Fatal("expected a match, got nil")
	}
	if res.PuzzleNumber != 1510 {
		t.Errorf("puzzle number: want 1510, got %d", res.PuzzleNumber)
	}
	if res.Score != 3 {
		t.Errorf("score: want 3, got %d", res.Score)
	}
	if res.SenderToken != "9 4 9 2 3 0 4 4 7 2" {
		t.Errorf("sender token: got %q", res.SenderToken)
	}
}

func TestMatchHashAndFailedScore(t *testing.T) {
	res := Match("Wordle #1503 X/6\n⬛⬛⬛⬛⬛")
	if res == nil {
		t.Fatal("expected a match, got nil")
	}
	if res.PuzzleNumber != 1503 {
		t.Errorf("puzzle number: want 1503, got %d", res.PuzzleNumber)
	}
	if !res.Score.Failed() {
		t.Errorf("expected failed score, got %v", res.Score)
	}
	if res.SenderToken != "" {
		t.Errorf("expected empty sender token, got %q", res.SenderToken)
	}
}

func TestMatchRejectsReactions(t *testing.T) {
	reactions := []string{
		"Loved “Wordle 1510 3/6”",
		"Liked “Wordle 1,510 4/6 ⬜🟨⬜⬜⬜”",
		"Laughed at “Wordle 1510 X/6”",
		"Emphasized “Wordle 1510 2/6”",
		"Message from 8 5 8 7 3 5 9 3 5 3, Loved “Wordle 1510 3/6”",
		"  Reacted to “Wordle 1510 5/6” with a heart",
	}
	for _, text := range reactions {
		if !IsReaction(text) {
			t.Errorf("IsReaction(%q) = false, want true", text)
		}
		if res := Match(text); res != nil {
			t.Errorf("Match(%q) = %+v, want nil", text, res)
		}
	}
}

func TestMatchNonReactionSenderPrefix(t *testing.T) {
	// A plain submission must not be mistaken for a reaction.
	if IsReaction("Message from 9 4 9 2 3 0 4 4 7 2, Wordle 1,510 3/6") {
		t.Error("submission flagged as reaction")
	}
}

func TestMatchNoMatch(t *testing.T) {
	cases := []string{
		"",
		"See you all at dinner",
		"Wordle is hard today",
		"Wordle abc 3/6",
		"I got a 3/6 feeling about this",
	}
	for _, text := range cases {
		if res := Match(text); res != nil {
			t.Errorf("Match(%q) = %+v, want nil", text, res)
		}
	}
}

func TestMatchScoreOutsidePermittedSet(t *testing.T) {
	// "0/6" parses but must fail validation downstream, not here.
	res := Match("Wordle 1510 0/6")
	if res == nil {
		t.Fatal("expected a match for 0/6 token")
	}
	if res.Score.Valid() {
		t.Errorf("score 0 should not be valid")
	}
}

func TestParseScoreRoundTrip(t *testing.T) {
	for s := Score(1); s <= 6; s++ {
		got, ok := ParseScore(s.String()[:1])
		if !ok || got != s {
			t.Errorf("ParseScore round trip for %v: got %v, ok=%v", s, got, ok)
		}
	}
	if got, ok := ParseScore("X"); !ok || got != ScoreFailed {
		t.Errorf("ParseScore(X): got %v, ok=%v", got, ok)
	}
	if got, ok := ParseScore("x"); !ok || got != ScoreFailed {
		t.Errorf("ParseScore(x): got %v, ok=%v", got, ok)
	}
	if ScoreFailed.String() != "X/6" {
		t.Errorf("ScoreFailed.String() = %q", ScoreFailed.String())
	}
}
