package gvoice

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wordleague/wordleague/pkg/league"
)

const snapshotHTML = `<!DOCTYPE html>
<html><body>
<div class="conversation">
  <span class="cdk-visually-hidden">Message from 9 4 9 2 3 0 4 4 7 2, Wordle 1,510 3/6

⬜🟨⬜⬜⬜
⬜🟨🟩🟨⬜
🟩🟩🟩🟩🟩</span>
  <span class="cdk-visually-hidden">Read 8:02 AM</span>
  <span class="cdk-visually-hidden">Loved “Wordle 1,510 3/6”</span>
  <div class="visible-bubble">Wordle 1,510 3/6 visible copy that must not duplicate</div>
</div>
</body></html>`

func TestMessagesFromSnapshot(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "warriorz")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "thread1.html"), []byte(snapshotHTML), 0o644); err != nil {
		t.Fatal(err)
	}

	src := New(root)
	blobs, err := src.Messages(context.Background(), league.League{ID: 1, Name: "Wordle Warriorz", Slug: "warriorz"})
	if err != nil {
		t.Fatal(err)
	}

	// Hidden submission plus hidden reaction; the reaction is left for
	// the matcher to throw out, and the visible bubble is never read.
	if len(blobs) != 2 {
		t.Fatalf("want 2 blobs, got %d: %+v", len(blobs), blobs)
	}
	if !strings.Contains(blobs[0].Text, "Message from 9 4 9") {
		t.Errorf("first blob: %q", blobs[0].Text)
	}
	if blobs[0].LeagueID != 1 {
		t.Errorf("league id = %d", blobs[0].LeagueID)
	}
}

func TestMessagesNoSnapshots(t *testing.T) {
	src := New(t.TempDir())
	if _, err := src.Messages(context.Background(), league.League{ID: 1, Name: "X", Slug: "x"}); err == nil {
		t.Fatal("expected error for missing snapshot directory")
	}
}
