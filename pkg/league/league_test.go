package league

import "testing"

func TestParseConfig(t *testing.T) {
	data := []byte(`{"leagues": [
		{"id": 1, "name": "Wordle Warriorz", "slug": "warriorz", "roster": "players/warriorz.csv", "thread": "Wordle Warriorz"},
		{"id": 2, "name": "Wordle Gang", "roster": "players/gang.csv"}
	]}`)

	leagues, err := ParseConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(leagues) != 2 {
		t.Fatalf("want 2 leagues, got %d", len(leagues))
	}
	if leagues[0].Slug != "warriorz" {
		t.Errorf("slug: got %q", leagues[0].Slug)
	}
	if leagues[1].Slug != "league-2" {
		t.Errorf("default slug: got %q", leagues[1].Slug)
	}
}

func TestParseConfigRejectsBadEntries(t *testing.T) {
	if _, err := ParseConfig([]byte(`{"leagues":[{"name":"no id"}]}`)); err == nil {
		t.Error("expected error for missing id")
	}
	if _, err := ParseConfig([]byte(`{"leagues":[]}`)); err == nil {
		t.Error("expected error for empty registry")
	}
	if _, err := ParseConfig([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
