package match

import (
	"reflect"
	"testing"
)

func TestFuzzyMatch(t *testing.T) {
	candidates := []string{"buy milk", "buy shoes", "walk dog"}
	got := Fuzzy{}.Match("buy", candidates)
	want := []string{"buy milk", "buy shoes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match: got %v, want %v", got, want)
	}
}

func TestFuzzyMatchReturnsCandidatesVerbatim(t *testing.T) {
	candidates := []string{"Pick Up Dry Cleaning"}
	got := Fuzzy{}.Match("dry cleaning", candidates)
	if len(got) != 1 || got[0] != candidates[0] {
		t.Errorf("expected verbatim candidate back, got %v", got)
	}
}

func TestFuzzyMatchCaseFold(t *testing.T) {
	got := Fuzzy{}.Match("BUY", []string{"buy milk"})
	if len(got) != 1 {
		t.Errorf("expected case-insensitive match, got %v", got)
	}
}

func TestFuzzyMatchNone(t *testing.T) {
	got := Fuzzy{}.Match("xyzzy", []string{"buy milk", "walk dog"})
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}
