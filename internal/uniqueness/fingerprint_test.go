package uniqueness

import (
	"testing"
	"time"

	"github.com/gamespark-labs/gamespark/internal/models"
)

func testIdea() *models.GameIdea {
	return &models.GameIdea{
		ID:           "idea-1",
		Title:        "Match Master",
		Genre:        "Puzzle",
		Platform:     []string{"Mobile", "PC"},
		Complexity:   models.ComplexitySimple,
		Description:  "A colorful match-3 puzzle game with power-ups and daily challenges.",
		CoreGameplay: "Match three or more gems to clear them from the board.",
		UniqueFeatures: []string{
			"Power-up combinations",
			"Daily challenges",
		},
		ArtStyle:  "Bright cartoon style",
		CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestFingerprintDeterminism(t *testing.T) {
	idea := testIdea()

	first := Fingerprint(idea)
	second := Fingerprint(idea)

	if *first != *second {
		t.Fatalf("fingerprint of the same idea differs: %+v vs %+v", first, second)
	}
}

func TestFingerprintIgnoresIdentityFields(t *testing.T) {
	a := testIdea()
	b := testIdea()
	b.ID = "idea-2"
	b.Title = "Different Title"
	b.CreatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	fpA := Fingerprint(a)
	fpB := Fingerprint(b)

	if fpA.Genre != fpB.Genre {
		t.Errorf("genre key differs: %q vs %q", fpA.Genre, fpB.Genre)
	}
	if fpA.PlatformHash != fpB.PlatformHash {
		t.Errorf("platform hash differs: %q vs %q", fpA.PlatformHash, fpB.PlatformHash)
	}
	if fpA.MechanicsHash != fpB.MechanicsHash {
		t.Errorf("mechanics hash differs: %q vs %q", fpA.MechanicsHash, fpB.MechanicsHash)
	}
	if fpA.ThemeHash != fpB.ThemeHash {
		t.Errorf("theme hash differs: %q vs %q", fpA.ThemeHash, fpB.ThemeHash)
	}
	if fpA.ComplexityWeight != fpB.ComplexityWeight {
		t.Errorf("complexity weight differs: %d vs %d", fpA.ComplexityWeight, fpB.ComplexityWeight)
	}
}

func TestPlatformKeyOrderInsensitive(t *testing.T) {
	a := platformKey([]string{"PC", "Mobile", "VR"})
	b := platformKey([]string{"vr", "mobile", "pc"})

	if a != b {
		t.Fatalf("platform key depends on tag order or case: %q vs %q", a, b)
	}
	if a != "mobile-pc-vr" {
		t.Fatalf("unexpected platform key: %q", a)
	}
}

func TestPlatformKeyDeduplicates(t *testing.T) {
	got := platformKey([]string{"PC", "pc", "PC"})
	if got != "pc" {
		t.Fatalf("expected duplicates collapsed, got %q", got)
	}
}

func TestComplexityWeight(t *testing.T) {
	tests := []struct {
		complexity string
		want       int
	}{
		{models.ComplexitySimple, 1},
		{models.ComplexityMedium, 2},
		{models.ComplexityComplex, 3},
		{"", 2},
		{"Extreme", 2},
	}

	for _, tt := range tests {
		if got := complexityWeight(tt.complexity); got != tt.want {
			t.Errorf("complexityWeight(%q) = %d, want %d", tt.complexity, got, tt.want)
		}
	}
}

func TestHashStringStable(t *testing.T) {
	if hashString("hello world") != hashString("hello world") {
		t.Fatal("hash is not stable for identical input")
	}
	if hashString("hello world") == hashString("hello w0rld") {
		t.Fatal("single-character difference did not change the hash")
	}
	if got := hashString(""); got != "0" {
		t.Fatalf("empty string hash = %q, want %q", got, "0")
	}
}
