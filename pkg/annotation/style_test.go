package annotation

import (
	"testing"

	"github.com/nitro-bio/platemap/pkg/errors"
)

func TestPaletteOrder(t *testing.T) {
	want := []string{"GRAY_STYLE", "ORANGE_STYLE", "PURPLE_STYLE", "CYAN_STYLE", "GREEN_STYLE", "BLUE_STYLE", "RED_STYLE"}
	got := Palette()
	if len(got) != len(want) {
		t.Fatalf("len(Palette()) = %d, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.ID != want[i] {
			t.Errorf("Palette()[%d] = %s, want %s", i, s.ID, want[i])
		}
	}
}

func TestPaletteIsCopy(t *testing.T) {
	p := Palette()
	p[0].ID = "MUTATED"
	if Palette()[0].ID != "GRAY_STYLE" {
		t.Error("mutating a Palette result changed the shared palette")
	}
}

func TestStylePoolPopsFromEnd(t *testing.T) {
	pool := NewStylePool()
	want := []string{
		"RED_STYLE", "BLUE_STYLE", "GREEN_STYLE", "CYAN_STYLE", "PURPLE_STYLE", "ORANGE_STYLE", "GRAY_STYLE",
		"RED_STYLE", "BLUE_STYLE",
	}
	for i, id := range want {
		if got := pool.Next().ID; got != id {
			t.Errorf("Next() #%d = %s, want %s", i, got, id)
		}
	}
}

func TestStylePoolZeroValue(t *testing.T) {
	var pool StylePool
	if got := pool.Next(); got.ID != Red.ID {
		t.Errorf("Next() on zero pool = %s, want %s", got.ID, Red.ID)
	}
}

func TestStyleByID(t *testing.T) {
	for _, s := range Palette() {
		got, err := StyleByID(s.ID)
		if err != nil {
			t.Fatalf("StyleByID(%s) error: %v", s.ID, err)
		}
		if got != s {
			t.Errorf("StyleByID(%s) = %+v, want %+v", s.ID, got, s)
		}
	}

	if _, err := StyleByID("PINK_STYLE"); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("StyleByID(PINK_STYLE) error = %v, want %s", err, errors.ErrCodeInvalidStyle)
	}
}
