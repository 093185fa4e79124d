package store

import (
	"context"
	"testing"

	"github.com/robalobadob/novelties/internal/bagels"
)

func TestMemoryStoreSaveGetStats(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	won := bagels.New("12", 10)
	if _, _, err := won.ApplyGuess("12"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	lost := bagels.New("34", 1)
	if _, _, err := lost.ApplyGuess("43"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	for _, g := range []*bagels.Game{won, lost} {
		if err := st.Save(ctx, g); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	// Saving the same game twice does not count it twice.
	if err := st.Save(ctx, won); err != nil {
		t.Fatalf("save again: %v", err)
	}

	played, wins, err := st.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if played != 2 || wins != 1 {
		t.Fatalf("stats = %d played, %d won; want 2, 1", played, wins)
	}
}

func TestMemoryStoreRejectsMissingID(t *testing.T) {
	st := NewMemoryStore()
	if err := st.Save(context.Background(), &bagels.Game{}); err == nil {
		t.Fatal("expected error for game without id")
	}
}
