package scoring

import "testing"

func TestYards_EmptyPlaySet(t *testing.T) {
	store := newStoreWith(allSuccessfulOffense("A", "B", 2025))

	got, err := Yards(store, "XXX", week6Weights())
	if err != nil {
		t.Fatalf("Yards returned error: %v", err)
	}
	if got.Score != 50 || !got.InsufficientData {
		t.Errorf("Yards(XXX) = %+v, want neutral 50 with insufficient_data=true", got)
	}
}

func TestYards_AllSuccessfulOffense(t *testing.T) {
	store := newStoreWith(allSuccessfulOffense("A", "B", 2025))

	got, err := Yards(store, "A", week6Weights())
	if err != nil {
		t.Fatalf("Yards returned error: %v", err)
	}
	if got.Score != 100 {
		t.Errorf("S_YD(A) = %v, want 100 (ypp=10 saturates the 3..7 band)", got.Score)
	}
}

func TestYards_StrugglingOffense(t *testing.T) {
	store := newStoreWith(strugglingOffense("B", "A", 2025))

	got, err := Yards(store, "B", week6Weights())
	if err != nil {
		t.Fatalf("Yards returned error: %v", err)
	}
	if got.Score != 0 {
		t.Errorf("S_YD(B) = %v, want 0 (ypp=2 is below the 3..7 band)", got.Score)
	}
}

func TestYards_ExplosivePlayRateBreakdown(t *testing.T) {
	store := newStoreWith(allSuccessfulOffense("A", "B", 2025))

	got, err := Yards(store, "A", week6Weights())
	if err != nil {
		t.Fatalf("Yards returned error: %v", err)
	}
	if got.Breakdowns["explosive_play_rate"] != 0 {
		t.Errorf("explosive_play_rate = %v, want 0 (10 yards never reaches the 20-yard threshold)", got.Breakdowns["explosive_play_rate"])
	}
}
