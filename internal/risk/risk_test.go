package risk

import "testing"

func TestBuyCapacity(t *testing.T) {
	limits := Limits{MaxPosition: 50}
	if got := limits.BuyCapacity(0); got != 50 {
		t.Fatalf("expected flat book to allow 50, got %d", got)
	}
	if got := limits.BuyCapacity(-20); got != 70 {
		t.Fatalf("expected short book to allow 70, got %d", got)
	}
	if got := limits.BuyCapacity(50); got != 0 {
		t.Fatalf("expected full long to allow 0, got %d", got)
	}
	if got := limits.BuyCapacity(60); got != 0 {
		t.Fatalf("expected over-limit long to allow 0, got %d", got)
	}
}

func TestSellCapacity(t *testing.T) {
	limits := Limits{MaxPosition: 50}
	if got := limits.SellCapacity(0); got != 50 {
		t.Fatalf("expected flat book to allow 50, got %d", got)
	}
	if got := limits.SellCapacity(30); got != 80 {
		t.Fatalf("expected long book to allow 80, got %d", got)
	}
	if got := limits.SellCapacity(-50); got != 0 {
		t.Fatalf("expected full short to allow 0, got %d", got)
	}
}
