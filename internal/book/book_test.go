package book

import "testing"

func TestMidBothSides(t *testing.T) {
	depth := Depth{
		Buys:  map[int]int{9998: 5, 10000: 3, 9995: 1},
		Sells: map[int]int{10004: -4, 10002: -2},
	}
	mid, ok := depth.Mid()
	if !ok {
		t.Fatalf("expected mid for two-sided book")
	}
	if mid != 10001 {
		t.Fatalf("expected mid 10001, got %.2f", mid)
	}
}

func TestMidHalfTick(t *testing.T) {
	depth := Depth{
		Buys:  map[int]int{100: 1},
		Sells: map[int]int{103: -1},
	}
	mid, ok := depth.Mid()
	if !ok || mid != 101.5 {
		t.Fatalf("expected mid 101.5, got %.2f ok=%v", mid, ok)
	}
}

func TestMidOnlyAsks(t *testing.T) {
	depth := Depth{Sells: map[int]int{10004: -4, 10002: -2, 10010: -1}}
	mid, ok := depth.Mid()
	if !ok || mid != 10002 {
		t.Fatalf("expected min ask 10002, got %.2f ok=%v", mid, ok)
	}
}

func TestMidOnlyBids(t *testing.T) {
	depth := Depth{Buys: map[int]int{9990: 1, 10000: 3, 9998: 5}}
	mid, ok := depth.Mid()
	if !ok || mid != 10000 {
		t.Fatalf("expected max bid 10000, got %.2f ok=%v", mid, ok)
	}
}

func TestMidEmptyBook(t *testing.T) {
	if _, ok := (Depth{}).Mid(); ok {
		t.Fatalf("expected no mid for empty book")
	}
}

func TestBestBidAskMissingSides(t *testing.T) {
	depth := Depth{Buys: map[int]int{100: 1}}
	if _, ok := depth.BestAsk(); ok {
		t.Fatalf("expected no best ask")
	}
	bid, ok := depth.BestBid()
	if !ok || bid != 100 {
		t.Fatalf("expected best bid 100, got %d ok=%v", bid, ok)
	}
}
