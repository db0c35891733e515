package listing

import (
	"math/rand"
	"testing"
)

func pricedListings(prices ...float64) []*Listing {
	out := make([]*Listing, len(prices))
	for i, p := range prices {
		out[i] = &Listing{ID: int64(i + 1), Price: p}
	}
	return out
}

func assertAscending(t *testing.T, items []*Listing) {
	t.Helper()
	for i := 1; i < len(items); i++ {
		if items[i-1].Price > items[i].Price {
			t.Fatalf("not ascending at %d: %v > %v", i, items[i-1].Price, items[i].Price)
		}
	}
}

func TestSortByPrice_Ascending(t *testing.T) {
	in := pricedListings(300, 100, 500, 200, 400)

	out := sortByPrice(in, true)

	if len(out) != len(in) {
		t.Fatalf("len=%d want=%d", len(out), len(in))
	}
	assertAscending(t, out)
}

func TestSortByPrice_DoesNotMutateInput(t *testing.T) {
	in := pricedListings(300, 100, 500, 200, 400)
	before := make([]int64, len(in))
	for i, l := range in {
		before[i] = l.ID
	}

	_ = sortByPrice(in, true)

	for i, l := range in {
		if l.ID != before[i] {
			t.Fatalf("input reordered at %d: id=%d want=%d", i, l.ID, before[i])
		}
	}
}

func TestSortByPrice_DescendingIsReverseOfAscending(t *testing.T) {
	in := pricedListings(300, 100, 100, 500, 200, 200, 400)

	asc := sortByPrice(in, true)
	desc := sortByPrice(in, false)

	if len(asc) != len(desc) {
		t.Fatalf("len mismatch: %d vs %d", len(asc), len(desc))
	}
	for i := range asc {
		if asc[i] != desc[len(desc)-1-i] {
			t.Fatalf("desc is not the reverse of asc at %d", i)
		}
	}
}

func TestSortByPrice_AlreadySortedInput(t *testing.T) {
	in := pricedListings(100, 200, 300, 400, 500, 600, 700, 800)

	out := sortByPrice(in, true)
	assertAscending(t, out)
}

func TestSortByPrice_EmptyAndSingle(t *testing.T) {
	if out := sortByPrice(nil, true); len(out) != 0 {
		t.Fatalf("empty input: len=%d", len(out))
	}

	in := pricedListings(42)
	out := sortByPrice(in, false)
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("single input mishandled: %+v", out)
	}
}

func TestSortByPrice_RandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 20; round++ {
		in := make([]*Listing, rng.Intn(200))
		for i := range in {
			// Coarse prices force plenty of ties.
			in[i] = &Listing{ID: int64(i + 1), Price: float64(rng.Intn(50)) * 1000}
		}

		out := sortByPrice(in, true)

		if len(out) != len(in) {
			t.Fatalf("round %d: len=%d want=%d", round, len(out), len(in))
		}
		assertAscending(t, out)

		seen := make(map[int64]int, len(out))
		for _, l := range out {
			seen[l.ID]++
		}
		for _, l := range in {
			if seen[l.ID] != 1 {
				t.Fatalf("round %d: id %d appears %d times", round, l.ID, seen[l.ID])
			}
		}
	}
}
