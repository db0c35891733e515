package listing_test

import (
	"math/rand"
	"sort"
	"testing"

	"EstateCatalog/internal/listing"
)

func ids(items []*listing.Listing) []int64 {
	out := make([]int64, len(items))
	for i, l := range items {
		out[i] = l.ID
	}
	return out
}

func TestEngine_Scenario(t *testing.T) {
	e := listing.NewEngine()

	id1 := e.Add("A", "Austin", 100000, "house")
	if id1 != 1 {
		t.Fatalf("first id=%d want=1", id1)
	}
	id2 := e.Add("B", "austin", 250000, "condo")
	if id2 != 2 {
		t.Fatalf("second id=%d want=2", id2)
	}

	byLoc := e.SearchByLocation("Austin")
	if got := ids(byLoc); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("SearchByLocation ids=%v want=[1 2]", got)
	}

	inRange := e.SearchByPriceRange(150000, 300000)
	if got := ids(inRange); len(got) != 1 || got[0] != 2 {
		t.Fatalf("SearchByPriceRange ids=%v want=[2]", got)
	}

	if !e.Delete(1) {
		t.Fatalf("Delete(1)=false")
	}

	all := e.ListAll()
	if got := ids(all); len(got) != 1 || got[0] != 2 {
		t.Fatalf("ListAll after delete ids=%v want=[2]", got)
	}

	if e.Delete(1) {
		t.Fatalf("second Delete(1)=true")
	}
}

func TestEngine_DeleteIsIdempotentOnState(t *testing.T) {
	e := listing.NewEngine()
	e.Add("A", "Austin", 100, "house")
	id := e.Add("B", "Dallas", 200, "condo")
	e.Add("C", "Austin", 300, "plot")

	if !e.Delete(id) {
		t.Fatalf("first delete=false")
	}
	after := ids(e.ListAll())

	if e.Delete(id) {
		t.Fatalf("second delete=true")
	}
	again := ids(e.ListAll())

	if len(after) != len(again) {
		t.Fatalf("state changed on no-op delete: %v vs %v", after, again)
	}
	for i := range after {
		if after[i] != again[i] {
			t.Fatalf("state changed on no-op delete: %v vs %v", after, again)
		}
	}
}

func TestEngine_SortRoundTrip(t *testing.T) {
	e := listing.NewEngine()
	e.Add("A", "Austin", 300, "house")
	e.Add("B", "Dallas", 100, "condo")
	e.Add("C", "Austin", 500, "plot")
	e.Add("D", "Dallas", 200, "house")

	asc := e.SortByPrice(true)
	desc := e.SortByPrice(false)

	if len(asc) != len(desc) {
		t.Fatalf("len mismatch")
	}
	for i := range asc {
		if asc[i].ID != desc[len(desc)-1-i].ID {
			t.Fatalf("descending is not the reverse of ascending at %d", i)
		}
	}
}

func TestEngine_RangeBoundaries(t *testing.T) {
	e := listing.NewEngine()
	e.Add("A", "Austin", 100, "house")
	e.Add("B", "Dallas", 200, "condo")
	e.Add("C", "Austin", 300, "plot")

	if got := e.SearchByPriceRange(301, 1000); len(got) != 0 {
		t.Fatalf("min above every price returned %d listings", len(got))
	}
	if got := e.SearchByPriceRange(0, 99); len(got) != 0 {
		t.Fatalf("max below every price returned %d listings", len(got))
	}
	if got := e.SearchByPriceRange(100, 300); len(got) != 3 {
		t.Fatalf("full range returned %d listings", len(got))
	}
}

func TestEngine_LocationNormalization(t *testing.T) {
	e := listing.NewEngine()
	id := e.Add("A", "New York", 100, "house")

	got := e.SearchByLocation("new  york")
	if len(got) != 1 || got[0].ID != id {
		t.Fatalf("normalized lookup returned %v", ids(got))
	}
}

func TestEngine_SearchByPriceRange_MatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	e := listing.NewEngine()
	locations := []string{"Austin", "Dallas", "Houston", "El Paso"}
	for i := 0; i < 300; i++ {
		e.Add("L", locations[rng.Intn(len(locations))], float64(rng.Intn(90))*5000, "house")
	}
	for _, id := range ids(e.ListAll()) {
		if rng.Intn(4) == 0 {
			e.Delete(id)
		}
	}

	for round := 0; round < 50; round++ {
		min := float64(rng.Intn(100)) * 5000
		max := min + float64(rng.Intn(40))*5000

		got := e.SearchByPriceRange(min, max)

		// Brute force over the live catalog.
		var want []*listing.Listing
		for _, l := range e.ListAll() {
			if l.Price >= min && l.Price <= max {
				want = append(want, l)
			}
		}
		sort.SliceStable(want, func(i, j int) bool { return want[i].Price < want[j].Price })

		if len(got) != len(want) {
			t.Fatalf("round %d [%v,%v]: got %d listings, want %d", round, min, max, len(got), len(want))
		}
		for i := range got {
			if got[i].Price != want[i].Price {
				t.Fatalf("round %d: price mismatch at %d: %v vs %v", round, i, got[i].Price, want[i].Price)
			}
		}

		gotIDs := make(map[int64]bool, len(got))
		for _, l := range got {
			gotIDs[l.ID] = true
		}
		for _, l := range want {
			if !gotIDs[l.ID] {
				t.Fatalf("round %d: id %d missing from range result", round, l.ID)
			}
		}
	}
}
