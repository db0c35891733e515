package listing

// Engine is the catalog: an explicitly constructed instance owning its
// index, so independent catalogs can coexist in one process. The
// engine itself is not safe for concurrent use; the command surface on
// top acts as the single logical caller and serializes access.
type Engine struct {
	ix *index
}

func NewEngine() *Engine {
	return &Engine{ix: newIndex()}
}

// Add stores a new listing and returns its id. Ids are strictly
// increasing for the life of the engine, including across deletes.
// Inputs are assumed validated by the caller (price >= 0).
func (e *Engine) Add(title, location string, price float64, category string) int64 {
	return e.ix.insert(title, location, price, category)
}

// Delete removes the listing from every view. Unknown ids report
// false and change nothing; a second delete of the same id is such a
// no-op.
func (e *Engine) Delete(id int64) bool {
	return e.ix.remove(id)
}

// Get looks a listing up by id.
func (e *Engine) Get(id int64) (*Listing, bool) {
	return e.ix.get(id)
}

// SearchByLocation returns the bucket for the location's key, in
// insertion order. Distinct location strings hashing to the same key
// share one bucket; that grouping is part of the contract.
func (e *Engine) SearchByLocation(location string) []*Listing {
	return e.ix.bucket(location)
}

// SearchByPriceRange returns the listings priced within [min, max],
// ascending by price. Empty when the range overlaps no listing, which
// includes min above every price or max below every price.
func (e *Engine) SearchByPriceRange(min, max float64) []*Listing {
	sorted := sortByPrice(e.ix.all(), true)

	lower := lowerBoundByPrice(sorted, min)
	upper := upperBoundByPrice(sorted, max)

	if lower <= upper && lower < len(sorted) {
		return sorted[lower : upper+1]
	}
	return nil
}

// SortByPrice returns a sorted copy of the whole catalog; the engine's
// own ordering is untouched. See sortByPrice for the tie and
// direction semantics.
func (e *Engine) SortByPrice(ascending bool) []*Listing {
	return sortByPrice(e.ix.all(), ascending)
}

// ListAll returns the live primary collection in insertion order.
// Callers must treat it as read-only.
func (e *Engine) ListAll() []*Listing {
	return e.ix.all()
}
