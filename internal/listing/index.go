package listing

// index is the engine's mutable state: one owning insertion-ordered
// collection plus two derived lookup views. All three hold pointers to
// the same Listing allocations, so each record is stored exactly once
// and the views cannot disagree about its contents. Every mutation
// goes through insert or remove, which touch all three views before
// returning.
type index struct {
	records    []*Listing // owning collection, insertion order
	byID       map[int64]*Listing
	byLocation map[uint32][]*Listing
	nextID     int64
}

func newIndex() *index {
	return &index{
		byID:       make(map[int64]*Listing),
		byLocation: make(map[uint32][]*Listing),
		nextID:     1,
	}
}

// insert assigns the next sequential id and registers the listing in
// all three views. Ids only grow; a deleted id is never handed out
// again within the life of the index.
func (ix *index) insert(title, location string, price float64, category string) int64 {
	l := &Listing{
		ID:       ix.nextID,
		Title:    title,
		Location: location,
		Price:    price,
		Category: category,
	}
	ix.nextID++

	ix.records = append(ix.records, l)
	ix.byID[l.ID] = l

	key := locationKey(location)
	ix.byLocation[key] = append(ix.byLocation[key], l)

	return l.ID
}

// remove unregisters the listing from all three views. An unknown id
// reports false and leaves every view untouched. A bucket emptied by
// the removal is kept around; the next insert for its key reuses it.
func (ix *index) remove(id int64) bool {
	l, ok := ix.byID[id]
	if !ok {
		return false
	}

	delete(ix.byID, id)
	ix.records = filterOut(ix.records, id)

	key := locationKey(l.Location)
	ix.byLocation[key] = filterOut(ix.byLocation[key], id)

	return true
}

func (ix *index) get(id int64) (*Listing, bool) {
	l, ok := ix.byID[id]
	return l, ok
}

// bucket returns the listings sharing the location's key, in insertion
// order. Nil when the key has never been seen.
func (ix *index) bucket(location string) []*Listing {
	return ix.byLocation[locationKey(location)]
}

func (ix *index) all() []*Listing {
	return ix.records
}

func filterOut(items []*Listing, id int64) []*Listing {
	n := 0
	for _, l := range items {
		if l.ID != id {
			items[n] = l
			n++
		}
	}
	return items[:n]
}
