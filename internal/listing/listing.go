package listing

// Listing is one catalog entry. It is immutable once created: callers
// model an update as Delete followed by Add, which assigns a fresh id.
type Listing struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// Store is the catalog surface the command layers consume. Returned
// slices are views or snapshots of engine state and must not be
// mutated by callers.
type Store interface {
	Add(title, location string, price float64, category string) int64
	Delete(id int64) bool
	Get(id int64) (*Listing, bool)
	SearchByLocation(location string) []*Listing
	SearchByPriceRange(min, max float64) []*Listing
	SortByPrice(ascending bool) []*Listing
	ListAll() []*Listing
}
