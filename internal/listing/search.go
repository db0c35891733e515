package listing

// Boundary searches over a slice already sorted ascending by price.
// The "nothing qualifies" sentinels are len(items) for the lower bound
// and -1 for the upper bound, which makes the empty-range case fall
// out of the combination rule in SearchByPriceRange without any
// special-casing.

// lowerBoundByPrice returns the smallest index whose price is >= min,
// or len(items) when every price is below min.
func lowerBoundByPrice(items []*Listing, min float64) int {
	left, right := 0, len(items)-1
	result := len(items)

	for left <= right {
		mid := left + (right-left)/2
		if items[mid].Price >= min {
			result = mid
			right = mid - 1
		} else {
			left = mid + 1
		}
	}
	return result
}

// upperBoundByPrice returns the largest index whose price is <= max,
// or -1 when every price is above max.
func upperBoundByPrice(items []*Listing, max float64) int {
	left, right := 0, len(items)-1
	result := -1

	for left <= right {
		mid := left + (right-left)/2
		if items[mid].Price <= max {
			result = mid
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	return result
}
