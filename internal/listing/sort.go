package listing

// sortByPrice returns a freshly ordered copy of items; the input is
// never reordered. The sort is an in-place quicksort over the copy
// with a middle-index pivot, so already-sorted input does not
// degenerate; adversarial pivot sequences can still cost O(n^2).
// Equal prices carry no relative-order guarantee. Descending output is
// the ascending result reversed wholesale, so tie order in descending
// mode is exactly the reverse of ascending mode.
func sortByPrice(items []*Listing, ascending bool) []*Listing {
	out := make([]*Listing, len(items))
	copy(out, items)

	quicksortByPrice(out, 0, len(out)-1)

	if !ascending {
		reverse(out)
	}
	return out
}

func quicksortByPrice(items []*Listing, low, high int) {
	if low >= high {
		return
	}

	// Middle pivot parked at the end, then a single forward scan with
	// a running boundary for elements at or below the pivot price.
	mid := low + (high-low)/2
	items[mid], items[high] = items[high], items[mid]
	pivot := items[high].Price

	boundary := low
	for i := low; i < high; i++ {
		if items[i].Price <= pivot {
			items[boundary], items[i] = items[i], items[boundary]
			boundary++
		}
	}
	items[boundary], items[high] = items[high], items[boundary]

	quicksortByPrice(items, low, boundary-1)
	quicksortByPrice(items, boundary+1, high)
}

func reverse(items []*Listing) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
