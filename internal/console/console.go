// Package console is the interactive single-user surface over the
// catalog: a synchronous menu loop that validates every numeric input
// before the engine ever sees it.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"EstateCatalog/internal/listing"
)

type Session struct {
	store listing.Store
	in    *bufio.Scanner
	out   io.Writer
}

func NewSession(store listing.Store, in io.Reader, out io.Writer) *Session {
	return &Session{
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run drives the menu until the user exits or input ends.
func (s *Session) Run() {
	for {
		s.printMenu()

		choice, ok := s.readLine()
		if !ok {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if !s.addListing() {
				return
			}
		case "2":
			if !s.deleteListing() {
				return
			}
		case "3":
			if !s.searchByLocation() {
				return
			}
		case "4":
			if !s.searchByPriceRange() {
				return
			}
		case "5":
			if !s.sortByPrice() {
				return
			}
		case "6":
			s.displayAll()
		case "7":
			fmt.Fprintln(s.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprint(s.out, `
=== PROPERTY LISTING CATALOG ===
1. Add listing
2. Delete listing
3. Search by location
4. Search by price range
5. Sort listings by price
6. Display all listings
7. Exit

Enter your choice (1-7): `)
}

func (s *Session) addListing() bool {
	title, ok := s.prompt("Title: ")
	if !ok {
		return false
	}
	location, ok := s.prompt("Location: ")
	if !ok {
		return false
	}
	price, ok := s.promptPrice("Price: $")
	if !ok {
		return false
	}
	category, ok := s.prompt("Category (apartment, house, plot, ...): ")
	if !ok {
		return false
	}

	id := s.store.Add(title, location, price, category)
	fmt.Fprintf(s.out, "Listing added with ID %d.\n", id)
	return true
}

func (s *Session) deleteListing() bool {
	id, ok := s.promptID("Listing ID to delete: ")
	if !ok {
		return false
	}

	if s.store.Delete(id) {
		fmt.Fprintf(s.out, "Listing %d deleted.\n", id)
	} else {
		fmt.Fprintf(s.out, "Listing %d not found.\n", id)
	}
	return true
}

func (s *Session) searchByLocation() bool {
	location, ok := s.prompt("Location to search: ")
	if !ok {
		return false
	}

	results := s.store.SearchByLocation(location)
	if len(results) == 0 {
		fmt.Fprintf(s.out, "No listings found in %s.\n", location)
		return true
	}

	fmt.Fprintf(s.out, "Found %d listing(s) in %s:\n", len(results), location)
	s.renderTable(results)
	return true
}

func (s *Session) searchByPriceRange() bool {
	for {
		min, ok := s.promptPrice("Minimum price: $")
		if !ok {
			return false
		}
		max, ok := s.promptPrice("Maximum price: $")
		if !ok {
			return false
		}
		if min > max {
			fmt.Fprintln(s.out, "Minimum price cannot be greater than maximum price.")
			continue
		}

		results := s.store.SearchByPriceRange(min, max)
		if len(results) == 0 {
			fmt.Fprintf(s.out, "No listings between $%.2f and $%.2f.\n", min, max)
			return true
		}

		fmt.Fprintf(s.out, "Found %d listing(s) between $%.2f and $%.2f:\n", len(results), min, max)
		s.renderTable(results)
		return true
	}
}

func (s *Session) sortByPrice() bool {
	for {
		dir, ok := s.prompt("Sort by price (A)scending or (D)escending? ")
		if !ok {
			return false
		}

		var ascending bool
		switch strings.ToUpper(strings.TrimSpace(dir)) {
		case "A":
			ascending = true
		case "D":
			ascending = false
		default:
			fmt.Fprintln(s.out, "Please enter 'A' or 'D'.")
			continue
		}

		results := s.store.SortByPrice(ascending)
		if len(results) == 0 {
			fmt.Fprintln(s.out, "No listings to sort.")
			return true
		}

		s.renderTable(results)
		return true
	}
}

func (s *Session) displayAll() {
	results := s.store.ListAll()
	if len(results) == 0 {
		fmt.Fprintln(s.out, "No listings found.")
		return
	}

	fmt.Fprintf(s.out, "All listings (%d):\n", len(results))
	s.renderTable(results)
}

func (s *Session) renderTable(items []*listing.Listing) {
	tw := tabwriter.NewWriter(s.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tPRICE\tCATEGORY")
	for _, l := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t$%.2f\t%s\n", l.ID, l.Title, l.Location, l.Price, l.Category)
	}
	_ = tw.Flush()
}

func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

// promptPrice re-prompts until the input parses as a non-negative
// number. False only on end of input.
func (s *Session) promptPrice(label string) (float64, bool) {
	for {
		raw, ok := s.prompt(label)
		if !ok {
			return 0, false
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid price. Please enter a number.")
			continue
		}
		if v < 0 {
			fmt.Fprintln(s.out, "Price cannot be negative. Please try again.")
			continue
		}
		return v, true
	}
}

func (s *Session) promptID(label string) (int64, bool) {
	for {
		raw, ok := s.prompt(label)
		if !ok {
			return 0, false
		}

		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid ID. Please enter a number.")
			continue
		}
		return id, true
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}
