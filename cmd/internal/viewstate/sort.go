package viewstate

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortField string

const (
	SortCode     SortField = "code"
	SortName     SortField = "name"
	SortLocation SortField = "location"
	SortStatus   SortField = "status"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

func (d SortDirection) flip() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

type Sort struct {
	Field     SortField
	Direction SortDirection
}

// Toggle re-selecting the active field flips the direction, any other field
// starts ascending.
func (s Sort) Toggle(field SortField) Sort {
	if s.Field == field {
		return Sort{Field: field, Direction: s.Direction.flip()}
	}
	return Sort{Field: field, Direction: Ascending}
}

// SortAccounts returns a stably sorted copy of accounts.
func SortAccounts(accounts []Account, s Sort) []Account {
	out := slices.Clone(accounts)
	if s.Field == "" {
		return out
	}

	// collators keep internal buffers and are not safe to share
	col := collate.New(language.English, collate.IgnoreCase)
	cmp := func(a, b Account) int {
		switch s.Field {
		case SortCode:
			return col.CompareString(a.Code, b.Code)
		case SortName:
			return col.CompareString(a.Name, b.Name)
		case SortLocation:
			return col.CompareString(a.Location(), b.Location())
		case SortStatus:
			return compareStatus(a, b)
		}
		return 0
	}

	slices.SortStableFunc(out, func(a, b Account) int {
		if s.Direction == Descending {
			return -cmp(a, b)
		}
		return cmp(a, b)
	})
	return out
}

// active sorts before inactive
func compareStatus(a, b Account) int {
	switch {
	case a.Active == b.Active:
		return 0
	case a.Active:
		return -1
	default:
		return 1
	}
}

// View is the full set of inputs of the projection.
type View struct {
	Query   string
	Columns ColumnFilters
	Status  StatusFilter
	Sort    Sort
}

// Project filters and sorts accounts. ordersFor returns the cached orders of
// an account, or nil when none are cached.
func Project(accounts []Account, v View, ordersFor func(AccountID) []Order) []Account {
	q := parseQuery(v.Query)
	out := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		if !q.empty() {
			var orders []Order
			if ordersFor != nil {
				orders = ordersFor(a.ID)
			}
			if !q.matches(a, orders) {
				continue
			}
		}
		if !v.Columns.allows(a) || !v.Status.allows(a) {
			continue
		}
		out = append(out, a)
	}
	return SortAccounts(out, v.Sort)
}
