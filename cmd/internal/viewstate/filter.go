package viewstate

import (
	"regexp"
	"strings"
)

type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = "active"
	StatusInactive StatusFilter = "inactive"
)

func (f StatusFilter) allows(a Account) bool {
	switch f {
	case StatusActive:
		return a.Active
	case StatusInactive:
		return !a.Active
	default:
		return true
	}
}

// ColumnFilters are the per-column inputs of the grid header. Every non-empty
// filter must pass.
type ColumnFilters struct {
	Code     string
	Name     string
	Location string
	Status   StatusFilter
}

// IsZero reports whether no column filter is set.
func (f ColumnFilters) IsZero() bool {
	return f.Code == "" && f.Name == "" && f.Location == "" &&
		(f.Status == "" || f.Status == StatusAll)
}

func (f ColumnFilters) allows(a Account) bool {
	if f.Code != "" && !containsFold(a.Code, f.Code) {
		return false
	}
	if f.Name != "" && !containsFold(a.Name, f.Name) {
		return false
	}
	if f.Location != "" && !containsFold(a.Location(), f.Location) {
		return false
	}
	return f.Status.allows(a)
}

var fieldToken = regexp.MustCompile(`(\w+):(\S+)`)

type fieldTerm struct {
	field string
	value string
}

// searchQuery is a parsed search box input. "field:value" tokens must all
// match; the remaining text forms general terms of which any may match.
type searchQuery struct {
	fields []fieldTerm
	terms  []string
}

func parseQuery(raw string) searchQuery {
	query := strings.ToLower(strings.TrimSpace(raw))
	if query == "" {
		return searchQuery{}
	}

	var q searchQuery
	last := 0
	for _, m := range fieldToken.FindAllStringSubmatchIndex(query, -1) {
		if m[0] > last {
			if term := strings.TrimSpace(query[last:m[0]]); term != "" {
				q.terms = append(q.terms, term)
			}
		}
		q.fields = append(q.fields, fieldTerm{field: query[m[2]:m[3]], value: query[m[4]:m[5]]})
		last = m[1]
	}
	if last < len(query) {
		if term := strings.TrimSpace(query[last:]); term != "" {
			q.terms = append(q.terms, term)
		}
	}
	return q
}

func (q searchQuery) empty() bool {
	return len(q.fields) == 0 && len(q.terms) == 0
}

// matches evaluates the query against an account and the orders cached for
// it. orders may be nil.
func (q searchQuery) matches(a Account, orders []Order) bool {
	for _, ft := range q.fields {
		if !matchField(a, orders, ft) {
			return false
		}
	}
	if len(q.terms) == 0 {
		return true
	}
	for _, term := range q.terms {
		if matchTerm(a, orders, term) {
			return true
		}
	}
	return false
}

func matchTerm(a Account, orders []Order, term string) bool {
	if containsFold(a.Name, term) || containsFold(a.Code, term) {
		return true
	}
	if matchContacts(a, term) {
		return true
	}
	for _, addr := range a.Addresses {
		if containsFold(addr.Line1, term) ||
			containsFold(optional(addr.Line2), term) ||
			containsFold(addr.City, term) ||
			containsFold(addr.State, term) ||
			containsFold(addr.PostalCode, term) {
			return true
		}
	}
	return matchOrders(orders, term)
}

func matchField(a Account, orders []Order, ft fieldTerm) bool {
	v := ft.value
	switch ft.field {
	case "name":
		return containsFold(a.Name, v)
	case "code":
		return containsFold(a.Code, v)
	case "email":
		for _, c := range a.Contacts {
			if containsFold(c.Email, v) {
				return true
			}
		}
	case "contact":
		return matchContacts(a, v)
	case "phone":
		for _, c := range a.Contacts {
			if matchPhone(c.Phone, v) {
				return true
			}
		}
	case "address", "city":
		for _, addr := range a.Addresses {
			if containsFold(addr.City, v) ||
				containsFold(addr.State, v) ||
				containsFold(addr.Line1, v) ||
				containsFold(optional(addr.Line2), v) {
				return true
			}
		}
	case "state":
		for _, addr := range a.Addresses {
			if containsFold(addr.State, v) {
				return true
			}
		}
	case "zip", "postal":
		for _, addr := range a.Addresses {
			if containsFold(addr.PostalCode, v) {
				return true
			}
		}
	case "order":
		return matchOrders(orders, v)
	}
	return false
}

func matchContacts(a Account, term string) bool {
	for _, c := range a.Contacts {
		if containsFold(c.Name, term) || containsFold(c.Email, term) || matchPhone(c.Phone, term) {
			return true
		}
	}
	return false
}

// matchPhone compares verbatim first, then with every non-digit stripped
// from both sides, so "(916) 555-0123" matches "9165550123".
func matchPhone(phone *string, term string) bool {
	if phone == nil || *phone == "" {
		return false
	}
	if containsFold(*phone, term) {
		return true
	}
	digits := digitsOnly(term)
	if digits == "" {
		return false
	}
	return strings.Contains(digitsOnly(*phone), digits)
}

func matchOrders(orders []Order, term string) bool {
	for _, o := range orders {
		if containsFold(o.OrderNo, term) {
			return true
		}
	}
	return false
}

func containsFold(s, sub string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
