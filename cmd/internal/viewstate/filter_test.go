package viewstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleAccounts() []Account {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []Account{
		{
			ID: "a1", Code: "ACC-001", Name: "Acme Produce", Active: true, CreatedAt: created,
			Contacts: []Contact{
				{Name: "Dana Reyes", Email: "dana@acme.test", Phone: strPtr("(916) 555-0123")},
			},
			Addresses: []Address{
				{Type: AddressBilling, Line1: "12 River Rd", City: "Sacramento", State: "CA", PostalCode: "95814"},
			},
		},
		{
			ID: "a2", Code: "BRV-002", Name: "Brava Farms", Active: true, CreatedAt: created,
			Contacts: []Contact{
				{Name: "Lee Chen", Email: "lee@brava.test", Phone: strPtr("530-222-8888")},
			},
			Addresses: []Address{
				{Type: AddressShipping, Line1: "4 Orchard Ln", Line2: strPtr("Dock B"), City: "Fresno", State: "CA", PostalCode: "93701"},
			},
		},
		{
			ID: "a3", Code: "COA-003", Name: "Coastal Foods", Active: false, CreatedAt: created,
		},
	}
}

func ids(accounts []Account) []AccountID {
	out := make([]AccountID, len(accounts))
	for i, a := range accounts {
		out[i] = a.ID
	}
	return out
}

func search(accounts []Account, q string, orders map[AccountID][]Order) []AccountID {
	v := View{Query: q, Status: StatusAll, Sort: Sort{Field: SortCode, Direction: Ascending}}
	return ids(Project(accounts, v, func(id AccountID) []Order { return orders[id] }))
}

func TestProject_SearchFieldClasses(t *testing.T) {
	accounts := sampleAccounts()

	cases := []struct {
		name  string
		query string
		want  []AccountID
	}{
		{"empty query returns everything", "", []AccountID{"a1", "a2", "a3"}},
		{"blank query returns everything", "   ", []AccountID{"a1", "a2", "a3"}},
		{"name", "acme prod", []AccountID{"a1"}},
		{"name is case insensitive", "COASTAL", []AccountID{"a3"}},
		{"code", "brv", []AccountID{"a2"}},
		{"contact name", "dana", []AccountID{"a1"}},
		{"contact email", "lee@brava", []AccountID{"a2"}},
		{"phone verbatim", "(916) 555-0123", []AccountID{"a1"}},
		{"phone digits only", "9165550123", []AccountID{"a1"}},
		{"phone prefix", "916", []AccountID{"a1"}},
		{"phone mismatch", "917", []AccountID{}},
		{"address city", "fresno", []AccountID{"a2"}},
		{"address line2", "dock b", []AccountID{"a2"}},
		{"postal code", "95814", []AccountID{"a1"}},
		{"state matches both", " ca ", []AccountID{"a1", "a2"}},
		{"no match", "zzz", []AccountID{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, search(accounts, tc.query, nil))
		})
	}
}

func TestProject_SearchCachedOrderNumber(t *testing.T) {
	accounts := sampleAccounts()

	assert.Empty(t, search(accounts, "so-7781", nil), "no cached orders, no match")

	orders := map[AccountID][]Order{
		"a3": {{OrderNo: "SO-7781", Status: OrderPaid}},
	}
	assert.Equal(t, []AccountID{"a3"}, search(accounts, "so-7781", orders))
	assert.Equal(t, []AccountID{"a3"}, search(accounts, "order:7781", orders))
}

func TestProject_FieldTokens(t *testing.T) {
	accounts := sampleAccounts()

	t.Run("single field token", func(t *testing.T) {
		assert.Equal(t, []AccountID{"a1"}, search(accounts, "city:sacramento", nil))
	})

	t.Run("field tokens are combined with AND", func(t *testing.T) {
		assert.Empty(t, search(accounts, "code:acc name:brava", nil))
		assert.Equal(t, []AccountID{"a2"}, search(accounts, "code:brv name:brava", nil))
	})

	t.Run("field token plus general term", func(t *testing.T) {
		assert.Equal(t, []AccountID{"a2"}, search(accounts, "state:ca brava", nil))
	})

	t.Run("phone token strips punctuation", func(t *testing.T) {
		assert.Equal(t, []AccountID{"a2"}, search(accounts, "phone:5302228888", nil))
	})

	t.Run("zip token", func(t *testing.T) {
		assert.Equal(t, []AccountID{"a2"}, search(accounts, "zip:937", nil))
	})

	t.Run("unknown field never matches", func(t *testing.T) {
		assert.Empty(t, search(accounts, "agent:bob", nil))
	})
}

func TestParseQuery(t *testing.T) {
	q := parseQuery("  Acme  city:Fresno  corp ")
	require.Len(t, q.fields, 1)
	assert.Equal(t, fieldTerm{field: "city", value: "fresno"}, q.fields[0])
	assert.Equal(t, []string{"acme", "corp"}, q.terms)

	assert.True(t, parseQuery("   ").empty())
	assert.Equal(t, []string{"acme produce"}, parseQuery("Acme Produce").terms)
}

func TestProject_ColumnFilters(t *testing.T) {
	accounts := sampleAccounts()
	project := func(f ColumnFilters) []AccountID {
		return ids(Project(accounts, View{Columns: f, Status: StatusAll, Sort: Sort{Field: SortCode, Direction: Ascending}}, nil))
	}

	assert.Equal(t, []AccountID{"a1", "a2", "a3"}, project(ColumnFilters{}))
	assert.Equal(t, []AccountID{"a2"}, project(ColumnFilters{Code: "00", Name: "brava"}))
	assert.Equal(t, []AccountID{"a1"}, project(ColumnFilters{Location: "sacramento, ca"}))
	assert.Equal(t, []AccountID{"a3"}, project(ColumnFilters{Status: StatusInactive}))
	assert.Empty(t, project(ColumnFilters{Name: "acme", Status: StatusInactive}))
}

func TestProject_StatusFilterPartitions(t *testing.T) {
	accounts := sampleAccounts()
	queries := []string{"", "ca", "00", "acme", "zzz"}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			view := func(f StatusFilter) []AccountID {
				return ids(Project(accounts, View{Query: q, Status: f, Sort: Sort{Field: SortCode, Direction: Ascending}}, nil))
			}
			all := view(StatusAll)
			active := view(StatusActive)
			inactive := view(StatusInactive)

			union := append(append([]AccountID{}, active...), inactive...)
			assert.ElementsMatch(t, all, union)
			for _, id := range active {
				assert.NotContains(t, inactive, id)
			}
		})
	}
}

func TestAccount_PrimaryResolution(t *testing.T) {
	a := Account{
		Contacts: []Contact{{Name: "first"}, {Name: "flagged", IsPrimary: true}},
		Addresses: []Address{
			{City: "Reno", State: "NV"},
		},
	}

	c, ok := a.PrimaryContact()
	require.True(t, ok)
	assert.Equal(t, "flagged", c.Name)
	assert.Equal(t, "Reno, NV", a.Location())

	a.Contacts[1].IsPrimary = false
	c, _ = a.PrimaryContact()
	assert.Equal(t, "first", c.Name)

	var empty Account
	_, ok = empty.PrimaryContact()
	assert.False(t, ok)
	_, ok = empty.PrimaryAddress()
	assert.False(t, ok)
	assert.Equal(t, "", empty.Location())
	assert.Equal(t, "Inactive", empty.StatusLabel())
}

func TestOrder_Outstanding(t *testing.T) {
	for status, want := range map[OrderStatus]bool{
		OrderDraft:      true,
		OrderConfirmed:  true,
		OrderPostedToQB: true,
		OrderUnpaid:     true,
		OrderPaid:       false,
		OrderCancelled:  false,
	} {
		assert.Equal(t, want, Order{Status: status}.Outstanding(), string(status))
	}
}
