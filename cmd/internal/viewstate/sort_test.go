package viewstate

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort_Toggle(t *testing.T) {
	s := Sort{Field: SortName, Direction: Ascending}

	s = s.Toggle(SortName)
	assert.Equal(t, Sort{Field: SortName, Direction: Descending}, s)

	s = s.Toggle(SortName)
	assert.Equal(t, Sort{Field: SortName, Direction: Ascending}, s)

	s = s.Toggle(SortName).Toggle(SortCode)
	assert.Equal(t, Sort{Field: SortCode, Direction: Ascending}, s, "a new field starts ascending")
}

func TestSortAccounts_ByField(t *testing.T) {
	accounts := sampleAccounts()

	cases := []struct {
		field SortField
		want  []AccountID
	}{
		{SortCode, []AccountID{"a1", "a2", "a3"}},
		{SortName, []AccountID{"a1", "a2", "a3"}},
		// "" < "Fresno, CA" < "Sacramento, CA"
		{SortLocation, []AccountID{"a3", "a2", "a1"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.field), func(t *testing.T) {
			asc := ids(SortAccounts(accounts, Sort{Field: tc.field, Direction: Ascending}))
			desc := ids(SortAccounts(accounts, Sort{Field: tc.field, Direction: Descending}))

			assert.Equal(t, tc.want, asc)
			reversed := slices.Clone(desc)
			slices.Reverse(reversed)
			assert.Equal(t, asc, reversed, "descending is the reverse of ascending")
		})
	}
}

func TestSortAccounts_Status(t *testing.T) {
	accounts := []Account{
		{ID: "off", Active: false},
		{ID: "on", Active: true},
	}

	assert.Equal(t, []AccountID{"on", "off"}, ids(SortAccounts(accounts, Sort{Field: SortStatus, Direction: Ascending})))
	assert.Equal(t, []AccountID{"off", "on"}, ids(SortAccounts(accounts, Sort{Field: SortStatus, Direction: Descending})))
}

func TestSortAccounts_LocaleAware(t *testing.T) {
	accounts := []Account{
		{ID: "z", Name: "Zebra Inc"},
		{ID: "e", Name: "éclair Co"},
		{ID: "b", Name: "banana Bros"},
		{ID: "a", Name: "Apple Farms"},
	}

	got := ids(SortAccounts(accounts, Sort{Field: SortName, Direction: Ascending}))
	assert.Equal(t, []AccountID{"a", "b", "e", "z"}, got)
}

func TestSortAccounts_StableAndPure(t *testing.T) {
	accounts := []Account{
		{ID: "first", Name: "Same"},
		{ID: "second", Name: "same"},
		{ID: "third", Name: "Alpha"},
	}

	got := ids(SortAccounts(accounts, Sort{Field: SortName, Direction: Ascending}))
	assert.Equal(t, []AccountID{"third", "first", "second"}, got)
	assert.Equal(t, []AccountID{"first", "second", "third"}, ids(accounts), "input slice untouched")

	assert.Equal(t, ids(accounts), ids(SortAccounts(accounts, Sort{})), "no sort field keeps order")
}
