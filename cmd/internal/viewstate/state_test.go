package viewstate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAccounts(prefix string, n int) []Account {
	out := make([]Account, n)
	for i := range out {
		out[i] = Account{
			ID:     AccountID(fmt.Sprintf("%s-%03d", prefix, i)),
			Code:   fmt.Sprintf("%s-%03d", prefix, i),
			Name:   fmt.Sprintf("Account %s %03d", prefix, i),
			Active: i%2 == 0,
		}
	}
	return out
}

func TestNewState_Defaults(t *testing.T) {
	s := NewState()

	assert.Equal(t, Sort{Field: SortName, Direction: Ascending}, s.Sort())
	assert.Equal(t, StatusAll, s.Status())
	assert.True(t, s.HasMore())
	assert.Empty(t, s.Accounts())
	assert.Empty(t, s.ErrorMessage())
	_, open := s.OpenPopover()
	assert.False(t, open)
}

func TestState_Pagination(t *testing.T) {
	s := NewState()

	s, first, ok := s.BeginPage()
	require.True(t, ok)
	assert.Equal(t, PageRequest{Limit: PageSize, Offset: 0}, first.Request)
	assert.True(t, s.Page().Loading)

	_, _, ok = s.BeginPage()
	assert.False(t, ok, "a second fetch cannot start while one is running")

	s = s.PageLoaded(first, makeAccounts("p1", 50))
	assert.Len(t, s.Accounts(), 50)
	assert.True(t, s.HasMore())
	assert.False(t, s.Page().Loading)

	s, second, ok := s.BeginPage()
	require.True(t, ok)
	assert.Equal(t, 50, second.Request.Offset)

	s = s.PageLoaded(second, makeAccounts("p2", 12))
	assert.Len(t, s.Accounts(), 62)
	assert.False(t, s.HasMore())
	assert.Equal(t, 62, s.Page().Offset)

	_, _, ok = s.BeginPage()
	assert.False(t, ok, "no fetch after the last page")
}

func TestState_PageFailedKeepsRows(t *testing.T) {
	s := NewState()
	s, first, _ := s.BeginPage()
	s = s.PageLoaded(first, makeAccounts("p1", 50))

	s, second, ok := s.BeginPage()
	require.True(t, ok)
	s = s.PageFailed(second, errors.New("boom"))

	assert.Len(t, s.Accounts(), 50)
	assert.Equal(t, LoadAccountsFailedMessage, s.ErrorMessage())
	assert.True(t, s.HasMore())

	s, retry, ok := s.BeginPage()
	require.True(t, ok, "the failed page can be requested again")
	assert.Equal(t, 50, retry.Request.Offset)

	s = s.PageLoaded(retry, makeAccounts("p2", 3))
	assert.Empty(t, s.ErrorMessage())
	assert.Len(t, s.Accounts(), 53)
}

func TestState_ResetDiscardsStalePages(t *testing.T) {
	s := NewState()
	s, stale, _ := s.BeginPage()

	s = s.Reset()
	s, fresh, ok := s.BeginPage()
	require.True(t, ok)

	s = s.PageLoaded(stale, makeAccounts("old", 50))
	assert.Empty(t, s.Accounts(), "results of a ticket issued before Reset are dropped")
	assert.True(t, s.Page().Loading)

	s = s.PageLoaded(fresh, makeAccounts("new", 7))
	assert.Len(t, s.Accounts(), 7)
	assert.False(t, s.HasMore())

	s = s.PageFailed(stale, errors.New("late"))
	assert.Empty(t, s.ErrorMessage())
}

func TestState_ResetKeepsSettingsAndCache(t *testing.T) {
	s := NewState().
		WithQuery("acme").
		WithStatus(StatusInactive).
		ToggleSort(SortCode).
		OrdersLoaded("a1", []Order{{OrderNo: "SO-1"}})

	s = s.Reset()
	assert.Equal(t, "acme", s.Query())
	assert.Equal(t, StatusInactive, s.Status())
	assert.Equal(t, SortCode, s.Sort().Field)
	assert.Equal(t, OrdersLoaded, s.Orders("a1").State)
}

func TestState_ClearsSearch(t *testing.T) {
	s := NewState()
	assert.False(t, s.ClearsSearch(""))

	s = s.WithQuery("acme")
	assert.True(t, s.ClearsSearch(""))
	assert.True(t, s.ClearsSearch("   "))
	assert.False(t, s.ClearsSearch("acm"))
}

func TestState_WithStatusDefaultsToAll(t *testing.T) {
	assert.Equal(t, StatusAll, NewState().WithStatus("").Status())
}

func TestState_AccountCreatedPrepends(t *testing.T) {
	s := NewState()
	s, ticket, _ := s.BeginPage()
	s = s.PageLoaded(ticket, makeAccounts("p", 2))

	s = s.AccountCreated(Account{ID: "fresh", Name: "Fresh"})
	assert.Equal(t, AccountID("fresh"), s.Accounts()[0].ID)
	assert.Len(t, s.Accounts(), 3)
}

func TestState_OrderCacheTransitions(t *testing.T) {
	s := NewState()
	assert.Equal(t, OrdersAbsent, s.Orders("a1").State)

	s, ok := s.BeginOrders("a1")
	require.True(t, ok)
	assert.Equal(t, OrdersLoading, s.Orders("a1").State)

	_, ok = s.BeginOrders("a1")
	assert.False(t, ok, "in-flight entries are not fetched twice")

	s = s.OrdersFailed("a1", errors.New("down"))
	assert.Equal(t, OrdersFailed, s.Orders("a1").State)
	assert.Error(t, s.Orders("a1").Err)
	assert.Empty(t, s.ErrorMessage(), "order failures stay out of the list error")

	s, ok = s.BeginOrders("a1")
	require.True(t, ok, "failed entries can be retried")

	s = s.OrdersLoaded("a1", []Order{
		{OrderNo: "SO-1", Status: OrderPaid},
		{OrderNo: "SO-2", Status: OrderUnpaid},
		{OrderNo: "SO-3", Status: OrderDraft},
		{OrderNo: "SO-4", Status: OrderCancelled},
	})
	assert.Equal(t, OrdersLoaded, s.Orders("a1").State)
	assert.Equal(t, 2, s.OutstandingCount("a1"))
	assert.Equal(t, 0, s.OutstandingCount("a2"))

	_, ok = s.BeginOrders("a1")
	assert.False(t, ok, "loaded entries are memoized")

	assert.Equal(t, "loaded", OrdersLoaded.String())
	assert.Equal(t, "absent", OrdersAbsent.String())
}

func TestState_TransitionsDoNotMutatePrevious(t *testing.T) {
	before := NewState()
	after := before.OrdersLoaded("a1", []Order{{OrderNo: "SO-1"}})

	assert.Equal(t, OrdersAbsent, before.Orders("a1").State)
	assert.Equal(t, OrdersLoaded, after.Orders("a1").State)

	withRows := NewState()
	withRows, ticket, _ := withRows.BeginPage()
	withRows = withRows.PageLoaded(ticket, makeAccounts("p", 3))
	grown := withRows.AccountCreated(Account{ID: "x"})

	assert.Len(t, withRows.Accounts(), 3)
	assert.Len(t, grown.Accounts(), 4)
}

func TestState_Popover(t *testing.T) {
	s := NewState()

	s = s.TogglePopover("x")
	open, ok := s.OpenPopover()
	require.True(t, ok)
	assert.Equal(t, AccountID("x"), open)

	s = s.TogglePopover("y")
	open, _ = s.OpenPopover()
	assert.Equal(t, AccountID("y"), open, "at most one popover is open")

	s = s.TogglePopover("y")
	_, ok = s.OpenPopover()
	assert.False(t, ok)

	s = s.ShowPopover("x").ShowPopover("x")
	open, _ = s.OpenPopover()
	assert.Equal(t, AccountID("x"), open)

	s = s.ClosePopover()
	_, ok = s.OpenPopover()
	assert.False(t, ok)
}

func TestState_VisibleUsesCachedOrders(t *testing.T) {
	s := NewState()
	s, ticket, _ := s.BeginPage()
	s = s.PageLoaded(ticket, sampleAccounts())
	s = s.WithQuery("SO-42")

	assert.Empty(t, s.Visible())

	s, _ = s.BeginOrders("a2")
	assert.Empty(t, s.Visible(), "loading entries are not searched")

	s = s.OrdersLoaded("a2", []Order{{OrderNo: "SO-42"}})
	assert.Equal(t, []AccountID{"a2"}, ids(s.Visible()))
}
