package viewstate

import (
	"context"
	"fmt"
	"sync"
)

// AccountSource serves pages of accounts.
type AccountSource interface {
	ListAccounts(ctx context.Context, page PageRequest) ([]Account, error)
}

// OrderSource serves the most recent orders of one account.
type OrderSource interface {
	ListAccountOrders(ctx context.Context, id AccountID, limit int) ([]Order, error)
}

// List drives State against the remote sources. Transitions are serialized
// under a mutex and fetches run outside of it, so List is safe for
// concurrent callers.
type List struct {
	mu       sync.Mutex
	state    State
	accounts AccountSource
	orders   OrderSource
}

func NewList(accounts AccountSource, orders OrderSource) *List {
	return &List{
		state:    NewState(),
		accounts: accounts,
		orders:   orders,
	}
}

// State returns a snapshot of the current state.
func (l *List) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *List) update(fn func(State) State) State {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = fn(l.state)
	return l.state
}

// Load discards every loaded page and fetches the first one.
func (l *List) Load(ctx context.Context) error {
	l.update(State.Reset)
	return l.LoadMore(ctx)
}

// LoadMore fetches the next page. It does nothing when a fetch is already
// running or the last page was reached.
func (l *List) LoadMore(ctx context.Context) error {
	l.mu.Lock()
	next, ticket, ok := l.state.BeginPage()
	l.state = next
	l.mu.Unlock()
	if !ok {
		return nil
	}

	rows, err := l.accounts.ListAccounts(ctx, ticket.Request)
	if err != nil {
		err = fmt.Errorf("list accounts at offset %d: %w", ticket.Request.Offset, err)
		l.update(func(s State) State { return s.PageFailed(ticket, err) })
		return err
	}
	l.update(func(s State) State { return s.PageLoaded(ticket, rows) })
	return nil
}

// SetQuery updates the search box. Clearing a non-empty query back to empty
// reloads the list from the first page.
func (l *List) SetQuery(ctx context.Context, q string) error {
	l.mu.Lock()
	reload := l.state.ClearsSearch(q)
	l.state = l.state.WithQuery(q)
	l.mu.Unlock()

	if reload {
		return l.Load(ctx)
	}
	return nil
}

func (l *List) SetColumns(f ColumnFilters) {
	l.update(func(s State) State { return s.WithColumns(f) })
}

func (l *List) SetStatus(f StatusFilter) {
	l.update(func(s State) State { return s.WithStatus(f) })
}

func (l *List) ToggleSort(field SortField) {
	l.update(func(s State) State { return s.ToggleSort(field) })
}

// SetSort replaces the sort outright, whatever the current one is.
func (l *List) SetSort(sort Sort) {
	l.update(func(s State) State { return s.WithSort(sort) })
}

// AccountCreated records the result of the create account workflow.
func (l *List) AccountCreated(a Account) {
	l.update(func(s State) State { return s.AccountCreated(a) })
}

// ToggleOrders handles a click on an account's orders button: the popover
// opens (closing any other) and its orders are fetched once.
func (l *List) ToggleOrders(ctx context.Context, id AccountID) error {
	s := l.update(func(s State) State { return s.TogglePopover(id) })
	if open, ok := s.OpenPopover(); !ok || open != id {
		return nil
	}
	return l.FetchOrders(ctx, id)
}

// OpenOrders opens id's popover without toggling.
func (l *List) OpenOrders(ctx context.Context, id AccountID) error {
	l.update(func(s State) State { return s.ShowPopover(id) })
	return l.FetchOrders(ctx, id)
}

// ClickOutside closes the open popover. A running fetch is not cancelled,
// its result is still cached.
func (l *List) ClickOutside() {
	l.update(State.ClosePopover)
}

// FetchOrders loads id's recent orders unless they are cached or already
// being fetched. Failures stay confined to id's cache entry.
func (l *List) FetchOrders(ctx context.Context, id AccountID) error {
	l.mu.Lock()
	next, ok := l.state.BeginOrders(id)
	l.state = next
	l.mu.Unlock()
	if !ok {
		return nil
	}

	orders, err := l.orders.ListAccountOrders(ctx, id, RecentOrdersLimit)
	if err != nil {
		err = fmt.Errorf("list orders of account %s: %w", id, err)
		l.update(func(s State) State { return s.OrdersFailed(id, err) })
		return err
	}
	if len(orders) > RecentOrdersLimit {
		orders = orders[:RecentOrdersLimit]
	}
	l.update(func(s State) State { return s.OrdersLoaded(id, orders) })
	return nil
}
