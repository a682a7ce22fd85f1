package viewstate

import (
	"maps"
	"slices"
	"strings"
)

const (
	// PageSize is the number of accounts requested per fetch.
	PageSize = 50
	// RecentOrdersLimit bounds the orders fetched for one account's popover.
	RecentOrdersLimit = 5

	LoadAccountsFailedMessage = "Failed to load accounts"
)

// PageRequest is the pagination window sent to the data source.
type PageRequest struct {
	Limit  int
	Offset int
	Search string
}

// PageTicket identifies a page fetch started by BeginPage. Results of a
// ticket issued before the last Reset are discarded.
type PageTicket struct {
	Request    PageRequest
	generation uint64
}

// PageInfo is the pagination cursor of the list.
type PageInfo struct {
	Offset  int
	HasMore bool
	Loading bool
	Err     error
}

// State is the immutable view state of the accounts list. The zero value is
// not ready for use, start from NewState.
type State struct {
	accounts   []Account
	query      string
	columns    ColumnFilters
	status     StatusFilter
	sort       Sort
	page       PageInfo
	generation uint64
	orders     map[AccountID]OrderEntry
	popover    AccountID
}

func NewState() State {
	return State{
		status: StatusAll,
		sort:   Sort{Field: SortName, Direction: Ascending},
		page:   PageInfo{HasMore: true},
		orders: map[AccountID]OrderEntry{},
	}
}

func (s State) Accounts() []Account { return slices.Clone(s.accounts) }

func (s State) Query() string { return s.query }

func (s State) Columns() ColumnFilters { return s.columns }

func (s State) Status() StatusFilter { return s.status }

func (s State) Sort() Sort { return s.sort }

func (s State) Page() PageInfo { return s.page }

func (s State) HasMore() bool { return s.page.HasMore }

// View returns the projection inputs of the current state.
func (s State) View() View {
	return View{Query: s.query, Columns: s.columns, Status: s.status, Sort: s.sort}
}

// Visible is the filtered and sorted sequence of accounts to render.
func (s State) Visible() []Account {
	return Project(s.accounts, s.View(), s.cachedOrders)
}

// ErrorMessage is the single user-visible error of the list view, or "".
func (s State) ErrorMessage() string {
	if s.page.Err != nil {
		return LoadAccountsFailedMessage
	}
	return ""
}

func (s State) WithQuery(q string) State {
	s.query = q
	return s
}

// ClearsSearch reports whether moving to q empties a non-empty search box.
func (s State) ClearsSearch(q string) bool {
	return strings.TrimSpace(s.query) != "" && strings.TrimSpace(q) == ""
}

func (s State) WithColumns(f ColumnFilters) State {
	s.columns = f
	return s
}

func (s State) WithStatus(f StatusFilter) State {
	if f == "" {
		f = StatusAll
	}
	s.status = f
	return s
}

func (s State) ToggleSort(field SortField) State {
	s.sort = s.sort.Toggle(field)
	return s
}

func (s State) WithSort(sort Sort) State {
	s.sort = sort
	return s
}

// Reset drops every loaded page and rewinds the cursor. Filters, sort and the
// order cache are kept.
func (s State) Reset() State {
	s.accounts = nil
	s.page = PageInfo{HasMore: true}
	s.generation++
	return s
}

// BeginPage starts the next page fetch. It reports false, leaving the state
// untouched, when a fetch is already running or the end was reached.
func (s State) BeginPage() (State, PageTicket, bool) {
	if s.page.Loading || !s.page.HasMore {
		return s, PageTicket{}, false
	}
	s.page.Loading = true
	t := PageTicket{
		Request:    PageRequest{Limit: PageSize, Offset: s.page.Offset},
		generation: s.generation,
	}
	return s, t, true
}

// PageLoaded appends the rows of a finished fetch. A page shorter than the
// page size marks the end of the data.
func (s State) PageLoaded(t PageTicket, rows []Account) State {
	if t.generation != s.generation {
		return s
	}
	if t.Request.Offset == 0 {
		s.accounts = slices.Clone(rows)
	} else {
		s.accounts = slices.Concat(s.accounts, rows)
	}
	s.page = PageInfo{
		Offset:  t.Request.Offset + len(rows),
		HasMore: len(rows) >= t.Request.Limit,
	}
	return s
}

// PageFailed records a failed fetch. Loaded rows stay in place and the same
// page can be requested again.
func (s State) PageFailed(t PageTicket, err error) State {
	if t.generation != s.generation {
		return s
	}
	s.page.Loading = false
	s.page.Err = err
	return s
}

// AccountCreated puts a freshly created account at the top of the list.
func (s State) AccountCreated(a Account) State {
	s.accounts = slices.Concat([]Account{a}, s.accounts)
	return s
}

// OrderState is the lifecycle of one account's cached order list.
type OrderState int

const (
	OrdersAbsent OrderState = iota
	OrdersLoading
	OrdersLoaded
	OrdersFailed
)

func (o OrderState) String() string {
	switch o {
	case OrdersLoading:
		return "loading"
	case OrdersLoaded:
		return "loaded"
	case OrdersFailed:
		return "failed"
	default:
		return "absent"
	}
}

type OrderEntry struct {
	State  OrderState
	Orders []Order
	Err    error
}

// OutstandingCount is the number of orders neither paid nor cancelled.
func (e OrderEntry) OutstandingCount() int {
	n := 0
	for _, o := range e.Orders {
		if o.Outstanding() {
			n++
		}
	}
	return n
}

func (s State) Orders(id AccountID) OrderEntry {
	return s.orders[id]
}

func (s State) OutstandingCount(id AccountID) int {
	return s.orders[id].OutstandingCount()
}

func (s State) cachedOrders(id AccountID) []Order {
	e := s.orders[id]
	if e.State != OrdersLoaded {
		return nil
	}
	return e.Orders
}

// BeginOrders marks id as loading. It reports false when the orders are
// already cached or being fetched; a failed entry may be fetched again.
func (s State) BeginOrders(id AccountID) (State, bool) {
	switch s.orders[id].State {
	case OrdersLoading, OrdersLoaded:
		return s, false
	}
	return s.setOrders(id, OrderEntry{State: OrdersLoading}), true
}

func (s State) OrdersLoaded(id AccountID, orders []Order) State {
	return s.setOrders(id, OrderEntry{State: OrdersLoaded, Orders: slices.Clone(orders)})
}

func (s State) OrdersFailed(id AccountID, err error) State {
	return s.setOrders(id, OrderEntry{State: OrdersFailed, Err: err})
}

func (s State) setOrders(id AccountID, e OrderEntry) State {
	orders := maps.Clone(s.orders)
	if orders == nil {
		orders = map[AccountID]OrderEntry{}
	}
	orders[id] = e
	s.orders = orders
	return s
}

// OpenPopover returns the account whose orders popover is open.
func (s State) OpenPopover() (AccountID, bool) {
	return s.popover, s.popover != ""
}

// TogglePopover opens id's popover, closing any other one. Toggling the
// open popover closes it.
func (s State) TogglePopover(id AccountID) State {
	if s.popover == id {
		s.popover = ""
		return s
	}
	s.popover = id
	return s
}

func (s State) ShowPopover(id AccountID) State {
	s.popover = id
	return s
}

// ClosePopover handles a click anywhere outside the open popover.
func (s State) ClosePopover() State {
	s.popover = ""
	return s
}
