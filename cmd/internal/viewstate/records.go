// Package viewstate holds the client-side state of the accounts dashboard:
// the loaded account collection, search/filter/sort settings, the pagination
// cursor and the lazily fetched per-account order lists.
//
// State is an immutable value. Every transition is a method returning a new
// State, so projections can be computed and tested without any rendering
// layer. List and Detail are the effectful drivers performing the fetches.
package viewstate

import (
	"strings"
	"time"
)

// AccountID identifies an account across the whole dashboard.
type AccountID string

type AddressType string

const (
	AddressBilling   AddressType = "billing"
	AddressShipping  AddressType = "shipping"
	AddressWarehouse AddressType = "warehouse"
	AddressPickup    AddressType = "pickup"
)

type OrderStatus string

const (
	OrderDraft      OrderStatus = "draft"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderPostedToQB OrderStatus = "posted_to_qb"
	OrderUnpaid     OrderStatus = "unpaid"
	OrderPaid       OrderStatus = "paid"
	OrderCancelled  OrderStatus = "cancelled"
)

type Address struct {
	Type       AddressType
	Line1      string
	Line2      *string
	City       string
	State      string
	PostalCode string
	Country    string
	IsPrimary  bool
}

type Contact struct {
	Name      string
	Email     string
	Phone     *string
	IsPrimary bool
}

type Account struct {
	ID        AccountID
	Code      string
	Name      string
	Active    bool
	CreatedAt time.Time
	Addresses []Address
	Contacts  []Contact
}

type LineItem struct {
	ProductCode string
	Quantity    float64
	LineTotal   int64
}

// Order is the read-only projection of an order shown in an account's
// recent orders popover. Amounts are in cents.
type Order struct {
	ID          string
	OrderNo     string
	OrderDate   time.Time
	Status      OrderStatus
	SellerID    AccountID
	SellerName  string
	BuyerID     AccountID
	BuyerName   string
	DocNumber   *string
	Lines       []LineItem
	TotalAmount int64
}

// Outstanding reports whether the order still awaits settlement.
func (o Order) Outstanding() bool {
	return o.Status != OrderPaid && o.Status != OrderCancelled
}

// PrimaryContact returns the flagged primary contact, or the first one when
// none is flagged.
func (a Account) PrimaryContact() (Contact, bool) {
	for _, c := range a.Contacts {
		if c.IsPrimary {
			return c, true
		}
	}
	if len(a.Contacts) > 0 {
		return a.Contacts[0], true
	}
	return Contact{}, false
}

// PrimaryAddress follows the same rule as PrimaryContact.
func (a Account) PrimaryAddress() (Address, bool) {
	for _, addr := range a.Addresses {
		if addr.IsPrimary {
			return addr, true
		}
	}
	if len(a.Addresses) > 0 {
		return a.Addresses[0], true
	}
	return Address{}, false
}

// Location is the "city, state" string of the primary address, or "" when
// the account has no addresses.
func (a Account) Location() string {
	addr, ok := a.PrimaryAddress()
	if !ok {
		return ""
	}
	return addr.City + ", " + addr.State
}

// StatusLabel is the text rendered in the status column.
func (a Account) StatusLabel() string {
	if a.Active {
		return "Active"
	}
	return "Inactive"
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
