package accountsapi

import (
	"accountsdesk/cmd/internal/contract"
	"accountsdesk/cmd/internal/viewstate"
	"encoding/json"
	"slices"
	"strings"
	"time"
)

type errorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// errorMessage flattens either error body shape of the service into one
// line, fields sorted by name.
func errorMessage(raw []byte) string {
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if body.Message != "" {
		return body.Message
	}

	fields := make([]string, 0, len(body.Errors))
	for field := range body.Errors {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(body.Errors[field], ", "))
	}
	return strings.Join(parts, "; ")
}

func accountsToDomain(rs []*contract.AccountResponse) []viewstate.Account {
	accounts := make([]viewstate.Account, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			accounts = append(accounts, accountToDomain(r))
		}
	}
	return accounts
}

func accountToDomain(r *contract.AccountResponse) viewstate.Account {
	addresses := make([]viewstate.Address, 0, len(r.Addresses))
	for _, a := range r.Addresses {
		addresses = append(addresses, viewstate.Address{
			Type:       viewstate.AddressType(a.Type),
			Line1:      a.Line1,
			Line2:      a.Line2,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
			IsPrimary:  a.IsPrimary,
		})
	}

	contacts := make([]viewstate.Contact, 0, len(r.Contacts))
	for _, c := range r.Contacts {
		contacts = append(contacts, viewstate.Contact{
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			IsPrimary: c.IsPrimary,
		})
	}

	return viewstate.Account{
		ID:        viewstate.AccountID(r.ID),
		Code:      r.Code,
		Name:      r.Name,
		Active:    r.Active,
		CreatedAt: parseTime(r.CreatedAt),
		Addresses: addresses,
		Contacts:  contacts,
	}
}

func ordersToDomain(rs []*contract.OrderResponse) []viewstate.Order {
	orders := make([]viewstate.Order, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			orders = append(orders, orderToDomain(r))
		}
	}
	return orders
}

func orderToDomain(r *contract.OrderResponse) viewstate.Order {
	lines := make([]viewstate.LineItem, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, viewstate.LineItem{
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
			LineTotal:   l.LineTotal,
		})
	}

	return viewstate.Order{
		ID:          r.ID,
		OrderNo:     r.OrderNo,
		OrderDate:   parseTime(r.OrderDate),
		Status:      viewstate.OrderStatus(r.Status),
		SellerID:    viewstate.AccountID(r.Seller.ID),
		SellerName:  r.Seller.Name,
		BuyerID:     viewstate.AccountID(r.Buyer.ID),
		BuyerName:   r.Buyer.Name,
		DocNumber:   r.DocNumber,
		Lines:       lines,
		TotalAmount: r.TotalAmount,
	}
}

func addressRequest(f *viewstate.AddressForm) *contract.CreateAddressRequest {
	return &contract.CreateAddressRequest{
		Type:       string(f.Type),
		Line1:      f.Line1,
		Line2:      f.Line2,
		City:       f.City,
		State:      f.State,
		PostalCode: f.PostalCode,
		Country:    f.Country,
		IsPrimary:  f.IsPrimary,
	}
}

func contactRequest(f *viewstate.ContactForm) *contract.CreateContactRequest {
	return &contract.CreateContactRequest{
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		IsPrimary: f.IsPrimary,
	}
}

// parseTime reads the RFC3339 timestamps of the service, zero on garbage.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
