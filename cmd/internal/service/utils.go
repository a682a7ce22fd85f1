package service

import (
	"accountsdesk/cmd/internal/contract"
	"accountsdesk/cmd/internal/domain/entity"
	"accountsdesk/cmd/internal/utils"

	"github.com/google/uuid"
)

func toAccountResponse(a *entity.Account) *contract.AccountResponse {
	return &contract.AccountResponse{
		ID:        a.ID,
		Code:      a.Code,
		Name:      a.Name,
		Active:    a.Active,
		Addresses: toAddressResponses(a.Addresses),
		Contacts:  toContactResponses(a.Contacts),
		CreatedAt: utils.FormatEpoch(a.CreatedAt),
		UpdatedAt: utils.FormatEpoch(a.UpdatedAt),
	}
}

func toAddressResponses(as []*entity.Address) []*contract.AddressResponse {
	resp := make([]*contract.AddressResponse, len(as))
	for i, a := range as {
		resp[i] = toAddressResponse(a)
	}
	return resp
}

func toAddressResponse(a *entity.Address) *contract.AddressResponse {
	return &contract.AddressResponse{
		ID:         a.ID,
		AccountID:  a.AccountID,
		Type:       string(a.Type),
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		IsPrimary:  a.IsPrimary,
		CreatedAt:  utils.FormatEpoch(a.CreatedAt),
	}
}

func toContactResponses(cs []*entity.Contact) []*contract.ContactResponse {
	resp := make([]*contract.ContactResponse, len(cs))
	for i, c := range cs {
		resp[i] = toContactResponse(c)
	}
	return resp
}

func toContactResponse(c *entity.Contact) *contract.ContactResponse {
	return &contract.ContactResponse{
		ID:        c.ID,
		AccountID: c.AccountID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		IsPrimary: c.IsPrimary,
		CreatedAt: utils.FormatEpoch(c.CreatedAt),
	}
}

func toAddressEntity(accountID string, req *contract.CreateAddressRequest, now int64) *entity.Address {
	country := req.Country
	if country == "" {
		country = entity.DefaultCountry
	}
	return &entity.Address{
		ID:         uuid.NewString(),
		AccountID:  accountID,
		Type:       entity.AddressType(req.Type),
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    country,
		IsPrimary:  req.IsPrimary,
		CreatedAt:  now,
	}
}

func toContactEntity(accountID string, req *contract.CreateContactRequest, now int64) *entity.Contact {
	return &entity.Contact{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		IsPrimary: req.IsPrimary,
		CreatedAt: now,
	}
}

func toOrderResponse(o *entity.Order) *contract.OrderResponse {
	lines := make([]*contract.OrderLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = &contract.OrderLineResponse{
			ProductCode: l.ProductCode,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			LineTotal:   l.LineTotal,
		}
	}

	return &contract.OrderResponse{
		ID:          o.ID,
		OrderNo:     o.OrderNo,
		OrderDate:   utils.FormatEpoch(o.OrderDate),
		Status:      string(o.Status),
		Seller:      toPartyResponse(o.SellerID, &o.Seller),
		Buyer:       toPartyResponse(o.BuyerID, &o.Buyer),
		DocNumber:   o.DocNumber,
		TotalAmount: o.TotalAmount,
		Lines:       lines,
	}
}

func toPartyResponse(id string, a *entity.Account) contract.PartyResponse {
	return contract.PartyResponse{ID: id, Code: a.Code, Name: a.Name}
}
