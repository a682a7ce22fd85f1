package handler

import (
	"accountsdesk/cmd/internal/contract"
	"accountsdesk/cmd/internal/utils/apierror"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

type AccountService interface {
	GetAccounts(limit, offset int, search string) (*contract.AccountsPage, apierror.ErrorResponse)
	GetAccountByID(id string) (*contract.AccountResponse, apierror.ErrorResponse)
	CreateAccount(req *contract.CreateAccountRequest) (*contract.AccountResponse, apierror.ErrorResponse)
	UpdateAccount(id string, req *contract.UpdateAccountRequest) (*contract.AccountResponse, apierror.ErrorResponse)
	GetAddresses(accountID string) ([]*contract.AddressResponse, apierror.ErrorResponse)
	CreateAddress(accountID string, req *contract.CreateAddressRequest) (*contract.AddressResponse, apierror.ErrorResponse)
	GetContacts(accountID string) ([]*contract.ContactResponse, apierror.ErrorResponse)
	CreateContact(accountID string, req *contract.CreateContactRequest) (*contract.ContactResponse, apierror.ErrorResponse)
}

type DefaultAccountRoute struct {
	AccountService AccountService
}

func NewAccountDefault(accountService AccountService) *DefaultAccountRoute {
	return &DefaultAccountRoute{AccountService: accountService}
}

func (a *DefaultAccountRoute) Register(e *echo.Echo) {
	e.GET("/api/accounts", a.GetAccounts)
	e.POST("/api/accounts", a.CreateAccount)
	e.GET("/api/accounts/:id", a.GetAccount)
	e.PATCH("/api/accounts/:id", a.UpdateAccount)
	e.GET("/api/accounts/:id/addresses", a.GetAddresses)
	e.POST("/api/accounts/:id/addresses", a.CreateAddress)
	e.GET("/api/accounts/:id/contacts", a.GetContacts)
	e.POST("/api/accounts/:id/contacts", a.CreateContact)
}

func (a *DefaultAccountRoute) GetAccounts(c echo.Context) error {
	limit, perr := queryInt(c, "limit")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	offset, perr := queryInt(c, "offset")
	if perr != nil {
		return c.JSON(perr.Code(), perr)
	}

	page, apierr := a.AccountService.GetAccounts(limit, offset, c.QueryParam("search"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, page)
}

func (a *DefaultAccountRoute) GetAccount(c echo.Context) error {
	account, apierr := a.AccountService.GetAccountByID(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, account)
}

func (a *DefaultAccountRoute) CreateAccount(c echo.Context) error {
	var req contract.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	account, apierr := a.AccountService.CreateAccount(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, account)
}

func (a *DefaultAccountRoute) UpdateAccount(c echo.Context) error {
	var req contract.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	account, apierr := a.AccountService.UpdateAccount(c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, account)
}

func (a *DefaultAccountRoute) GetAddresses(c echo.Context) error {
	addresses, apierr := a.AccountService.GetAddresses(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"addresses": addresses}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAccountRoute) CreateAddress(c echo.Context) error {
	var req contract.CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	address, apierr := a.AccountService.CreateAddress(c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, address)
}

func (a *DefaultAccountRoute) GetContacts(c echo.Context) error {
	contacts, apierr := a.AccountService.GetContacts(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"contacts": contacts}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAccountRoute) CreateContact(c echo.Context) error {
	var req contract.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	contact, apierr := a.AccountService.CreateContact(c.Param("id"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, contact)
}

// queryInt reads an optional integer query parameter, 0 when absent.
func queryInt(c echo.Context, name string) (int, *apierror.APIError) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierror.NewInvalidParamTypeError(name, "int")
	}
	return v, nil
}
