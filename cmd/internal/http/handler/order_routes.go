package handler

import (
	"accountsdesk/cmd/internal/contract"
	"accountsdesk/cmd/internal/utils/apierror"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type OrderService interface {
	GetOrders(q *contract.OrderQuery) (*contract.OrdersPage, apierror.ErrorResponse)
	GetOrderByID(id string) (*contract.OrderResponse, apierror.ErrorResponse)
}

type DefaultOrderRoute struct {
	OrderService OrderService
}

func NewOrderDefault(orderService OrderService) *DefaultOrderRoute {
	return &DefaultOrderRoute{OrderService: orderService}
}

func (o *DefaultOrderRoute) Register(e *echo.Echo) {
	e.GET("/api/orders", o.GetOrders)
	e.GET("/api/orders/:id", o.GetOrder)

	// The dashboard popover still calls the older invoices path
	e.GET("/api/invoices", o.GetOrders)
}

func (o *DefaultOrderRoute) GetOrders(c echo.Context) error {
	var q contract.OrderQuery
	err := echo.QueryParamsBinder(c).
		String("account_id", &q.AccountID).
		String("buyer_id", &q.BuyerID).
		String("seller_id", &q.SellerID).
		String("status", &q.Status).
		String("search", &q.Search).
		Int("limit", &q.Limit).
		BindError()

	var berr *echo.BindingError
	if errors.As(err, &berr) {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError(berr.Field, "int"))
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedQueryError)
	}

	page, apierr := o.OrderService.GetOrders(&q)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, page)
}

func (o *DefaultOrderRoute) GetOrder(c echo.Context) error {
	order, apierr := o.OrderService.GetOrderByID(c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, order)
}
