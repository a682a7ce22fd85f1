package service

import (
	"accountsdesk/cmd/internal/contract"
	"accountsdesk/cmd/internal/domain/entity"
	"accountsdesk/cmd/internal/domain/sqlite/repository"
	"accountsdesk/cmd/internal/utils"
	"accountsdesk/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type OrderRepository interface {
	FindRecent(f repository.OrderFilter) ([]*entity.Order, error)
	FindByID(id string) (*entity.Order, error)
}

type DefaultOrderService struct {
	OrderRepo OrderRepository
	Validate  *validator.Validate
}

func NewOrderService(orderRepo OrderRepository, validate *validator.Validate) *DefaultOrderService {
	return &DefaultOrderService{
		OrderRepo: orderRepo,
		Validate:  validate,
	}
}

// GetOrders lists orders most recent first. Every ID in q must be a valid
// UUID when set.
func (o *DefaultOrderService) GetOrders(q *contract.OrderQuery) (*contract.OrdersPage, apierror.ErrorResponse) {
	utils.Sanitize(q)
	if valerr := o.Validate.Struct(q); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	for _, id := range []string{q.AccountID, q.BuyerID, q.SellerID} {
		if id != "" && !isValidID(id) {
			return nil, apierror.InvalidIDError
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = contract.DefaultPageLimit
	}

	orders, err := o.OrderRepo.FindRecent(repository.OrderFilter{
		AccountID: q.AccountID,
		BuyerID:   q.BuyerID,
		SellerID:  q.SellerID,
		Status:    entity.OrderStatus(q.Status),
		Search:    q.Search,
		Limit:     utils.Clamp(limit, 1, contract.MaxOrderLimit),
	})
	if err != nil {
		log.Errorf("failed to fetch orders: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = toOrderResponse(order)
	}
	return &contract.OrdersPage{Orders: resp}, nil
}

func (o *DefaultOrderService) GetOrderByID(id string) (*contract.OrderResponse, apierror.ErrorResponse) {
	if !isValidID(id) {
		return nil, apierror.InvalidIDError
	}

	order, err := o.OrderRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch order %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if order == nil {
		return nil, apierror.OrderNotFoundError
	}
	return toOrderResponse(order), nil
}
