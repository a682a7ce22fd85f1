package repository

import (
	"accountsdesk/cmd/internal/domain/entity"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// OrderFilter narrows FindRecent. Empty fields are ignored. AccountID matches
// orders where the account is either buyer or seller.
type OrderFilter struct {
	AccountID string
	BuyerID   string
	SellerID  string
	Status    entity.OrderStatus
	Search    string
	Limit     int
}

type DefaultOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{db: db}
}

// FindRecent returns orders most recent first, with both parties and the
// line items preloaded.
func (r *DefaultOrderRepository) FindRecent(f OrderFilter) ([]*entity.Order, error) {
	query := r.withRelations()
	if f.AccountID != "" {
		query = query.Where("buyer_id = ? OR seller_id = ?", f.AccountID, f.AccountID)
	}
	if f.BuyerID != "" {
		query = query.Where("buyer_id = ?", f.BuyerID)
	}
	if f.SellerID != "" {
		query = query.Where("seller_id = ?", f.SellerID)
	}
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(order_no) LIKE ? OR LOWER(doc_number) LIKE ?", like, like)
	}

	orders := []*entity.Order{}
	err := query.
		Order("order_date DESC, rowid DESC").
		Limit(f.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *DefaultOrderRepository) FindByID(id string) (*entity.Order, error) {
	var order entity.Order
	err := r.withRelations().Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *DefaultOrderRepository) withRelations() *gorm.DB {
	return r.db.
		Preload("Seller").
		Preload("Buyer").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}
