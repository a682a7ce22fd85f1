package entity

type OrderStatus string

const (
	OrderDraft      OrderStatus = "draft"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderPostedToQB OrderStatus = "posted_to_qb"
	OrderUnpaid     OrderStatus = "unpaid"
	OrderPaid       OrderStatus = "paid"
	OrderCancelled  OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{
	OrderDraft, OrderConfirmed, OrderPostedToQB, OrderUnpaid, OrderPaid, OrderCancelled,
}

// Order is a sale between two accounts. Money fields are in cents.
type Order struct {
	ID          string      `gorm:"primaryKey"`
	OrderNo     string      `gorm:"not null;uniqueIndex"`
	OrderDate   int64       `gorm:"not null;index"`
	Status      OrderStatus `gorm:"not null;index"`
	SellerID    string      `gorm:"not null;index"`
	BuyerID     string      `gorm:"not null;index"`
	DocNumber   *string     // external invoice number once posted
	TotalAmount int64       `gorm:"not null"`
	CreatedAt   int64       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   int64       `gorm:"not null;autoUpdateTime:false"`

	// Relationships
	Seller Account      `gorm:"foreignKey:SellerID;references:ID"`
	Buyer  Account      `gorm:"foreignKey:BuyerID;references:ID"`
	Lines  []*OrderLine `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type OrderLine struct {
	ID          int     `gorm:"primaryKey"`
	OrderID     string  `gorm:"not null;index"`
	Position    int     `gorm:"not null"`
	ProductCode string  `gorm:"not null"`
	Description string  `gorm:"not null"`
	Quantity    float64 `gorm:"not null"`
	UnitPrice   int64   `gorm:"not null"`
	LineTotal   int64   `gorm:"not null"`
}
