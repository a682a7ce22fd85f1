package entity

type AddressType string

const (
	AddressBilling   AddressType = "billing"
	AddressShipping  AddressType = "shipping"
	AddressWarehouse AddressType = "warehouse"
	AddressPickup    AddressType = "pickup"
)

const DefaultCountry = "US"

// Account is a trading partner. The same account may appear as buyer on
// some orders and as seller on others.
type Account struct {
	ID        string `gorm:"primaryKey"`
	Code      string `gorm:"not null;uniqueIndex"`
	Name      string `gorm:"not null;index"`
	Active    bool   `gorm:"not null"`
	CreatedAt int64  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt int64  `gorm:"not null;autoUpdateTime:false"`

	// Relationships, kept in creation order
	Addresses []*Address `gorm:"foreignKey:AccountID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Contacts  []*Contact `gorm:"foreignKey:AccountID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type Address struct {
	ID         string      `gorm:"primaryKey"`
	AccountID  string      `gorm:"not null;index"`
	Type       AddressType `gorm:"not null"`
	Line1      string      `gorm:"not null"`
	Line2      *string
	City       string `gorm:"not null"`
	State      string `gorm:"not null;size:2"`
	PostalCode string `gorm:"not null"`
	Country    string `gorm:"not null"`
	// IsPrimary is set on at most one address of an account.
	IsPrimary bool  `gorm:"not null"`
	CreatedAt int64 `gorm:"not null;autoCreateTime:false"`
}

type Contact struct {
	ID        string `gorm:"primaryKey"`
	AccountID string `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Phone     *string
	// IsPrimary is set on at most one contact of an account.
	IsPrimary bool  `gorm:"not null"`
	CreatedAt int64 `gorm:"not null;autoCreateTime:false"`
}
