package sqlite

import (
	"accountsdesk/cmd/internal/domain/entity"
	"accountsdesk/cmd/internal/utils"
	"accountsdesk/cmd/internal/utils/uid"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type seedAccount struct {
	code    string
	name    string
	active  bool
	city    string
	state   string
	zip     string
	street  string
	contact string
	email   string
	phone   string
}

var demoAccounts = []seedAccount{
	{"ACME-1001", "Acme Produce", true, "Sacramento", "CA", "95814", "12 River Rd", "Dana Reyes", "dana@acmeproduce.test", "(916) 555-0123"},
	{"BRAV-1002", "Brava Farms", true, "Fresno", "CA", "93701", "4 Orchard Ln", "Lee Chen", "lee@bravafarms.test", "559-555-0188"},
	{"COAS-1003", "Coastal Foods", false, "Oakland", "CA", "94607", "500 Dock St", "Ana Lima", "ana@coastalfoods.test", "510.555.0199"},
	{"DESE-1004", "Desert Grocers", true, "Phoenix", "AZ", "85004", "77 Cactus Ave", "Sam Ortiz", "sam@desertgrocers.test", "+1 602 555 0142"},
	{"EVER-1005", "Evergreen Market", true, "Portland", "OR", "97205", "9 Pine St", "Kim Park", "kim@evergreen.test", ""},
	{"FRON-1006", "Frontier Wholesale", true, "Reno", "NV", "89501", "300 Silver Way", "Jo Miller", "jo@frontier.test", "775-555-0107"},
}

// SeedDemo fills an empty database with demo accounts and orders. It does
// nothing when any account exists.
func SeedDemo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Account{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debugf("skipping demo seed, %d accounts present", count)
		return nil
	}

	now := utils.NowUTC()
	accounts := make([]*entity.Account, len(demoAccounts))

	err := db.Transaction(func(tx *gorm.DB) error {
		for i, s := range demoAccounts {
			created := now - int64(len(demoAccounts)-i)*int64(time.Hour/time.Millisecond)
			acc := &entity.Account{
				ID:        uuid.NewString(),
				Code:      s.code,
				Name:      s.name,
				Active:    s.active,
				CreatedAt: created,
				UpdatedAt: created,
			}
			if err := tx.Omit("Addresses", "Contacts").Create(acc).Error; err != nil {
				return err
			}
			accounts[i] = acc

			addr := &entity.Address{
				ID:         uuid.NewString(),
				AccountID:  acc.ID,
				Type:       entity.AddressBilling,
				Line1:      s.street,
				City:       s.city,
				State:      s.state,
				PostalCode: s.zip,
				Country:    entity.DefaultCountry,
				IsPrimary:  true,
				CreatedAt:  created,
			}
			if err := tx.Create(addr).Error; err != nil {
				return err
			}

			contact := &entity.Contact{
				ID:        uuid.NewString(),
				AccountID: acc.ID,
				Name:      s.contact,
				Email:     s.email,
				IsPrimary: true,
				CreatedAt: created,
			}
			if s.phone != "" {
				phone := s.phone
				contact.Phone = &phone
			}
			if err := tx.Create(contact).Error; err != nil {
				return err
			}
		}

		// Frontier sells to everyone else, each buyer gets a run of orders
		// cycling through the statuses.
		seller := accounts[len(accounts)-1]
		for i, buyer := range accounts[:len(accounts)-1] {
			for j := 0; j < 3+i%3; j++ {
				status := entity.OrderStatuses[(i+j)%len(entity.OrderStatuses)]
				order := demoOrder(seller, buyer, status, now-int64(i*7+j)*int64(24*time.Hour/time.Millisecond))
				if err := tx.Omit("Seller", "Buyer").Create(order).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Infof("seeded %d demo accounts", len(accounts))
	return nil
}

func demoOrder(seller, buyer *entity.Account, status entity.OrderStatus, date int64) *entity.Order {
	id := uuid.NewString()
	lines := []*entity.OrderLine{
		{OrderID: id, Position: 1, ProductCode: "TOM-25", Description: "Tomatoes 25lb case", Quantity: 10, UnitPrice: 2450},
		{OrderID: id, Position: 2, ProductCode: "LET-24", Description: "Romaine 24ct", Quantity: 4, UnitPrice: 3199},
	}

	var total int64
	for _, l := range lines {
		l.LineTotal = int64(l.Quantity * float64(l.UnitPrice))
		total += l.LineTotal
	}

	order := &entity.Order{
		ID:          id,
		OrderNo:     uid.OrderNo(),
		OrderDate:   date,
		Status:      status,
		SellerID:    seller.ID,
		BuyerID:     buyer.ID,
		TotalAmount: total,
		CreatedAt:   date,
		UpdatedAt:   date,
		Lines:       lines,
	}
	if status == entity.OrderPostedToQB || status == entity.OrderUnpaid || status == entity.OrderPaid {
		doc := "INV-" + order.OrderNo[len(uid.OrderPrefix):]
		order.DocNumber = &doc
	}
	return order
}
