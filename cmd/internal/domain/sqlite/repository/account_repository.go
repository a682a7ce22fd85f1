package repository

import (
	"accountsdesk/cmd/internal/domain/entity"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// childOrder keeps addresses and contacts in creation order, rowid breaks
// ties between rows created within the same millisecond.
const childOrder = "created_at ASC, rowid ASC"

type AccountFilter struct {
	Search string
	Limit  int
	Offset int
}

type DefaultAccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *DefaultAccountRepository {
	return &DefaultAccountRepository{db: db}
}

// FindPage returns one page of accounts ordered by name, with their
// addresses and contacts attached.
func (r *DefaultAccountRepository) FindPage(f AccountFilter) ([]*entity.Account, error) {
	query := r.db.Model(&entity.Account{})
	if search := strings.TrimSpace(f.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", like, like)
	}

	accounts := []*entity.Account{}
	err := query.
		Order("name COLLATE NOCASE ASC, id ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	if err = r.attachChildren(accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *DefaultAccountRepository) FindByID(id string) (*entity.Account, error) {
	var account entity.Account
	err := r.db.Where("id = ?", id).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if err = r.attachChildren([]*entity.Account{&account}); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *DefaultAccountRepository) ExistsByID(id string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Account{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *DefaultAccountRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Account{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// Create inserts the account together with any addresses and contacts it
// carries. Callers keep at most one of each flagged primary.
func (r *DefaultAccountRepository) Create(account *entity.Account) error {
	return r.db.Create(account).Error
}

func (r *DefaultAccountRepository) Save(account *entity.Account) error {
	return r.db.Omit(clause.Associations).Save(account).Error
}

func (r *DefaultAccountRepository) FindAddresses(accountID string) ([]*entity.Address, error) {
	addresses := []*entity.Address{}
	err := r.db.
		Where("account_id = ?", accountID).
		Order(childOrder).
		Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *DefaultAccountRepository) FindContacts(accountID string) ([]*entity.Contact, error) {
	contacts := []*entity.Contact{}
	err := r.db.
		Where("account_id = ?", accountID).
		Order(childOrder).
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// CreateAddress inserts address. A primary address clears the flag on every
// other address of the same account within the same transaction.
func (r *DefaultAccountRepository) CreateAddress(address *entity.Address) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if address.IsPrimary {
			err := tx.Model(&entity.Address{}).
				Where("account_id = ? AND is_primary = ?", address.AccountID, true).
				Update("is_primary", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(address).Error
	})
}

// CreateContact follows the same primary rule as CreateAddress.
func (r *DefaultAccountRepository) CreateContact(contact *entity.Contact) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if contact.IsPrimary {
			err := tx.Model(&entity.Contact{}).
				Where("account_id = ? AND is_primary = ?", contact.AccountID, true).
				Update("is_primary", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Create(contact).Error
	})
}

// attachChildren loads the addresses and contacts of every account with one
// query per table.
func (r *DefaultAccountRepository) attachChildren(accounts []*entity.Account) error {
	if len(accounts) == 0 {
		return nil
	}

	ids := make([]string, len(accounts))
	for i, a := range accounts {
		ids[i] = a.ID
	}

	var (
		addresses []*entity.Address
		contacts  []*entity.Contact
		g         errgroup.Group
	)
	g.Go(func() error {
		return r.db.Where("account_id IN ?", ids).Order(childOrder).Find(&addresses).Error
	})
	g.Go(func() error {
		return r.db.Where("account_id IN ?", ids).Order(childOrder).Find(&contacts).Error
	})
	if err := g.Wait(); err != nil {
		return err
	}

	byID := make(map[string]*entity.Account, len(accounts))
	for _, a := range accounts {
		a.Addresses = []*entity.Address{}
		a.Contacts = []*entity.Contact{}
		byID[a.ID] = a
	}
	for _, addr := range addresses {
		if a, ok := byID[addr.AccountID]; ok {
			a.Addresses = append(a.Addresses, addr)
		}
	}
	for _, c := range contacts {
		if a, ok := byID[c.AccountID]; ok {
			a.Contacts = append(a.Contacts, c)
		}
	}
	return nil
}
