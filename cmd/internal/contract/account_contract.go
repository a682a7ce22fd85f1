package contract

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

type CreateAccountRequest struct {
	Code      *string                 `json:"code" validate:"omitempty,min=2,max=20,nospaces"`
	Name      string                  `json:"name" validate:"required,min=2,max=255"`
	Active    *bool                   `json:"active"`
	Addresses []*CreateAddressRequest `json:"addresses" validate:"omitempty,max=20,dive,required"`
	Contacts  []*CreateContactRequest `json:"contacts" validate:"omitempty,max=20,dive,required"`
}

type UpdateAccountRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2,max=255"`
	Active *bool   `json:"active"`
}

type CreateAddressRequest struct {
	Type       string  `json:"type" validate:"required,addresstype"`
	Line1      string  `json:"line1" validate:"required,max=255"`
	Line2      *string `json:"line2" validate:"omitempty,max=255"`
	City       string  `json:"city" validate:"required,max=100"`
	State      string  `json:"state" validate:"required,usstate"`
	PostalCode string  `json:"postal_code" validate:"required,max=20"`
	Country    string  `json:"country" validate:"omitempty,len=2"`
	IsPrimary  bool    `json:"is_primary"`
}

type CreateContactRequest struct {
	Name      string  `json:"name" validate:"required,max=255"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Phone     *string `json:"phone" validate:"omitempty,phone"`
	IsPrimary bool    `json:"is_primary"`
}

type AccountResponse struct {
	ID        string             `json:"id"`
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Active    bool               `json:"active"`
	Addresses []*AddressResponse `json:"addresses"`
	Contacts  []*ContactResponse `json:"contacts"`
	CreatedAt string             `json:"created_at"`
	UpdatedAt string             `json:"updated_at"`
}

type AddressResponse struct {
	ID         string  `json:"id"`
	AccountID  string  `json:"account_id"`
	Type       string  `json:"type"`
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
	IsPrimary  bool    `json:"is_primary"`
	CreatedAt  string  `json:"created_at"`
}

type ContactResponse struct {
	ID        string  `json:"id"`
	AccountID string  `json:"account_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	IsPrimary bool    `json:"is_primary"`
	CreatedAt string  `json:"created_at"`
}

// AccountsPage is the body of GET /api/accounts.
type AccountsPage struct {
	Accounts []*AccountResponse `json:"accounts"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}
