package viewstate

import (
	"accountsdesk/cmd/internal/utils/validators"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const LoadAccountFailedMessage = "Failed to load account"

// AddressForm is the input of the add address dialog.
type AddressForm struct {
	Type       AddressType `validate:"required,addresstype"`
	Line1      string      `validate:"required,max=255"`
	Line2      *string     `validate:"omitempty,max=255"`
	City       string      `validate:"required,max=100"`
	State      string      `validate:"required,usstate"`
	PostalCode string      `validate:"required,max=20"`
	Country    string      `validate:"omitempty,len=2"`
	IsPrimary  bool
}

// ContactForm is the input of the add contact dialog.
type ContactForm struct {
	Name      string  `validate:"required,max=255"`
	Email     string  `validate:"required,email,max=255"`
	Phone     *string `validate:"omitempty,phone"`
	IsPrimary bool
}

type AccountReader interface {
	GetAccount(ctx context.Context, id AccountID) (*Account, error)
}

type AccountWriter interface {
	CreateAddress(ctx context.Context, id AccountID, form *AddressForm) error
	CreateContact(ctx context.Context, id AccountID, form *ContactForm) error
}

type DetailSource interface {
	AccountReader
	AccountWriter
}

// Detail drives the account detail page. Forms handed to AddAddress and
// AddContact are never modified, so a failed submission keeps the user's
// input for correction.
type Detail struct {
	mu       sync.Mutex
	id       AccountID
	account  *Account
	loading  bool
	err      error
	source   DetailSource
	validate *validator.Validate
}

// NewDetail builds the driver with the same custom validation tags the
// service registers.
func NewDetail(id AccountID, source DetailSource) *Detail {
	validate := validator.New()
	validators.Register(validate)
	return &Detail{
		id:       id,
		source:   source,
		validate: validate,
	}
}

func (d *Detail) ID() AccountID { return d.id }

// Account returns the loaded account, or false before a successful Load.
func (d *Detail) Account() (*Account, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.account, d.account != nil
}

func (d *Detail) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// ErrorMessage collapses transport, status and not-found failures into the
// single message of the view.
func (d *Detail) ErrorMessage() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return LoadAccountFailedMessage
	}
	return ""
}

func (d *Detail) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

// Load fetches the account. On failure the previously loaded account, if
// any, is kept.
func (d *Detail) Load(ctx context.Context) error {
	d.mu.Lock()
	d.loading = true
	d.mu.Unlock()

	account, err := d.source.GetAccount(ctx, d.id)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loading = false
	if err != nil {
		d.err = fmt.Errorf("get account %s: %w", d.id, err)
		return d.err
	}
	d.account = account
	d.err = nil
	return nil
}

// AddAddress submits form and reloads the account on success.
func (d *Detail) AddAddress(ctx context.Context, form *AddressForm) error {
	submitted := normalizeAddress(*form)
	if err := d.validate.Struct(&submitted); err != nil {
		return err
	}
	if err := d.source.CreateAddress(ctx, d.id, &submitted); err != nil {
		return fmt.Errorf("add address: %w", err)
	}
	return d.Load(ctx)
}

// AddContact submits form and reloads the account on success.
func (d *Detail) AddContact(ctx context.Context, form *ContactForm) error {
	submitted := *form
	submitted.Name = strings.TrimSpace(submitted.Name)
	submitted.Email = strings.TrimSpace(submitted.Email)
	if err := d.validate.Struct(&submitted); err != nil {
		return err
	}
	if err := d.source.CreateContact(ctx, d.id, &submitted); err != nil {
		return fmt.Errorf("add contact: %w", err)
	}
	return d.Load(ctx)
}

// normalizeAddress applies the casing the service stores, so "ca" passes the
// state check.
func normalizeAddress(f AddressForm) AddressForm {
	f.Type = AddressType(strings.ToLower(strings.TrimSpace(string(f.Type))))
	f.Line1 = strings.TrimSpace(f.Line1)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.ToUpper(strings.TrimSpace(f.State))
	f.PostalCode = strings.TrimSpace(f.PostalCode)
	f.Country = strings.ToUpper(strings.TrimSpace(f.Country))
	return f
}
