package service

import (
	"accountsdesk/cmd/internal/contract"
	"accountsdesk/cmd/internal/domain/entity"
	"accountsdesk/cmd/internal/domain/sqlite/repository"
	"accountsdesk/cmd/internal/utils"
	"accountsdesk/cmd/internal/utils/apierror"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

const maxCodeAttempts = 10

type AccountRepository interface {
	FindPage(f repository.AccountFilter) ([]*entity.Account, error)
	FindByID(id string) (*entity.Account, error)
	ExistsByID(id string) (bool, error)
	ExistsByCode(code string) (bool, error)
	Create(account *entity.Account) error
	Save(account *entity.Account) error
	FindAddresses(accountID string) ([]*entity.Address, error)
	FindContacts(accountID string) ([]*entity.Contact, error)
	CreateAddress(address *entity.Address) error
	CreateContact(contact *entity.Contact) error
}

type DefaultAccountService struct {
	AccountRepo AccountRepository
	Validate    *validator.Validate
}

func NewAccountService(accountRepo AccountRepository, validate *validator.Validate) *DefaultAccountService {
	return &DefaultAccountService{
		AccountRepo: accountRepo,
		Validate:    validate,
	}
}

// GetAccounts returns one page of accounts. A non-positive limit selects
// the default page size; limit is capped and a negative offset starts at 0.
func (a *DefaultAccountService) GetAccounts(limit, offset int, search string) (*contract.AccountsPage, apierror.ErrorResponse) {
	if limit <= 0 {
		limit = contract.DefaultPageLimit
	}
	limit = utils.Clamp(limit, 1, contract.MaxPageLimit)
	offset = max(offset, 0)

	accounts, err := a.AccountRepo.FindPage(repository.AccountFilter{
		Search: search,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		log.Errorf("failed to fetch accounts: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.AccountResponse, len(accounts))
	for i, acc := range accounts {
		resp[i] = toAccountResponse(acc)
	}
	return &contract.AccountsPage{Accounts: resp, Limit: limit, Offset: offset}, nil
}

func (a *DefaultAccountService) GetAccountByID(id string) (*contract.AccountResponse, apierror.ErrorResponse) {
	if !isValidID(id) {
		return nil, apierror.InvalidIDError
	}

	acc, err := a.AccountRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch account %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if acc == nil {
		return nil, apierror.AccountNotFoundError
	}
	return toAccountResponse(acc), nil
}

func (a *DefaultAccountService) CreateAccount(req *contract.CreateAccountRequest) (*contract.AccountResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	for _, addr := range req.Addresses {
		if addr != nil {
			normalizeAddress(addr)
		}
	}
	for _, c := range req.Contacts {
		if c != nil {
			utils.Sanitize(c)
		}
	}
	if req.Code != nil {
		code := strings.ToUpper(*req.Code)
		req.Code = &code
	}

	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	code, apierr := a.resolveCode(req)
	if apierr != nil {
		return nil, apierr
	}

	now := utils.NowUTC()
	acc := &entity.Account{
		ID:        uuid.NewString(),
		Code:      code,
		Name:      req.Name,
		Active:    req.Active == nil || *req.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	primaryTaken := false
	for _, r := range req.Addresses {
		addr := toAddressEntity(acc.ID, r, now)
		addr.IsPrimary = addr.IsPrimary && !primaryTaken
		primaryTaken = primaryTaken || addr.IsPrimary
		acc.Addresses = append(acc.Addresses, addr)
	}

	primaryTaken = false
	for _, r := range req.Contacts {
		c := toContactEntity(acc.ID, r, now)
		c.IsPrimary = c.IsPrimary && !primaryTaken
		primaryTaken = primaryTaken || c.IsPrimary
		acc.Contacts = append(acc.Contacts, c)
	}

	if err := a.AccountRepo.Create(acc); err != nil {
		log.Errorf("failed to create account: %v", err)
		return nil, apierror.InternalServerError
	}

	log.Infof("created account %s (%s)", acc.Code, acc.ID)
	return toAccountResponse(acc), nil
}

func (a *DefaultAccountService) UpdateAccount(id string, req *contract.UpdateAccountRequest) (*contract.AccountResponse, apierror.ErrorResponse) {
	if !isValidID(id) {
		return nil, apierror.InvalidIDError
	}

	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if req.Name == nil && req.Active == nil {
		return nil, apierror.EmptyPatchError
	}

	acc, err := a.AccountRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch account %s: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if acc == nil {
		return nil, apierror.AccountNotFoundError
	}

	if req.Name != nil {
		acc.Name = *req.Name
	}
	if req.Active != nil {
		acc.Active = *req.Active
	}

	acc.UpdatedAt = utils.NowUTC()
	if err = a.AccountRepo.Save(acc); err != nil {
		log.Errorf("failed to update account %s: %v", id, err)
		return nil, apierror.InternalServerError
	}
	return toAccountResponse(acc), nil
}

func (a *DefaultAccountService) GetAddresses(accountID string) ([]*contract.AddressResponse, apierror.ErrorResponse) {
	if apierr := a.checkAccount(accountID); apierr != nil {
		return nil, apierr
	}

	addresses, err := a.AccountRepo.FindAddresses(accountID)
	if err != nil {
		log.Errorf("failed to fetch addresses of account %s: %v", accountID, err)
		return nil, apierror.InternalServerError
	}
	return toAddressResponses(addresses), nil
}

func (a *DefaultAccountService) CreateAddress(accountID string, req *contract.CreateAddressRequest) (*contract.AddressResponse, apierror.ErrorResponse) {
	if !isValidID(accountID) {
		return nil, apierror.InvalidIDError
	}

	normalizeAddress(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if apierr := a.checkAccount(accountID); apierr != nil {
		return nil, apierr
	}

	addr := toAddressEntity(accountID, req, utils.NowUTC())
	if err := a.AccountRepo.CreateAddress(addr); err != nil {
		log.Errorf("failed to create address for account %s: %v", accountID, err)
		return nil, apierror.InternalServerError
	}
	return toAddressResponse(addr), nil
}

func (a *DefaultAccountService) GetContacts(accountID string) ([]*contract.ContactResponse, apierror.ErrorResponse) {
	if apierr := a.checkAccount(accountID); apierr != nil {
		return nil, apierr
	}

	contacts, err := a.AccountRepo.FindContacts(accountID)
	if err != nil {
		log.Errorf("failed to fetch contacts of account %s: %v", accountID, err)
		return nil, apierror.InternalServerError
	}
	return toContactResponses(contacts), nil
}

func (a *DefaultAccountService) CreateContact(accountID string, req *contract.CreateContactRequest) (*contract.ContactResponse, apierror.ErrorResponse) {
	if !isValidID(accountID) {
		return nil, apierror.InvalidIDError
	}

	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	if apierr := a.checkAccount(accountID); apierr != nil {
		return nil, apierr
	}

	contact := toContactEntity(accountID, req, utils.NowUTC())
	if err := a.AccountRepo.CreateContact(contact); err != nil {
		log.Errorf("failed to create contact for account %s: %v", accountID, err)
		return nil, apierror.InternalServerError
	}
	return toContactResponse(contact), nil
}

// checkAccount validates id and makes sure the account exists.
func (a *DefaultAccountService) checkAccount(id string) apierror.ErrorResponse {
	if !isValidID(id) {
		return apierror.InvalidIDError
	}

	exists, err := a.AccountRepo.ExistsByID(id)
	if err != nil {
		log.Errorf("failed to check account %s: %v", id, err)
		return apierror.InternalServerError
	}

	if !exists {
		return apierror.AccountNotFoundError
	}
	return nil
}

// resolveCode returns the requested code when it is free, or generates one
// from the account name.
func (a *DefaultAccountService) resolveCode(req *contract.CreateAccountRequest) (string, apierror.ErrorResponse) {
	if req.Code != nil {
		taken, err := a.AccountRepo.ExistsByCode(*req.Code)
		if err != nil {
			log.Errorf("failed to check account code %s: %v", *req.Code, err)
			return "", apierror.InternalServerError
		}

		if taken {
			return "", apierror.DuplicateCodeError
		}
		return *req.Code, nil
	}

	prefix := CodePrefix(req.Name)
	for range maxCodeAttempts {
		code := fmt.Sprintf("%s-%04d", prefix, 1000+rand.IntN(9000))
		taken, err := a.AccountRepo.ExistsByCode(code)
		if err != nil {
			log.Errorf("failed to check account code %s: %v", code, err)
			return "", apierror.InternalServerError
		}

		if !taken {
			return code, nil
		}
	}

	log.Errorf("failed to generate a free account code for %q", req.Name)
	return "", apierror.InternalServerError
}

// CodePrefix derives up to four uppercase letters from name: the initials
// of each word, topped up with the following letters of the first word.
// Names without letters yield "ACCT".
func CodePrefix(name string) string {
	var words [][]rune
	for _, w := range strings.Fields(name) {
		var letters []rune
		for _, r := range w {
			if unicode.IsLetter(r) && r < unicode.MaxASCII {
				letters = append(letters, unicode.ToUpper(r))
			}
		}
		if len(letters) > 0 {
			words = append(words, letters)
		}
	}

	if len(words) == 0 {
		return "ACCT"
	}

	var prefix []rune
	for _, w := range words {
		if len(prefix) == 4 {
			break
		}
		prefix = append(prefix, w[0])
	}
	for _, r := range words[0][1:] {
		if len(prefix) == 4 {
			break
		}
		prefix = append(prefix, r)
	}
	return string(prefix)
}

func normalizeAddress(req *contract.CreateAddressRequest) {
	utils.Sanitize(req)
	req.Type = strings.ToLower(req.Type)
	req.State = strings.ToUpper(req.State)
	req.Country = strings.ToUpper(req.Country)
}

func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}
