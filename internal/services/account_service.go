package services

import (
	"fmt"

	"backoffice/internal/models"
	"backoffice/internal/repositories"
)

// AccountService handles business logic related to accounts.
type AccountService struct {
	repo      repositories.AccountRepository
	publisher EventPublisher
}

// NewAccountService creates a new AccountService.
func NewAccountService(repo repositories.AccountRepository, publisher EventPublisher) *AccountService {
	return &AccountService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllAccounts retrieves all accounts with their orders and purchased products.
func (s *AccountService) GetAllAccounts() ([]models.Account, error) {
	accounts, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		attachProducts(&accounts[i])
	}
	return accounts, nil
}

// GetAccountByID retrieves a single account by its ID.
func (s *AccountService) GetAccountByID(id int64) (*models.Account, error) {
	account, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	attachProducts(account)
	return account, nil
}

// CreateAccount creates a new account. Relations sent by the client are ignored.
func (s *AccountService) CreateAccount(account *models.Account) error {
	account.ID = 0
	account.Orders = nil
	account.Products = nil
	if err := s.repo.Create(account); err != nil {
		return err
	}
	publishChange(s.publisher, models.ResourceAccounts, ActionCreated, account.ID)
	return nil
}

// UpdateAccount replaces an existing account and returns its stored state.
func (s *AccountService) UpdateAccount(account *models.Account) (*models.Account, error) {
	if err := s.repo.Update(account); err != nil {
		return nil, err
	}
	updated, err := s.GetAccountByID(account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload account %d: %w", account.ID, err)
	}
	publishChange(s.publisher, models.ResourceAccounts, ActionUpdated, account.ID)
	return updated, nil
}

// DeleteAccount deletes an account and all of its orders.
func (s *AccountService) DeleteAccount(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	publishChange(s.publisher, models.ResourceAccounts, ActionDeleted, id)
	return nil
}

// attachProducts fills account.Products with the distinct products of its orders,
// in order of first appearance.
func attachProducts(account *models.Account) {
	seen := make(map[int64]bool)
	products := []models.Product{}
	for _, order := range account.Orders {
		for _, p := range order.Products {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			products = append(products, p)
		}
	}
	account.Products = products
}
