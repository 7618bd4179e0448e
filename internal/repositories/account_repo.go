package repositories

import "backoffice/internal/models"

// AccountRepository defines the interface for account data access.
type AccountRepository interface {
	GetAll() ([]models.Account, error)
	GetByID(id int64) (*models.Account, error)
	Create(account *models.Account) error
	Update(account *models.Account) error
	// Delete removes the account together with its orders.
	Delete(id int64) error
}
