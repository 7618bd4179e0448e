package repositories

import (
	"errors"
	"fmt"

	"backoffice/internal/models"

	"gorm.io/gorm"
)

// GORMAccountRepository is a GORM implementation of AccountRepository.
type GORMAccountRepository struct {
	db *gorm.DB
}

// NewGORMAccountRepository creates a new instance of GORMAccountRepository.
func NewGORMAccountRepository(db *gorm.DB) *GORMAccountRepository {
	return &GORMAccountRepository{
		db: db,
	}
}

func (r *GORMAccountRepository) withOrders() *gorm.DB {
	return r.db.Preload("Orders", orderByID).Preload("Orders.Products", orderByID)
}

// GetAll retrieves all accounts with their orders and the orders' products.
func (r *GORMAccountRepository) GetAll() ([]models.Account, error) {
	accounts := []models.Account{}
	if err := r.withOrders().Order("id").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get all accounts: %w", err)
	}
	return accounts, nil
}

// GetByID retrieves an account by its ID from the database.
func (r *GORMAccountRepository) GetByID(id int64) (*models.Account, error) {
	var account models.Account
	if err := r.withOrders().First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account by ID %d: %w", id, err)
	}
	return &account, nil
}

// Create creates a new account in the database.
func (r *GORMAccountRepository) Create(account *models.Account) error {
	if err := r.db.Omit("Orders").Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Update overwrites the scalar fields of an existing account.
func (r *GORMAccountRepository) Update(account *models.Account) error {
	res := r.db.Model(&models.Account{}).Where("id = ?", account.ID).Updates(map[string]interface{}{
		"nickname":   account.Nickname,
		"first_name": account.FirstName,
		"last_name":  account.LastName,
		"email":      account.Email,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update account: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("account with ID %d: %w", account.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the account, its orders and their product links in one transaction.
func (r *GORMAccountRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.First(&account, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("account with ID %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to delete account: %w", err)
		}

		var orderIDs []int64
		if err := tx.Model(&models.Order{}).Where("account_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return fmt.Errorf("failed to list orders of account %d: %w", id, err)
		}
		if len(orderIDs) > 0 {
			if err := tx.Exec("DELETE FROM order_product WHERE order_id IN ?", orderIDs).Error; err != nil {
				return fmt.Errorf("failed to unlink products of account %d: %w", id, err)
			}
			if err := tx.Where("account_id = ?", id).Delete(&models.Order{}).Error; err != nil {
				return fmt.Errorf("failed to delete orders of account %d: %w", id, err)
			}
		}

		if err := tx.Delete(&account).Error; err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}
		return nil
	})
}
