package forms

import "backoffice/internal/models"

// AccountDraft is the editable state of an account form.
type AccountDraft struct {
	ID        int64  `json:"-"`
	Nickname  string `json:"nickname" validate:"required,max=50"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
}

// EditAccount starts a draft from an existing account.
func EditAccount(a models.Account) *AccountDraft {
	return &AccountDraft{
		ID:        a.ID,
		Nickname:  a.Nickname,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
	}
}

// Validate reports every invalid field of the draft as one *ValidationError.
func (d *AccountDraft) Validate() error {
	return check("account", d)
}

// Payload validates the draft and builds the account to submit.
func (d *AccountDraft) Payload() (models.Account, error) {
	if err := d.Validate(); err != nil {
		return models.Account{}, err
	}
	return models.Account{
		ID:        d.ID,
		Nickname:  d.Nickname,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
	}, nil
}
