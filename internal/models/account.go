package models

// Account represents a customer account of the store.
type Account struct {
	ID        int64   `json:"id,omitempty" gorm:"primaryKey;autoIncrement"`
	Nickname  string  `json:"nickname" gorm:"uniqueIndex;type:varchar(50);not null" validate:"required,max=50"`
	FirstName string  `json:"firstName" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	LastName  string  `json:"lastName" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Email     string  `json:"email" gorm:"uniqueIndex;type:varchar(255);not null" validate:"required,email"`
	Orders    []Order `json:"orders,omitempty" gorm:"foreignKey:AccountID"`
	// Products is the distinct set of products across Orders, filled in by the server.
	Products []Product `json:"products,omitempty" gorm:"-"`
}

// DisplayName returns "First Last", falling back to the nickname.
func (a Account) DisplayName() string {
	switch {
	case a.FirstName != "" && a.LastName != "":
		return a.FirstName + " " + a.LastName
	case a.FirstName != "":
		return a.FirstName
	case a.LastName != "":
		return a.LastName
	}
	return a.Nickname
}
