package models

// FederatedPasswordSentinel is stored as the password credential of users provisioned
// through federated login. It is not a bcrypt hash, so password login never matches it.
const FederatedPasswordSentinel = "federated-login-only"

// User represents a registered account
type User struct {
	BaseModel
	Username     string  `json:"username" gorm:"uniqueIndex;not null;size:100"`
	FullName     string  `json:"full_name" gorm:"not null;size:200"`
	PasswordHash string  `json:"-" gorm:"not null;size:255"`
	GoogleID     *string `json:"-" gorm:"uniqueIndex;size:255"`
	Email        *string `json:"email,omitempty" gorm:"size:255"`
	ProfileImage *string `json:"profile_image,omitempty" gorm:"size:500"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsFederatedOnly reports whether the user can only sign in through a federated provider
func (u *User) IsFederatedOnly() bool {
	return u.PasswordHash == FederatedPasswordSentinel
}
