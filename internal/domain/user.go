package domain

// User Model
type User struct {
	ID          uint      `gorm:"primaryKey"`                                    // Primary key
	FirstName   string    `gorm:"size:50;not null"`                              // First name
	LastName    string    `gorm:"size:50;not null"`                              // Last name
	PhoneNumber string    `gorm:"size:20;not null"`                              // Phone number
	Email       string    `gorm:"size:100;not null;uniqueIndex"`                 // Unique email
	Password    string    `gorm:"size:100;not null"`                             // Bcrypt hash, never serialized
	Addresses   []Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"` // Owned addresses, removed with the user
}

// TableName renames the table to avoid the reserved USER keyword in some databases
func (User) TableName() string { return "app_user" }
