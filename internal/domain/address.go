package domain

// Address Model
type Address struct {
	ID           uint         `gorm:"primaryKey"`                                    // Primary key
	AddressLine1 string       `gorm:"size:255;not null"`                             // Street / first address line
	AddressLine2 string       `gorm:"size:255"`                                      // Optional second address line
	City         string       `gorm:"size:100;not null"`                             // City
	State        string       `gorm:"size:100;not null"`                             // State
	ZipCode      string       `gorm:"size:10;not null"`                              // Zip code
	Country      string       `gorm:"size:100;not null"`                             // Country
	UserID       uint         `gorm:"not null;index"`                                // Foreign key to the owning User
	Tags         []AddressTag `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"` // Free-form tags, removed with the address
}

func (Address) TableName() string { return "address" }

// AddressTag is one free-form tag attached to an Address
type AddressTag struct {
	ID        uint   `gorm:"primaryKey"`        // Primary key
	AddressID uint   `gorm:"not null;index"`    // Foreign key to the tagged Address
	TagName   string `gorm:"size:100;not null"` // Tag value
}

func (AddressTag) TableName() string { return "address_tags" }
