package dto

// Request and response projections of the entities. They live for one
// request/response cycle and are never persisted directly. Validation rules
// are expressed as binding tags and enforced by gin on bind.

// AddressRequest carries the writable location fields of an Address
type AddressRequest struct {
	Street       string   `json:"street" binding:"required,max=255"`        // Address line 1
	AddressLine2 string   `json:"addressLine2" binding:"omitempty,max=255"` // Optional address line 2
	City         string   `json:"city" binding:"required,max=100"`
	State        string   `json:"state" binding:"required,max=100"`
	ZipCode      string   `json:"zipCode" binding:"required,max=10"`
	Country      string   `json:"country" binding:"required,max=100"`
	Tags         []string `json:"tags"` // Optional free-form tags
}

// AddressResponse mirrors AddressRequest plus the assigned id. The owner
// back-reference is intentionally absent.
type AddressResponse struct {
	ID           uint     `json:"id"`
	Street       string   `json:"street"`
	AddressLine2 string   `json:"addressLine2"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zipCode"`
	Country      string   `json:"country"`
	Tags         []string `json:"tags"`
}

// UserRequest carries the writable fields of a User including the full
// address collection. On update the collection replaces the existing one.
type UserRequest struct {
	FirstName   string           `json:"firstName" binding:"required,max=50"`
	LastName    string           `json:"lastName" binding:"required,max=50"`
	PhoneNumber string           `json:"phoneNumber" binding:"required,max=20,phone10"` // Exactly 10 digits
	Email       string           `json:"email" binding:"required,email,max=100"`
	Password    string           `json:"password" binding:"required,max=100"` // Write-only, never returned
	Addresses   []AddressRequest `json:"addresses" binding:"omitempty,dive"`  // Nested addresses validated too
}

// UserResponse is the outward projection of a User. No password field.
type UserResponse struct {
	ID          uint              `json:"id"`
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	FullName    string            `json:"fullName"`
	PhoneNumber string            `json:"phoneNumber"`
	Email       string            `json:"email"`
	Addresses   []AddressResponse `json:"addresses"`
}

// LoginRequest carries the credentials for token issuance
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued JWT
type TokenResponse struct {
	Token string `json:"token"`
}
