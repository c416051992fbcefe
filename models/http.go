package models

// LoginRequest carries the raw credentials typed on the Login page.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegistrationRequest carries the raw fields typed on the Register page.
// All fields are required.
type RegistrationRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// NavigateRequest carries the menu value selected by the user.
type NavigateRequest struct {
	Page Page `json:"page"`
}

// CreationRequest carries the raw fields of the creation form.
// Blank Era and Description are stored as absent.
type CreationRequest struct {
	Theme       string `json:"theme"`
	Era         string `json:"era"`
	Description string `json:"description"`
}
