package dto

// SignInRequest authenticates by email + password.
type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest creates a staff account. Field-level rules (blank checks,
// password length) are enforced by the auth service so that failures surface
// as conflicts, matching the account-creation contract.
type SignUpRequest struct {
	UserName   string `json:"userName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}

// AuthResponse carries a signed bearer token.
type AuthResponse struct {
	Token string `json:"token"`
}

// SubjectResponse echoes the subject id bound to the presented token.
type SubjectResponse struct {
	ID string `json:"_id"`
}
