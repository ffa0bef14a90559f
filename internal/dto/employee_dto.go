package dto

// EmployeeResponse never exposes the password hash or salt.
type EmployeeResponse struct {
	UserName   string `json:"userName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}

type ListEmployeeResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
