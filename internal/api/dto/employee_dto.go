package dto

// EmployeeRequest carries the editable employee fields. Position accepts the
// human-readable label or the enum name.
type EmployeeRequest struct {
	Active       *bool  `json:"active"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	PersonalID   string `json:"personal_id"`
	Age          int    `json:"age"`
	Position     string `json:"position"`
	DepartmentID *int64 `json:"department_id"`
}

// CreateEmployeeRequest adds the initial password.
type CreateEmployeeRequest struct {
	EmployeeRequest
	Password string `json:"password"`
}

// PasswordRequest payload for password changes.
type PasswordRequest struct {
	Password string `json:"password"`
}

// EmployeeResponse never exposes the password hash.
type EmployeeResponse struct {
	ID           int64  `json:"id"`
	Active       bool   `json:"active"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	PersonalID   string `json:"personal_id"`
	Age          int    `json:"age"`
	Position     string `json:"position"`
	DepartmentID *int64 `json:"department_id"`
}
