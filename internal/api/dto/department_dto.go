package dto

// DepartmentRequest carries the editable department fields.
type DepartmentRequest struct {
	Active        *bool  `json:"active"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DirectorateID *int64 `json:"directorate_id"`
}

// DepartmentResponse representation.
type DepartmentResponse struct {
	ID            int64  `json:"id"`
	Active        bool   `json:"active"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DirectorateID *int64 `json:"directorate_id"`
}
