package dto

// DirectorateRequest carries the editable directorate fields.
type DirectorateRequest struct {
	Active      *bool  `json:"active"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DirectorID  *int64 `json:"director_id"`
}

// DirectorateResponse representation.
type DirectorateResponse struct {
	ID          int64  `json:"id"`
	Active      bool   `json:"active"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DirectorID  *int64 `json:"director_id"`
}
