package request

// CreateUnitRequest represents a unit creation request
type CreateUnitRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}
