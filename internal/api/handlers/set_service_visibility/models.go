package set_service_visibility

// VisibilityRequest HTTP request model
type VisibilityRequest struct {
	IsVisible *bool `json:"isVisible" validate:"required"`
}
