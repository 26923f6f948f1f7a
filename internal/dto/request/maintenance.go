package request

type CreateMaintenanceRequest struct {
	PropertyID  string  `json:"property_id" validate:"required,uuid4"`
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Description *string `json:"description,omitempty"`
	Priority    string  `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
}

type UpdateMaintenanceRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress resolved cancelled"`
}

type ListMaintenanceRequest struct {
	PaginatedRequest
	Status string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress resolved cancelled"`
}
