package transport

import (
	"time"

	"github.com/google/uuid"
)

// Categories enumerates the valid service categories.
var Categories = []string{
	"HAIR_STYLING", "HAIR_COLORING", "FACIAL", "MASSAGE", "BODY_TREATMENT",
	"NAIL_CARE", "HAIR_REMOVAL", "MAKEUP", "SKINCARE", "OTHER",
}

// IsValidCategory reports whether the category is one of the known values.
func IsValidCategory(category string) bool {
	for _, known := range Categories {
		if category == known {
			return true
		}
	}
	return false
}

// CreateServiceRequest is the request body for POST /services.
type CreateServiceRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Category    string  `json:"category" validate:"required,oneof=HAIR_STYLING HAIR_COLORING FACIAL MASSAGE BODY_TREATMENT NAIL_CARE HAIR_REMOVAL MAKEUP SKINCARE OTHER"`
	Duration    int     `json:"duration" validate:"required,min=15,max=300"`
	Price       float64 `json:"price" validate:"min=0"`
	IsPopular   *bool   `json:"isPopular"`
	Icon        *string `json:"icon" validate:"omitempty,max=100"`
}

// UpdateServiceRequest is the request body for PUT /services/:id.
type UpdateServiceRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Category    *string  `json:"category" validate:"omitempty,oneof=HAIR_STYLING HAIR_COLORING FACIAL MASSAGE BODY_TREATMENT NAIL_CARE HAIR_REMOVAL MAKEUP SKINCARE OTHER"`
	Duration    *int     `json:"duration" validate:"omitempty,min=15,max=300"`
	Price       *float64 `json:"price" validate:"omitempty,min=0"`
	IsPopular   *bool    `json:"isPopular"`
	IsActive    *bool    `json:"isActive"`
	Icon        *string  `json:"icon" validate:"omitempty,max=100"`
}

// ServiceResponse is the public representation of a catalog service.
type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	Duration    int       `json:"duration"`
	Price       float64   `json:"price"`
	IsPopular   bool      `json:"isPopular"`
	IsActive    bool      `json:"isActive"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
