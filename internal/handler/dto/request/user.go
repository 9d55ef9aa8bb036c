package request

import (
	"coupon-swap/internal/usecase/commands"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func (r SignupRequest) ToCommand() commands.SignupUserCommand {
	return commands.SignupUserCommand{
		Name:  r.Name,
		Email: r.Email,
	}
}

type UpdatePreferencesRequest struct {
	PreferredPlatforms  []string `json:"preferred_platforms"`
	PreferredCategories []string `json:"preferred_categories"`
}

func (r UpdatePreferencesRequest) ToCommand(userID uuid.UUID) commands.UpdatePreferencesCommand {
	platforms := r.PreferredPlatforms
	if platforms == nil {
		platforms = []string{}
	}
	categories := r.PreferredCategories
	if categories == nil {
		categories = []string{}
	}
	return commands.UpdatePreferencesCommand{
		UserID:              userID,
		PreferredPlatforms:  platforms,
		PreferredCategories: categories,
	}
}
