package v1

import (
	"github.com/commonpurse/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollaboratorEditable represents all user configurable parameters
type CollaboratorEditable struct {
	UserID uuid.UUID   `json:"userId" example:"91a9e379-a32b-4ad6-8c8e-28c48a7f0e92"` // ID of the user being granted access
	Role   models.Role `json:"role" example:"EDITOR" enums:"EDITOR,VIEWER"`           // Role the user is granted on the budget
}

func (editable CollaboratorEditable) model(budgetID uuid.UUID) models.BudgetCollaborator {
	return models.BudgetCollaborator{
		BudgetID: budgetID,
		UserID:   editable.UserID,
		Role:     editable.Role,
	}
}

// CollaboratorUser identifies the user behind a grant.
type CollaboratorUser struct {
	ID    uuid.UUID `json:"id" example:"91a9e379-a32b-4ad6-8c8e-28c48a7f0e92"` // ID of the user
	Email string    `json:"email" example:"jane.doe@example.com"`              // Email of the user
}

type Collaborator struct {
	models.DefaultModel
	BudgetID uuid.UUID        `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // Budget the grant is for
	User     CollaboratorUser `json:"user"`                                                    // User the grant is for
	Role     models.Role      `json:"role" example:"EDITOR" enums:"EDITOR,VIEWER"`             // Granted role
}

func newCollaborator(db *gorm.DB, model models.BudgetCollaborator) (Collaborator, error) {
	// The user is not preloaded on freshly created grants
	if model.User.ID != model.UserID {
		err := db.First(&model.User, model.UserID).Error
		if err != nil {
			return Collaborator{}, err
		}
	}

	return Collaborator{
		DefaultModel: model.DefaultModel,
		BudgetID:     model.BudgetID,
		User: CollaboratorUser{
			ID:    model.User.ID,
			Email: model.User.Email,
		},
		Role: model.Role,
	}, nil
}

type CollaboratorListResponse struct {
	Data  []Collaborator `json:"data"`                                                          // List of Collaborators
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CollaboratorResponse struct {
	Data  *Collaborator `json:"data"`                                                          // Data for the Collaborator
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
