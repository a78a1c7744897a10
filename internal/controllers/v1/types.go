package v1

import (
	cp_uuid "github.com/commonpurse/backend/internal/uuid"
)

type URIID struct {
	ID cp_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIBudget struct {
	BudgetID cp_uuid.UUID `uri:"budgetId" binding:"required" format:"UUID"` // ID of the budget
}

type URICollaborator struct {
	URIBudget
	UserID cp_uuid.UUID `uri:"userId" binding:"required" format:"UUID"` // ID of the collaborating user
}
