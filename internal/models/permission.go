package models

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Role is a permission level on a budget.
//
// RoleOwner is derived from Budget.OwnerID and never stored,
// RoleEditor and RoleViewer are stored as BudgetCollaborator grants.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleEditor Role = "EDITOR"
	RoleViewer Role = "VIEWER"
)

var ErrNoBudgetPermission = errors.New("you do not have sufficient permissions for this budget")

// AllRoles is the allowed-role set for read operations any accessor may
// perform.
var AllRoles = []Role{RoleOwner, RoleEditor, RoleViewer}

// CheckPermission decides whether the user holds one of the allowed roles
// on the budget.
//
// Only roles explicitly listed match: the owner of a budget passes the check
// exactly when RoleOwner is in the allowed set, ownership does not imply
// RoleEditor. The function performs two lookups and no writes.
func CheckPermission(db *gorm.DB, userID, budgetID uuid.UUID, allowed []Role) error {
	var budget Budget
	err := db.First(&budget, "id = ?", budgetID).Error
	if err != nil {
		return err
	}

	if budget.OwnerID == userID {
		// The owner never has a stored grant, so there is nothing
		// further to look up.
		if slices.Contains(allowed, RoleOwner) {
			return nil
		}

		return ErrNoBudgetPermission
	}

	collaborator, err := Collaboration(db, budgetID, userID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrNoBudgetPermission
		}

		return err
	}

	if slices.Contains(allowed, collaborator.Role) {
		return nil
	}

	return ErrNoBudgetPermission
}
