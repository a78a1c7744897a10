package models

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// BudgetCollaborator grants a non-owner user access to a budget.
//
// The owner of a budget is never stored here, ownership is derived from
// Budget.OwnerID and outranks every stored grant.
type BudgetCollaborator struct {
	DefaultModel
	Budget   Budget    `json:"-"`
	BudgetID uuid.UUID `gorm:"uniqueIndex:collaborator_budget_user"`
	User     User      `json:"-"`
	UserID   uuid.UUID `gorm:"uniqueIndex:collaborator_budget_user"`
	Role     Role
}

var (
	ErrCollaboratorExists      = errors.New("this user is already a collaborator on this budget")
	ErrCollaboratorIsOwner     = errors.New("the budget owner cannot be a collaborator on their own budget")
	ErrCollaboratorRoleInvalid = errors.New("the collaborator role must be EDITOR or VIEWER")
)

// BeforeSave validates the role.
//
// RoleOwner is rejected here as well, ownership is never stored as a grant.
func (b *BudgetCollaborator) BeforeSave(_ *gorm.DB) error {
	if !slices.Contains([]Role{RoleEditor, RoleViewer}, b.Role) {
		return ErrCollaboratorRoleInvalid
	}

	return nil
}

func (b *BudgetCollaborator) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*BudgetCollaborator)
	return b.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies that budget and user exist and that the grant
// does not target the budget's owner.
func (b *BudgetCollaborator) checkIntegrity(tx *gorm.DB, toSave BudgetCollaborator) error {
	var budget Budget
	err := tx.First(&budget, "id = ?", toSave.BudgetID).Error
	if err != nil {
		return err
	}

	if budget.OwnerID == toSave.UserID {
		return ErrCollaboratorIsOwner
	}

	return tx.First(&User{}, "id = ?", toSave.UserID).Error
}

// Collaboration returns the grant for the user on the budget.
func Collaboration(db *gorm.DB, budgetID, userID uuid.UUID) (BudgetCollaborator, error) {
	var collaborator BudgetCollaborator
	err := db.First(&collaborator, "budget_id = ? AND user_id = ?", budgetID, userID).Error
	return collaborator, err
}

// Collaborators returns all grants on the budget in creation order, each
// with its user preloaded for email resolution.
func Collaborators(db *gorm.DB, budgetID uuid.UUID) ([]BudgetCollaborator, error) {
	var collaborators []BudgetCollaborator
	err := db.Preload("User").
		Where("budget_id = ?", budgetID).
		Order("datetime(created_at) ASC, id ASC").
		Find(&collaborators).Error
	if err != nil {
		return nil, err
	}

	return collaborators, nil
}
