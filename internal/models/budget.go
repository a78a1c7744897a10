package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultBudgetName is used when a budget is created without a name.
const DefaultBudgetName = "My Budget"

// Budget is the top level resource of Common Purse. It is owned by exactly
// one user; other users access it through BudgetCollaborator grants.
type Budget struct {
	DefaultModel
	Owner   User `json:"-"`
	OwnerID uuid.UUID
	Name    string
}

// BeforeSave trims the name and falls back to the default name.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		b.Name = DefaultBudgetName
	}

	return nil
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Budget)
	return tx.First(&User{}, "id = ?", toSave.OwnerID).Error
}

// OwnedBudget returns the budget the user owns, if any.
func OwnedBudget(db *gorm.DB, userID uuid.UUID) (Budget, error) {
	var budget Budget
	err := db.First(&budget, "owner_id = ?", userID).Error
	return budget, err
}

// AccessibleBudgets returns all budgets the user owns or collaborates on.
//
// Owned budgets come first, collaborations after, each in creation order.
func AccessibleBudgets(db *gorm.DB, userID uuid.UUID) ([]Budget, error) {
	var owned []Budget
	err := db.Order("datetime(created_at) ASC, id ASC").Find(&owned, "owner_id = ?", userID).Error
	if err != nil {
		return nil, err
	}

	var collaborations []BudgetCollaborator
	err = db.Order("datetime(created_at) ASC, id ASC").Find(&collaborations, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}

	budgets := owned
	seen := make(map[uuid.UUID]bool, len(owned))
	for _, budget := range owned {
		seen[budget.ID] = true
	}

	for _, collaboration := range collaborations {
		if seen[collaboration.BudgetID] {
			continue
		}
		seen[collaboration.BudgetID] = true

		var budget Budget
		err = db.First(&budget, "id = ?", collaboration.BudgetID).Error
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}

	return budgets, nil
}

// AccessibleBudgetIDs returns the IDs of all budgets the user owns or
// collaborates on, deduplicated.
func AccessibleBudgetIDs(db *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error) {
	budgets, err := AccessibleBudgets(db, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(budgets))
	for _, budget := range budgets {
		ids = append(ids, budget.ID)
	}

	return ids, nil
}
