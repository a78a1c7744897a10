package models_test

import (
	"github.com/commonpurse/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestCheckPermission() {
	owner := suite.createTestUser(models.User{})
	editor := suite.createTestUser(models.User{})
	viewer := suite.createTestUser(models.User{})
	stranger := suite.createTestUser(models.User{})

	budget := suite.createTestBudget(models.Budget{OwnerID: owner.ID})
	_ = suite.createTestCollaborator(models.BudgetCollaborator{BudgetID: budget.ID, UserID: editor.ID, Role: models.RoleEditor})
	_ = suite.createTestCollaborator(models.BudgetCollaborator{BudgetID: budget.ID, UserID: viewer.ID, Role: models.RoleViewer})

	tests := []struct {
		name    string
		userID  uuid.UUID
		allowed []models.Role
		err     error
	}{
		{"owner matches OWNER", owner.ID, []models.Role{models.RoleOwner}, nil},
		{"owner matches any role set with OWNER", owner.ID, models.AllRoles, nil},
		{"ownership does not imply EDITOR", owner.ID, []models.Role{models.RoleEditor}, models.ErrNoBudgetPermission},
		{"editor matches EDITOR", editor.ID, []models.Role{models.RoleOwner, models.RoleEditor}, nil},
		{"editor does not match OWNER", editor.ID, []models.Role{models.RoleOwner}, models.ErrNoBudgetPermission},
		{"viewer matches VIEWER", viewer.ID, models.AllRoles, nil},
		{"viewer does not match EDITOR", viewer.ID, []models.Role{models.RoleOwner, models.RoleEditor}, models.ErrNoBudgetPermission},
		{"stranger never matches", stranger.ID, models.AllRoles, models.ErrNoBudgetPermission},
	}

	for _, tt := range tests {
		err := models.CheckPermission(models.DB, tt.userID, budget.ID, tt.allowed)
		if tt.err == nil {
			suite.Assert().NoError(err, tt.name)
		} else {
			suite.Assert().ErrorIs(err, tt.err, tt.name)
		}
	}
}

func (suite *TestSuiteStandard) TestCheckPermissionBudgetNotFound() {
	user := suite.createTestUser(models.User{})

	err := models.CheckPermission(models.DB, user.ID, uuid.New(), models.AllRoles)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
