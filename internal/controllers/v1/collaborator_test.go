package v1_test

import (
	"net/http"

	v1 "github.com/commonpurse/backend/internal/controllers/v1"
	"github.com/commonpurse/backend/internal/models"
	"github.com/commonpurse/backend/test"
	"github.com/google/uuid"
)

func collaboratorsPath(budgetID uuid.UUID) string {
	return "/v1/budgets/" + budgetID.String() + "/collaborators"
}

func (suite *TestSuiteStandard) TestCreateCollaborator() {
	_, ownerToken := suite.registerTestUser("")
	invitee, _ := suite.registerTestUser("invitee@example.com")
	budget := suite.ownBudget(ownerToken)

	collaborator := suite.createTestCollaborator(ownerToken, budget.ID, v1.CollaboratorEditable{
		UserID: invitee.ID,
		Role:   models.RoleEditor,
	})

	suite.Assert().Equal(budget.ID, collaborator.BudgetID)
	suite.Assert().Equal(invitee.ID, collaborator.User.ID)
	suite.Assert().Equal("invitee@example.com", collaborator.User.Email)
	suite.Assert().Equal(models.RoleEditor, collaborator.Role)
}

func (suite *TestSuiteStandard) TestCreateCollaboratorSelfInvite() {
	user, token := suite.registerTestUser("")
	budget := suite.ownBudget(token)

	recorder := test.Request(suite.T(), http.MethodPost, collaboratorsPath(budget.ID),
		v1.CollaboratorEditable{UserID: user.ID, Role: models.RoleEditor}, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateCollaboratorNotOwner() {
	_, ownerToken := suite.registerTestUser("")
	_, strangerToken := suite.registerTestUser("")
	invitee, _ := suite.registerTestUser("")
	budget := suite.ownBudget(ownerToken)

	editable := v1.CollaboratorEditable{UserID: invitee.ID, Role: models.RoleViewer}

	// A budget the caller does not own and a budget that does not exist
	// are indistinguishable
	recorder := test.Request(suite.T(), http.MethodPost, collaboratorsPath(budget.ID), editable, test.BearerHeader(strangerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	notFound := test.Request(suite.T(), http.MethodPost, collaboratorsPath(uuid.New()), editable, test.BearerHeader(strangerToken))
	test.AssertHTTPStatus(suite.T(), &notFound, http.StatusNotFound)

	var first, second v1.CollaboratorResponse
	test.DecodeResponse(suite.T(), &recorder, &first)
	test.DecodeResponse(suite.T(), &notFound, &second)
	suite.Require().NotNil(first.Error)
	suite.Require().NotNil(second.Error)
	suite.Assert().Equal(*first.Error, *second.Error)
}

func (suite *TestSuiteStandard) TestCreateCollaboratorUnknownInvitee() {
	_, ownerToken := suite.registerTestUser("")
	budget := suite.ownBudget(ownerToken)

	recorder := test.Request(suite.T(), http.MethodPost, collaboratorsPath(budget.ID),
		v1.CollaboratorEditable{UserID: uuid.New(), Role: models.RoleViewer}, test.BearerHeader(ownerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateCollaboratorDuplicate() {
	_, ownerToken := suite.registerTestUser("")
	invitee, _ := suite.registerTestUser("")
	budget := suite.ownBudget(ownerToken)

	_ = suite.createTestCollaborator(ownerToken, budget.ID, v1.CollaboratorEditable{
		UserID: invitee.ID,
		Role:   models.RoleViewer,
	})

	recorder := test.Request(suite.T(), http.MethodPost, collaboratorsPath(budget.ID),
		v1.CollaboratorEditable{UserID: invitee.ID, Role: models.RoleEditor}, test.BearerHeader(ownerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestCreateCollaboratorInvalidRole() {
	_, ownerToken := suite.registerTestUser("")
	invitee, _ := suite.registerTestUser("")
	budget := suite.ownBudget(ownerToken)

	recorder := test.Request(suite.T(), http.MethodPost, collaboratorsPath(budget.ID),
		v1.CollaboratorEditable{UserID: invitee.ID, Role: "OWNER"}, test.BearerHeader(ownerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetCollaborators() {
	_, ownerToken := suite.registerTestUser("")
	editor, _ := suite.registerTestUser("editor@example.com")
	viewer, viewerToken := suite.registerTestUser("viewer@example.com")
	budget := suite.ownBudget(ownerToken)

	_ = suite.createTestCollaborator(ownerToken, budget.ID, v1.CollaboratorEditable{UserID: editor.ID, Role: models.RoleEditor})
	_ = suite.createTestCollaborator(ownerToken, budget.ID, v1.CollaboratorEditable{UserID: viewer.ID, Role: models.RoleViewer})

	// Any accessor may list collaborators, including a viewer
	recorder := test.Request(suite.T(), http.MethodGet, collaboratorsPath(budget.ID), "", test.BearerHeader(viewerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CollaboratorListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	// Grants created in the same second tie on created_at, so the order
	// between them is not guaranteed
	emails := []string{response.Data[0].User.Email, response.Data[1].User.Email}
	suite.Assert().ElementsMatch([]string{"editor@example.com", "viewer@example.com"}, emails)
}

func (suite *TestSuiteStandard) TestGetCollaboratorsStrangerForbidden() {
	_, ownerToken := suite.registerTestUser("")
	_, strangerToken := suite.registerTestUser("")
	budget := suite.ownBudget(ownerToken)

	recorder := test.Request(suite.T(), http.MethodGet, collaboratorsPath(budget.ID), "", test.BearerHeader(strangerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusForbidden)
}

func (suite *TestSuiteStandard) TestUpdateCollaborator() {
	_, ownerToken := suite.registerTestUser("")
	invitee, _ := suite.registerTestUser("")
	budget := suite.ownBudget(ownerToken)

	_ = suite.createTestCollaborator(ownerToken, budget.ID, v1.CollaboratorEditable{UserID: invitee.ID, Role: models.RoleViewer})

	recorder := test.Request(suite.T(), http.MethodPatch, collaboratorsPath(budget.ID)+"/"+invitee.ID.String(),
		v1.CollaboratorEditable{Role: models.RoleEditor}, test.BearerHeader(ownerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CollaboratorResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(models.RoleEditor, response.Data.Role)
}

func (suite *TestSuiteStandard) TestUpdateCollaboratorInvalid() {
	owner, ownerToken := suite.registerTestUser("")
	invitee, _ := suite.registerTestUser("")
	budget := suite.ownBudget(ownerToken)

	_ = suite.createTestCollaborator(ownerToken, budget.ID, v1.CollaboratorEditable{UserID: invitee.ID, Role: models.RoleViewer})

	// The owner's role cannot be changed
	recorder := test.Request(suite.T(), http.MethodPatch, collaboratorsPath(budget.ID)+"/"+owner.ID.String(),
		v1.CollaboratorEditable{Role: models.RoleEditor}, test.BearerHeader(ownerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// A user without a grant has no role to change
	recorder = test.Request(suite.T(), http.MethodPatch, collaboratorsPath(budget.ID)+"/"+uuid.New().String(),
		v1.CollaboratorEditable{Role: models.RoleEditor}, test.BearerHeader(ownerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	// An invalid role is rejected
	recorder = test.Request(suite.T(), http.MethodPatch, collaboratorsPath(budget.ID)+"/"+invitee.ID.String(),
		v1.CollaboratorEditable{Role: "ADMIN"}, test.BearerHeader(ownerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteCollaborator() {
	_, ownerToken := suite.registerTestUser("")
	invitee, inviteeToken := suite.registerTestUser("")
	budget := suite.ownBudget(ownerToken)

	_ = suite.createTestCollaborator(ownerToken, budget.ID, v1.CollaboratorEditable{UserID: invitee.ID, Role: models.RoleViewer})

	recorder := test.Request(suite.T(), http.MethodDelete, collaboratorsPath(budget.ID)+"/"+invitee.ID.String(), "", test.BearerHeader(ownerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// The removed collaborator no longer sees the budget
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/budgets", "", test.BearerHeader(inviteeToken))
	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestDeleteCollaboratorInvalid() {
	owner, ownerToken := suite.registerTestUser("")
	_, strangerToken := suite.registerTestUser("")
	budget := suite.ownBudget(ownerToken)

	// The owner cannot be removed from their own budget
	recorder := test.Request(suite.T(), http.MethodDelete, collaboratorsPath(budget.ID)+"/"+owner.ID.String(), "", test.BearerHeader(ownerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// A user without a grant cannot be removed
	recorder = test.Request(suite.T(), http.MethodDelete, collaboratorsPath(budget.ID)+"/"+uuid.New().String(), "", test.BearerHeader(ownerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	// Only the owner can remove collaborators
	recorder = test.Request(suite.T(), http.MethodDelete, collaboratorsPath(budget.ID)+"/"+owner.ID.String(), "", test.BearerHeader(strangerToken))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
