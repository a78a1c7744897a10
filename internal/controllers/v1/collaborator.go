package v1

import (
	"errors"
	"net/http"

	"github.com/commonpurse/backend/internal/httputil"
	"github.com/commonpurse/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCollaboratorRoutes registers the routes for budget collaborators
// with the RouterGroup that is passed.
func RegisterCollaboratorRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCollaboratorList)
		r.GET("", GetCollaborators)
		r.POST("", CreateCollaborator)
	}

	// Collaborator with user ID
	{
		r.OPTIONS("/:userId", OptionsCollaboratorDetail)
		r.PATCH("/:userId", UpdateCollaborator)
		r.DELETE("/:userId", DeleteCollaborator)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Collaborators
// @Success		204
// @Failure		400	{object}	httpError
// @Param			budgetId	path	URIBudget	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{budgetId}/collaborators [options]
func OptionsCollaboratorList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Collaborators
// @Success		204
// @Failure		400	{object}	httpError
// @Param			budgetId	path	URICollaborator	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{budgetId}/collaborators/{userId} [options]
func OptionsCollaboratorDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// @Summary		Invite collaborator
// @Description	Grants another user access to a budget the caller owns
// @Tags			Collaborators
// @Produce		json
// @Success		201			{object}	CollaboratorResponse
// @Failure		400			{object}	CollaboratorResponse
// @Failure		404			{object}	CollaboratorResponse
// @Failure		409			{object}	CollaboratorResponse
// @Failure		500			{object}	CollaboratorResponse
// @Param			budgetId	path		URIBudget				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			collaborator	body	CollaboratorEditable	true	"Collaborator"
// @Router			/v1/budgets/{budgetId}/collaborators [post]
func CreateCollaborator(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}

	var uri URIBudget
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorResponse{Error: &e})
		return
	}

	var editable CollaboratorEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorResponse{Error: &e})
		return
	}

	if editable.UserID == user.ID {
		e := errSelfInvite.Error()
		c.JSON(http.StatusBadRequest, CollaboratorResponse{Error: &e})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.BudgetID).Error
	if errors.Is(err, models.ErrResourceNotFound) || (err == nil && budget.OwnerID != user.ID) {
		e := errNotFoundOrNotOwner.Error()
		c.JSON(http.StatusNotFound, CollaboratorResponse{Error: &e})
		return
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorResponse{Error: &e})
		return
	}

	collaborator := editable.model(budget.ID)
	err = models.DB.Create(&collaborator).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorResponse{Error: &e})
		return
	}

	data, err := newCollaborator(models.DB, collaborator)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, CollaboratorResponse{Data: &data})
}

// @Summary		Get collaborators
// @Description	Returns the collaborators of a budget the caller has access to
// @Tags			Collaborators
// @Produce		json
// @Success		200			{object}	CollaboratorListResponse
// @Failure		400			{object}	CollaboratorListResponse
// @Failure		403			{object}	CollaboratorListResponse
// @Failure		404			{object}	CollaboratorListResponse
// @Failure		500			{object}	CollaboratorListResponse
// @Param			budgetId	path		URIBudget	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{budgetId}/collaborators [get]
func GetCollaborators(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}

	var uri URIBudget
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorListResponse{Error: &e})
		return
	}

	err = models.CheckPermission(models.DB, user.ID, uri.BudgetID.UUID, models.AllRoles)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorListResponse{Error: &e})
		return
	}

	collaborators, err := models.Collaborators(models.DB, uri.BudgetID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorListResponse{Error: &e})
		return
	}

	data := make([]Collaborator, 0, len(collaborators))
	for _, collaborator := range collaborators {
		apiResource, err := newCollaborator(models.DB, collaborator)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), CollaboratorListResponse{Error: &e})
			return
		}
		data = append(data, apiResource)
	}

	c.JSON(http.StatusOK, CollaboratorListResponse{Data: data})
}

// @Summary		Update collaborator
// @Description	Changes the role of a collaborator on a budget the caller owns
// @Tags			Collaborators
// @Accept			json
// @Produce		json
// @Success		200			{object}	CollaboratorResponse
// @Failure		400			{object}	CollaboratorResponse
// @Failure		404			{object}	CollaboratorResponse
// @Failure		500			{object}	CollaboratorResponse
// @Param			budgetId	path		URICollaborator			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			collaborator	body	CollaboratorEditable	true	"Collaborator"
// @Router			/v1/budgets/{budgetId}/collaborators/{userId} [patch]
func UpdateCollaborator(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}

	var uri URICollaborator
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorResponse{Error: &e})
		return
	}

	var editable CollaboratorEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorResponse{Error: &e})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.BudgetID).Error
	if errors.Is(err, models.ErrResourceNotFound) || (err == nil && budget.OwnerID != user.ID) {
		e := errNotFoundOrNotOwner.Error()
		c.JSON(http.StatusNotFound, CollaboratorResponse{Error: &e})
		return
	}
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorResponse{Error: &e})
		return
	}

	if uri.UserID.UUID == budget.OwnerID {
		e := errOwnerRoleChange.Error()
		c.JSON(http.StatusBadRequest, CollaboratorResponse{Error: &e})
		return
	}

	collaborator, err := models.Collaboration(models.DB, budget.ID, uri.UserID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorResponse{Error: &e})
		return
	}

	// Save runs the full validation hooks for the new role
	collaborator.Role = editable.Role
	err = models.DB.Save(&collaborator).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorResponse{Error: &e})
		return
	}

	data, err := newCollaborator(models.DB, collaborator)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CollaboratorResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CollaboratorResponse{Data: &data})
}

// @Summary		Remove collaborator
// @Description	Revokes a collaborator's access to a budget the caller owns
// @Tags			Collaborators
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			budgetId	path	URICollaborator	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{budgetId}/collaborators/{userId} [delete]
func DeleteCollaborator(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}

	var uri URICollaborator
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var budget models.Budget
	err = models.DB.First(&budget, uri.BudgetID).Error
	if errors.Is(err, models.ErrResourceNotFound) || (err == nil && budget.OwnerID != user.ID) {
		c.JSON(http.StatusNotFound, httpError{Error: errNotFoundOrNotOwner.Error()})
		return
	}
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if uri.UserID.UUID == budget.OwnerID {
		c.JSON(http.StatusBadRequest, httpError{Error: errOwnerRemoval.Error()})
		return
	}

	collaborator, err := models.Collaboration(models.DB, budget.ID, uri.UserID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&collaborator).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
