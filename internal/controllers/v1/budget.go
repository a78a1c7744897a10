package v1

import (
	"errors"
	"net/http"

	"github.com/commonpurse/backend/internal/httputil"
	"github.com/commonpurse/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudgets)
	r.GET("", GetBudgets)
}

// RegisterMyBudgetRoutes registers the route for the caller's own budget.
func RegisterMyBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMyBudget)
	r.GET("", GetMyBudget)
}

// Budget is the representation of a budget in API v1.
type Budget struct {
	models.DefaultModel
	Name    string    `json:"name" example:"My Budget"`
	OwnerID uuid.UUID `json:"ownerId" example:"6b40dbb1-951b-4bd5-a1cd-4c29f16e0b15"`
}

func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		OwnerID:      model.OwnerID,
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // The budget, or null if the caller owns none
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of accessible budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budget [options]
func OptionsMyBudget(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get accessible budgets
// @Description	Returns all budgets the caller owns or collaborates on
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}

	budgets, err := models.AccessibleBudgets(models.DB, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get own budget
// @Description	Returns the budget the caller owns. Returns null data instead of a 404 when the caller owns no budget.
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Router			/v1/budget [get]
func GetMyBudget(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}

	budget, err := models.OwnedBudget(models.DB, user.ID)
	if err != nil {
		// Owning no budget is not an error, registration should have
		// created one but the schema does not enforce it
		if errors.Is(err, models.ErrResourceNotFound) {
			c.JSON(http.StatusOK, BudgetResponse{Data: nil})
			return
		}

		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	data := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}
