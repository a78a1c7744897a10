package v1

import (
	"net/http"
	"time"

	"github.com/commonpurse/backend/internal/httputil"
	"github.com/commonpurse/backend/internal/models"
	"github.com/commonpurse/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)

	r.OPTIONS("/spending-by-envelope", OptionsSpendingByEnvelope)
	r.GET("/spending-by-envelope", GetSpendingByEnvelope)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard/spending-by-envelope [options]
func OptionsSpendingByEnvelope(c *gin.Context) {
	httputil.OptionsGet(c)
}

// dashboardBudgetIDs resolves the budget scope for the dashboard queries.
//
// Callers may narrow the scope with budgetId query parameters, but the result
// is always the intersection with the budgets the user has access to. Ids the
// user cannot access are dropped silently.
func dashboardBudgetIDs(c *gin.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	accessible, err := models.AccessibleBudgetIDs(models.DB, userID)
	if err != nil {
		return nil, err
	}

	params := c.QueryArray("budgetId")
	if len(params) == 0 {
		return accessible, nil
	}

	requested := make([]uuid.UUID, 0, len(params))
	for _, param := range params {
		id, err := uuid.Parse(param)
		if err != nil {
			return nil, httputil.ErrInvalidUUID
		}
		requested = append(requested, id)
	}

	budgetIDs := make([]uuid.UUID, 0, len(requested))
	for _, id := range requested {
		if slices.Contains(accessible, id) {
			budgetIDs = append(budgetIDs, id)
		}
	}

	return budgetIDs, nil
}

// @Summary		Get dashboard
// @Description	Returns the current month's income and expense totals across the caller's accessible budgets
// @Tags			Dashboard
// @Produce		json
// @Success		200			{object}	DashboardResponse
// @Failure		400			{object}	DashboardResponse
// @Failure		500			{object}	DashboardResponse
// @Param			budgetId	query		string	false	"Limit to these budget IDs. Repeatable."
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}

	budgetIDs, err := dashboardBudgetIDs(c, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	month := types.MonthOf(time.Now())
	totals, err := models.DashboardTotals(models.DB, budgetIDs, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &Dashboard{
		Month:   month,
		Income:  totals.Income,
		Expense: totals.Expense,
	}})
}

// @Summary		Get spending by envelope
// @Description	Returns the current month's expenses grouped by envelope, highest total first
// @Tags			Dashboard
// @Produce		json
// @Success		200			{object}	EnvelopeSpendingResponse
// @Failure		400			{object}	EnvelopeSpendingResponse
// @Failure		500			{object}	EnvelopeSpendingResponse
// @Param			budgetId	query		string	false	"Limit to these budget IDs. Repeatable."
// @Router			/v1/dashboard/spending-by-envelope [get]
func GetSpendingByEnvelope(c *gin.Context) {
	user, ok := caller(c)
	if !ok {
		return
	}

	budgetIDs, err := dashboardBudgetIDs(c, user.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeSpendingResponse{Error: &e})
		return
	}

	spending, err := models.SpendingByEnvelope(models.DB, budgetIDs, types.MonthOf(time.Now()))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeSpendingResponse{Error: &e})
		return
	}

	data := make([]EnvelopeSpending, 0, len(spending))
	for _, row := range spending {
		data = append(data, newEnvelopeSpending(row))
	}

	c.JSON(http.StatusOK, EnvelopeSpendingResponse{Data: data})
}
