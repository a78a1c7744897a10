package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/commonpurse/backend/internal/controllers/v1"
	"github.com/commonpurse/backend/internal/models"
	"github.com/commonpurse/backend/internal/types"
	"github.com/commonpurse/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetDashboard() {
	_, token := suite.registerTestUser("")
	budget := suite.ownBudget(token)
	envelope := suite.createTestEnvelope(token, v1.EnvelopeEditable{BudgetID: budget.ID})

	now := time.Now().UTC()
	_ = suite.createTestTransaction(token, v1.TransactionEditable{
		EnvelopeID: envelope.ID,
		Amount:     decimal.NewFromFloat(2000),
		Type:       models.TransactionTypeIncome,
		Date:       now,
	})
	_ = suite.createTestTransaction(token, v1.TransactionEditable{
		EnvelopeID: envelope.ID,
		Amount:     decimal.NewFromFloat(150),
		Type:       models.TransactionTypeExpense,
		Date:       now,
	})

	// A transaction from last month does not count
	_ = suite.createTestTransaction(token, v1.TransactionEditable{
		EnvelopeID: envelope.ID,
		Amount:     decimal.NewFromFloat(999),
		Type:       models.TransactionTypeExpense,
		Date:       types.MonthOf(now).AddDate(0, -1).Start(),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Income.Equal(decimal.NewFromFloat(2000)), "income is %s, should be 2000", response.Data.Income)
	suite.Assert().True(response.Data.Expense.Equal(decimal.NewFromFloat(150)), "expense is %s, should be 150", response.Data.Expense)
}

func (suite *TestSuiteStandard) TestGetDashboardEmpty() {
	_, token := suite.registerTestUser("")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Income.IsZero())
	suite.Assert().True(response.Data.Expense.IsZero())
}

func (suite *TestSuiteStandard) TestGetDashboardIgnoresInaccessibleBudgets() {
	_, token := suite.registerTestUser("")
	_, otherToken := suite.registerTestUser("")

	otherBudget := suite.ownBudget(otherToken)
	otherEnvelope := suite.createTestEnvelope(otherToken, v1.EnvelopeEditable{BudgetID: otherBudget.ID})
	_ = suite.createTestTransaction(otherToken, v1.TransactionEditable{
		EnvelopeID: otherEnvelope.ID,
		Amount:     decimal.NewFromFloat(500),
		Type:       models.TransactionTypeExpense,
		Date:       time.Now().UTC(),
	})

	// Asking for someone else's budget id yields no data, the requested
	// set is intersected with the accessible one
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard?budgetId="+otherBudget.ID.String(), "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Expense.IsZero())
}

func (suite *TestSuiteStandard) TestGetDashboardInvalidBudgetID() {
	_, token := suite.registerTestUser("")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard?budgetId=not-a-uuid", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetSpendingByEnvelope() {
	_, token := suite.registerTestUser("")
	budget := suite.ownBudget(token)
	groceries := suite.createTestEnvelope(token, v1.EnvelopeEditable{Name: "Groceries", BudgetID: budget.ID})
	rent := suite.createTestEnvelope(token, v1.EnvelopeEditable{Name: "Rent", BudgetID: budget.ID})

	now := time.Now().UTC()
	_ = suite.createTestTransaction(token, v1.TransactionEditable{
		EnvelopeID: groceries.ID,
		Amount:     decimal.NewFromFloat(120),
		Type:       models.TransactionTypeExpense,
		Date:       now,
	})
	_ = suite.createTestTransaction(token, v1.TransactionEditable{
		EnvelopeID: rent.ID,
		Amount:     decimal.NewFromFloat(800),
		Type:       models.TransactionTypeExpense,
		Date:       now,
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard/spending-by-envelope", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EnvelopeSpendingResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	// Highest total first
	suite.Assert().Equal("Rent", response.Data[0].Name)
	suite.Assert().Equal("Groceries", response.Data[1].Name)
}

func (suite *TestSuiteStandard) TestGetSpendingByEnvelopeDeletedEnvelope() {
	_, token := suite.registerTestUser("")
	budget := suite.ownBudget(token)
	envelope := suite.createTestEnvelope(token, v1.EnvelopeEditable{Name: "Short-lived", BudgetID: budget.ID})

	_ = suite.createTestTransaction(token, v1.TransactionEditable{
		EnvelopeID: envelope.ID,
		Amount:     decimal.NewFromFloat(42),
		Type:       models.TransactionTypeExpense,
		Date:       time.Now().UTC(),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, "/v1/envelopes/"+envelope.ID.String(), "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/dashboard/spending-by-envelope", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EnvelopeSpendingResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(models.UnknownEnvelopeName, response.Data[0].Name)
	suite.Assert().True(response.Data[0].Total.Equal(decimal.NewFromFloat(42)))
}
