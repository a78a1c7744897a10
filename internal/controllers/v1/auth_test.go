package v1_test

import (
	"net/http"

	v1 "github.com/commonpurse/backend/internal/controllers/v1"
	"github.com/commonpurse/backend/test"
)

func (suite *TestSuiteStandard) TestRegister() {
	user, token := suite.registerTestUser("Jane.Doe@Example.com")

	suite.Assert().Equal("jane.doe@example.com", user.Email)
	suite.Assert().NotEmpty(token)

	// Every new user gets a default budget
	budget := suite.ownBudget(token)
	suite.Assert().Equal("My Budget", budget.Name)
	suite.Assert().Equal(user.ID, budget.OwnerID)
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	_, _ = suite.registerTestUser("taken@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", v1.Credentials{
		Email:    "taken@example.com",
		Password: testPassword,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestRegisterInvalid() {
	tests := []struct {
		name        string
		credentials v1.Credentials
	}{
		{"empty email", v1.Credentials{Email: "  ", Password: testPassword}},
		{"short password", v1.Credentials{Email: "short@example.com", Password: "short"}},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", tt.credentials)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestRegisterEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/register", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLogin() {
	user, _ := suite.registerTestUser("login@example.com")

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", v1.Credentials{
		Email:    "login@example.com",
		Password: testPassword,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AuthResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(user.ID, response.Data.User.ID)
	suite.Assert().NotEmpty(response.Data.Token)
}

func (suite *TestSuiteStandard) TestLoginInvalidCredentials() {
	_, _ = suite.registerTestUser("someone@example.com")

	// Unknown email and wrong password return the same error so that
	// accounts cannot be probed
	var messages []string
	for _, credentials := range []v1.Credentials{
		{Email: "someone@example.com", Password: "wrong password"},
		{Email: "unknown@example.com", Password: testPassword},
	} {
		recorder := test.Request(suite.T(), http.MethodPost, "/v1/auth/login", credentials)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)

		var response v1.AuthResponse
		test.DecodeResponse(suite.T(), &recorder, &response)
		suite.Require().NotNil(response.Error)
		messages = append(messages, *response.Error)
	}

	suite.Assert().Equal(messages[0], messages[1])
}

func (suite *TestSuiteStandard) TestAuthenticationRequired() {
	for _, path := range []string{"/v1/budget", "/v1/budgets", "/v1/envelopes", "/v1/transactions", "/v1/dashboard"} {
		recorder := test.Request(suite.T(), http.MethodGet, path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
	}
}

func (suite *TestSuiteStandard) TestAuthenticationInvalidToken() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets", "", test.BearerHeader("not a token"))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}
