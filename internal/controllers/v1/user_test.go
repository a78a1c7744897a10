package v1_test

import (
	"net/http"

	v1 "github.com/commonpurse/backend/internal/controllers/v1"
	"github.com/commonpurse/backend/test"
)

func (suite *TestSuiteStandard) TestFindUserByEmail() {
	target, _ := suite.registerTestUser("findme@example.com")
	_, token := suite.registerTestUser("")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/users?email=findme@example.com", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(target.ID, response.Data.ID)
	suite.Assert().Equal("findme@example.com", response.Data.Email)
}

func (suite *TestSuiteStandard) TestFindUserByEmailNoMatch() {
	_, token := suite.registerTestUser("")

	// No match returns null data, not a 404, so that clients can search
	// first and decide after
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/users?email=nobody@example.com", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Nil(response.Data)
	suite.Assert().Nil(response.Error)
}

func (suite *TestSuiteStandard) TestFindUserByEmailMissingParameter() {
	_, token := suite.registerTestUser("")

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/users", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
