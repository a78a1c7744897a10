package models_test

import (
	"github.com/commonpurse/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := suite.createTestUser(models.User{Email: "  Jane.Doe@Example.com "})
	suite.Assert().Equal("jane.doe@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	_ = suite.createTestUser(models.User{Email: "taken@example.com"})

	user := models.User{Email: "Taken@example.com", PasswordHash: "hash"}
	err := models.DB.Create(&user).Error
	suite.Assert().ErrorIs(err, models.ErrEmailAlreadyRegistered)
}

func (suite *TestSuiteStandard) TestRegisterUserCreatesDefaultBudget() {
	user, err := models.RegisterUser(models.DB, "new@example.com", "hash")
	suite.Require().NoError(err)

	budget, err := models.OwnedBudget(models.DB, user.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal(models.DefaultBudgetName, budget.Name)
	suite.Assert().Equal(user.ID, budget.OwnerID)
}

func (suite *TestSuiteStandard) TestRegisterUserDuplicate() {
	_, err := models.RegisterUser(models.DB, "dup@example.com", "hash")
	suite.Require().NoError(err)

	_, err = models.RegisterUser(models.DB, "dup@example.com", "other")
	suite.Assert().ErrorIs(err, models.ErrEmailAlreadyRegistered)

	// The failed registration must not leave a user behind
	var count int64
	models.DB.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestFindUserByEmail() {
	user := suite.createTestUser(models.User{Email: "findme@example.com"})

	found, err := models.FindUserByEmail(models.DB, " FindMe@Example.com ")
	suite.Require().NoError(err)
	suite.Assert().Equal(user.ID, found.ID)

	_, err = models.FindUserByEmail(models.DB, "nobody@example.com")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
