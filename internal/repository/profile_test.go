//go:build integration
// +build integration

package repository

import (
	"testing"

	"pipeline-crm-backend/internal/database/models"
	"pipeline-crm-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProfileRepositoryTestSuite tests the ProfileRepository
type ProfileRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProfileRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProfileRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProfileRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProfileRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProfileRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProfileRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByEmail tests the sign-in lookup path
func (suite *ProfileRepositoryTestSuite) TestCreateAndGetByEmail() {
	profile := suite.factories.Profile.WithEmail("lookup@test.com")

	suite.NoError(suite.repo.Create(profile))

	found, err := suite.repo.GetByEmail("lookup@test.com")
	suite.NoError(err)
	suite.Equal(profile.ID, found.ID)
	suite.Equal(models.RoleOperador, found.Role)
	suite.True(found.IsActive)
}

// TestCreateDuplicateEmail tests the unique email constraint
func (suite *ProfileRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.NoError(suite.repo.Create(suite.factories.Profile.WithEmail("dup@test.com")))

	err := suite.repo.Create(suite.factories.Profile.WithEmail("dup@test.com"))

	suite.Error(err)
}

// TestUpdateRole tests the role change path
func (suite *ProfileRepositoryTestSuite) TestUpdateRole() {
	profile := suite.factories.Profile.Create()
	suite.NoError(suite.repo.Create(profile))

	suite.NoError(suite.repo.UpdateRole(profile.ID, models.RoleSupervisor))

	found, err := suite.repo.GetByID(profile.ID)
	suite.NoError(err)
	suite.Equal(models.RoleSupervisor, found.Role)
}

// TestSetActiveStatus tests deactivation and reactivation
func (suite *ProfileRepositoryTestSuite) TestSetActiveStatus() {
	profile := suite.factories.Profile.Create()
	suite.NoError(suite.repo.Create(profile))

	suite.NoError(suite.repo.SetActiveStatus(profile.ID, false))

	found, err := suite.repo.GetByID(profile.ID)
	suite.NoError(err)
	suite.False(found.IsActive)

	suite.NoError(suite.repo.SetActiveStatus(profile.ID, true))
	found, err = suite.repo.GetByID(profile.ID)
	suite.NoError(err)
	suite.True(found.IsActive)
}

// TestUpdateRoleNotFound tests updating a missing profile
func (suite *ProfileRepositoryTestSuite) TestUpdateRoleNotFound() {
	err := suite.repo.UpdateRole(uuid.New(), models.RoleAdmin)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestProfileRepositoryTestSuite runs the test suite
func TestProfileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileRepositoryTestSuite))
}
