//go:build integration
// +build integration

package repository

import (
	"testing"

	"team-registration-backend/internal/database/models"
	"team-registration-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ResultRepositoryTestSuite tests the ResultRepository and the fixture status
// writes it depends on.
type ResultRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ResultRepository
	fixtureRepo   *FixtureRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ResultRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewResultRepository(suite.baseTestSuite.DB)
	suite.fixtureRepo = NewFixtureRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ResultRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ResultRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ResultRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ResultRepositoryTestSuite) createFixture() *models.Fixture {
	fixture := suite.factories.Fixture.Create()
	suite.NoError(suite.fixtureRepo.Create(fixture))
	return fixture
}

// TestCreateAndGetByFixtureID tests recording and looking up a result
func (suite *ResultRepositoryTestSuite) TestCreateAndGetByFixtureID() {
	fixture := suite.createFixture()
	result := suite.factories.Result.WithFixture(fixture.ID)

	suite.NoError(suite.repo.Create(result))

	found, err := suite.repo.GetByFixtureID(fixture.ID)
	suite.NoError(err)
	suite.Equal(result.ID, found.ID)
	suite.Equal(result.Score, found.Score)
}

// TestOneResultPerFixture tests the unique index on fixture_id
func (suite *ResultRepositoryTestSuite) TestOneResultPerFixture() {
	fixture := suite.createFixture()

	first := suite.factories.Result.WithFixture(fixture.ID)
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.Result.WithFixture(fixture.ID)
	err := suite.repo.Create(second)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByFixtureIDNotFound tests looking up a result for an unplayed fixture
func (suite *ResultRepositoryTestSuite) TestGetByFixtureIDNotFound() {
	found, err := suite.repo.GetByFixtureID(uuid.New())

	suite.Nil(found)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSetCompleted tests marking a fixture completed with its final score
func (suite *ResultRepositoryTestSuite) TestSetCompleted() {
	fixture := suite.createFixture()

	suite.NoError(suite.fixtureRepo.SetCompleted(fixture.ID, "2-1"))

	found, err := suite.fixtureRepo.GetByID(fixture.ID)
	suite.NoError(err)
	suite.Equal(models.FixtureStatusCompleted, found.Status)
	suite.Equal("2-1", found.Score)
}

// TestResultRepositoryTestSuite runs the test suite
func TestResultRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ResultRepositoryTestSuite))
}
