package service_test

import (
	"testing"
	"time"

	"team-registration-backend/internal/database/models"
	apperrors "team-registration-backend/internal/errors"
	"team-registration-backend/internal/mocks"
	"team-registration-backend/internal/service"
	"team-registration-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FixtureServiceTestSuite tests the fixture service
type FixtureServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *mocks.MockFixtureRepositoryInterface
	service   *service.FixtureService
	factories *testutils.FactorySet
}

// SetupTest sets up the test suite
func (suite *FixtureServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockFixtureRepositoryInterface(suite.ctrl)
	suite.service = service.NewFixtureService(suite.mockRepo, validator.New())
	suite.factories = testutils.NewFactorySet()
}

// TearDownTest cleans up after each test
func (suite *FixtureServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateFixture tests scheduling a fixture
func (suite *FixtureServiceTestSuite) TestCreateFixture() {
	req := &service.CreateFixtureRequest{
		HomeTeam:  "Thunder FC",
		AwayTeam:  "Lightning United",
		Venue:     "Main Ground",
		KickoffAt: time.Date(2026, 9, 12, 16, 0, 0, 0, time.UTC),
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	fixture, err := suite.service.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Thunder FC", fixture.HomeTeam)
	assert.Equal(suite.T(), "Lightning United", fixture.AwayTeam)
	assert.Equal(suite.T(), models.FixtureStatusScheduled, fixture.Status)
}

// TestCreateFixtureValidationError tests scheduling with a missing team name
func (suite *FixtureServiceTestSuite) TestCreateFixtureValidationError() {
	req := &service.CreateFixtureRequest{
		HomeTeam:  "Thunder FC",
		KickoffAt: time.Date(2026, 9, 12, 16, 0, 0, 0, time.UTC),
	}

	fixture, err := suite.service.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), fixture)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetFixtureNotFound tests retrieving a missing fixture
func (suite *FixtureServiceTestSuite) TestGetFixtureNotFound() {
	missing := suite.factories.Fixture.Create()

	suite.mockRepo.EXPECT().GetByID(missing.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	fixture, err := suite.service.GetByID(missing.ID)

	assert.Nil(suite.T(), fixture)
	assert.ErrorIs(suite.T(), err, apperrors.ErrFixtureNotFound)
}

// TestUpdateFixture tests rescheduling and settling a fixture
func (suite *FixtureServiceTestSuite) TestUpdateFixture() {
	existing := suite.factories.Fixture.Create()
	req := &service.UpdateFixtureRequest{
		HomeTeam:  existing.HomeTeam,
		AwayTeam:  existing.AwayTeam,
		Venue:     "East Field",
		KickoffAt: existing.KickoffAt.Add(24 * time.Hour),
	}

	suite.mockRepo.EXPECT().GetByID(existing.ID).Return(existing, nil).Times(1)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	fixture, err := suite.service.Update(existing.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "East Field", fixture.Venue)
	assert.Equal(suite.T(), req.KickoffAt, fixture.KickoffAt)
}

// TestUpdateFixtureBadStatus tests rejection of an unrecognized status
func (suite *FixtureServiceTestSuite) TestUpdateFixtureBadStatus() {
	existing := suite.factories.Fixture.Create()
	req := &service.UpdateFixtureRequest{
		HomeTeam:  existing.HomeTeam,
		AwayTeam:  existing.AwayTeam,
		KickoffAt: existing.KickoffAt,
		Status:    "postponed",
	}

	fixture, err := suite.service.Update(existing.ID, req)

	assert.Nil(suite.T(), fixture)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "postponed")
}

// TestDeleteFixtureNotFound tests deleting a missing fixture
func (suite *FixtureServiceTestSuite) TestDeleteFixtureNotFound() {
	missing := suite.factories.Fixture.Create()

	suite.mockRepo.EXPECT().Delete(missing.ID).Return(gorm.ErrRecordNotFound).Times(1)

	err := suite.service.Delete(missing.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrFixtureNotFound)
}

// TestFixtureServiceTestSuite runs the test suite
func TestFixtureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FixtureServiceTestSuite))
}
