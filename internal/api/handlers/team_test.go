package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"team-registration-backend/internal/api/handlers"
	"team-registration-backend/internal/database/models"
	apperrors "team-registration-backend/internal/errors"
	"team-registration-backend/internal/mocks"
	"team-registration-backend/internal/service"
	"team-registration-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
	factories   *testutils.FactorySet
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()

	suite.handler = handlers.NewTeamHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	teams := v1.Group("/teams")
	{
		teams.POST("/register", suite.handler.RegisterTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.GET("/by-name/:name", suite.handler.GetTeamByName)
		teams.POST("/verify-secret", suite.handler.VerifySecret)
		teams.PUT("/:id/roster", suite.handler.UpdateRoster)
		teams.PATCH("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
		teams.POST("/:id/logo", suite.handler.UploadLogo)
		teams.PATCH("/:id/players/:playerId", suite.handler.UpdatePlayer)
		teams.POST("/:id/players/:playerId/image", suite.handler.UploadPlayerImage)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// teamResponse converts a model team into the wire shape the service returns
func teamResponse(team *models.Team) *service.TeamResponse {
	return &service.TeamResponse{
		ID:              team.ID,
		Name:            team.Name,
		Year:            team.Year,
		CaptainName:     team.CaptainName,
		ViceCaptainName: team.ViceCaptainName,
		LogoURL:         team.LogoURL,
		IsVerified:      team.IsVerified,
		Players:         team.Players,
		CreatedAt:       team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       team.UpdatedAt.Format(time.RFC3339),
	}
}

// rosterPayload marshals a 16-player submission for the multipart form
func (suite *TeamHandlerTestSuite) rosterPayload() string {
	roster := suite.factories.Team.Roster()
	inputs := make([]service.PlayerInput, len(roster))
	for i, p := range roster {
		inputs[i] = service.PlayerInput{
			Name:         p.Name,
			Position:     p.Position,
			JerseyNumber: p.JerseyNumber,
		}
	}
	raw, err := json.Marshal(inputs)
	require.NoError(suite.T(), err)
	return string(raw)
}

// TestRegisterTeam tests the RegisterTeam handler
func (suite *TeamHandlerTestSuite) TestRegisterTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		shell := suite.factories.Team.WithName("Thunder FC")

		requestBody := map[string]interface{}{
			"teamName":        "Thunder FC",
			"batchYear":       2024,
			"captainName":     "Alex Kim",
			"viceCaptainName": "Sam Rivera",
		}

		suite.mockService.EXPECT().
			CreateShell(gomock.Any()).
			Return(teamResponse(shell), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/register", requestBody)

		var response handlers.APIResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.True(t, response.Success)
		assert.Empty(t, response.SecretKey)
	})

	suite.T().Run("Name Taken", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"teamName":        "Thunder FC",
			"batchYear":       2024,
			"captainName":     "Alex Kim",
			"viceCaptainName": "Sam Rivera",
		}

		suite.mockService.EXPECT().
			CreateShell(gomock.Any()).
			Return(nil, apperrors.ErrTeamExists).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/register", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "team already exists")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/v1/teams/register", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestUpdateRoster tests the UpdateRoster handler with a multipart submission
func (suite *TeamHandlerTestSuite) TestUpdateRoster() {
	suite.T().Run("First Submission Returns Secret", func(t *testing.T) {
		team := suite.factories.Team.Rostered("Thunder FC", "issuedSecretKey12345")

		suite.mockService.EXPECT().
			UpdateRoster(gomock.Any(), team.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, players []service.PlayerInput, images []*multipart.FileHeader) (*service.TeamResponse, string, error) {
				assert.Len(t, players, 16)
				require.Len(t, images, 16)
				assert.Nil(t, images[0])
				assert.NotNil(t, images[3], "file keyed images[3] must land on slot 3")
				return teamResponse(team), "issuedSecretKey12345", nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeMultipartRequest(t, "PUT", "/api/v1/teams/"+team.ID.String()+"/roster",
			map[string]string{"players": suite.rosterPayload()},
			map[string][]byte{"images[3]": []byte("jpegbytes")},
			nil,
		)

		var response handlers.APIResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.Success)
		assert.Equal(t, "issuedSecretKey12345", response.SecretKey)
		assert.Contains(t, response.Message, "secret key")
	})

	suite.T().Run("Resubmission Has No Secret", func(t *testing.T) {
		team := suite.factories.Team.Rostered("Thunder FC", "issuedSecretKey12345")

		suite.mockService.EXPECT().
			UpdateRoster(gomock.Any(), team.ID, gomock.Any(), gomock.Any()).
			Return(teamResponse(team), "", nil).
			Times(1)

		recorder := suite.httpSuite.MakeMultipartRequest(t, "PUT", "/api/v1/teams/"+team.ID.String()+"/roster",
			map[string]string{"players": suite.rosterPayload()},
			nil,
			map[string]string{"X-Team-Secret": "issuedSecretKey12345"},
		)

		var response handlers.APIResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.Success)
		assert.Empty(t, response.SecretKey)
	})

	suite.T().Run("Roster Violation", func(t *testing.T) {
		team := suite.factories.Team.Create()

		suite.mockService.EXPECT().
			UpdateRoster(gomock.Any(), team.ID, gomock.Any(), gomock.Any()).
			Return(nil, "", &apperrors.RosterShapeError{Want: 16, Got: 11}).
			Times(1)

		recorder := suite.httpSuite.MakeMultipartRequest(t, "PUT", "/api/v1/teams/"+team.ID.String()+"/roster",
			map[string]string{"players": suite.rosterPayload()},
			nil, nil,
		)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "exactly 16")
	})

	suite.T().Run("Missing Players Field", func(t *testing.T) {
		team := suite.factories.Team.Create()

		recorder := suite.httpSuite.MakeMultipartRequest(t, "PUT", "/api/v1/teams/"+team.ID.String()+"/roster",
			map[string]string{"other": "field"},
			nil, nil,
		)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "players field is required")
	})

	suite.T().Run("Upload Timeout", func(t *testing.T) {
		team := suite.factories.Team.Create()

		suite.mockService.EXPECT().
			UpdateRoster(gomock.Any(), team.ID, gomock.Any(), gomock.Any()).
			Return(nil, "", apperrors.ErrUploadTimeout).
			Times(1)

		recorder := suite.httpSuite.MakeMultipartRequest(t, "PUT", "/api/v1/teams/"+team.ID.String()+"/roster",
			map[string]string{"players": suite.rosterPayload()},
			nil, nil,
		)

		testutils.AssertErrorResponse(t, recorder, http.StatusGatewayTimeout, "timed out")
	})
}

// TestVerifySecret tests the VerifySecret handler
func (suite *TeamHandlerTestSuite) TestVerifySecret() {
	suite.T().Run("Valid", func(t *testing.T) {
		suite.mockService.EXPECT().
			VerifySecret("Thunder FC", "issuedSecretKey12345").
			Return(true, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/verify-secret", map[string]string{
			"teamName":  "Thunder FC",
			"secretKey": "issuedSecretKey12345",
		})

		var response handlers.APIResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.Success)
		data, ok := response.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, data["valid"])
	})

	suite.T().Run("Invalid", func(t *testing.T) {
		suite.mockService.EXPECT().
			VerifySecret("Thunder FC", "wrongSecretKey567890").
			Return(false, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/verify-secret", map[string]string{
			"teamName":  "Thunder FC",
			"secretKey": "wrongSecretKey567890",
		})

		var response handlers.APIResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		data, ok := response.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, false, data["valid"])
	})

	suite.T().Run("Missing Fields", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/verify-secret", map[string]string{
			"teamName": "Thunder FC",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Team Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			VerifySecret("Ghost FC", "whateverSecretKey123").
			Return(false, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/verify-secret", map[string]string{
			"teamName":  "Ghost FC",
			"secretKey": "whateverSecretKey123",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})
}

// TestListTeams tests the ListTeams handler
func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.T().Run("Success", func(t *testing.T) {
		teams := []service.TeamResponse{
			*teamResponse(suite.factories.Team.WithName("Thunder FC")),
			*teamResponse(suite.factories.Team.WithName("Lightning FC")),
		}

		suite.mockService.EXPECT().
			List(nil).
			Return(teams, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams", nil)

		var response handlers.APIResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.Success)
		assert.Equal(t, 2, response.Count)
	})

	suite.T().Run("Verified Filter", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Not(gomock.Nil())).
			Return([]service.TeamResponse{}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams?verified=true", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid Filter", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams?verified=maybe", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid verified filter")
	})
}

// TestGetTeamByName tests the GetTeamByName handler
func (suite *TeamHandlerTestSuite) TestGetTeamByName() {
	suite.T().Run("Success", func(t *testing.T) {
		team := suite.factories.Team.Rostered("Thunder FC", "issuedSecretKey12345")

		suite.mockService.EXPECT().
			GetByName("Thunder FC").
			Return(teamResponse(team), nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/by-name/Thunder FC", nil)

		var response handlers.APIResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.True(t, response.Success)

		// The secret key must never appear anywhere in a read response.
		assert.NotContains(t, recorder.Body.String(), "issuedSecretKey12345")
		assert.NotContains(t, recorder.Body.String(), "secretKey")
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByName("Ghost FC").
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/teams/by-name/Ghost FC", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})
}

// TestUpdateTeam tests the UpdateTeam handler
func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	team := suite.factories.Team.WithName("Lightning FC")

	requestBody := map[string]interface{}{
		"teamName":        "Lightning FC",
		"batchYear":       2024,
		"captainName":     "Alex Kim",
		"viceCaptainName": "Sam Rivera",
	}

	suite.mockService.EXPECT().
		UpdateTeam(team.ID, gomock.Any()).
		Return(teamResponse(team), nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/teams/"+team.ID.String(), requestBody)

	var response handlers.APIResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.True(suite.T(), response.Success)
}

// TestUploadLogo tests the UploadLogo handler
func (suite *TeamHandlerTestSuite) TestUploadLogo() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			SetLogo(gomock.Any(), teamID, gomock.Any()).
			Return("https://cdn.example.com/team-logos/badge.png", nil).
			Times(1)

		recorder := suite.httpSuite.MakeMultipartRequest(t, "POST", "/api/v1/teams/"+teamID.String()+"/logo",
			nil,
			map[string][]byte{"logo": []byte("pngbytes")},
			nil,
		)

		var response handlers.APIResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		data, ok := response.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "https://cdn.example.com/team-logos/badge.png", data["logoUrl"])
	})

	suite.T().Run("Missing File", func(t *testing.T) {
		teamID := uuid.New()

		recorder := suite.httpSuite.MakeMultipartRequest(t, "POST", "/api/v1/teams/"+teamID.String()+"/logo",
			map[string]string{"unrelated": "field"},
			nil, nil,
		)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "logo file is required")
	})
}

// TestUpdatePlayer tests the UpdatePlayer handler
func (suite *TeamHandlerTestSuite) TestUpdatePlayer() {
	teamID := uuid.New()
	playerID := uuid.New()

	player := &models.Player{
		ID:           playerID,
		Name:         "Renamed Player",
		Position:     models.PositionST,
		JerseyNumber: 9,
	}

	requestBody := map[string]interface{}{
		"name":         "Renamed Player",
		"position":     "ST",
		"jerseyNumber": 9,
	}

	suite.mockService.EXPECT().
		UpdatePlayer(teamID, playerID, gomock.Any()).
		Return(player, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/teams/"+teamID.String()+"/players/"+playerID.String(), requestBody)

	var response handlers.APIResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.True(suite.T(), response.Success)
}

// TestUploadPlayerImage tests the UploadPlayerImage handler
func (suite *TeamHandlerTestSuite) TestUploadPlayerImage() {
	teamID := uuid.New()
	playerID := uuid.New()

	suite.mockService.EXPECT().
		SetPlayerImage(gomock.Any(), teamID, playerID, gomock.Any()).
		Return("https://cdn.example.com/player-images/new.jpg", nil).
		Times(1)

	recorder := suite.httpSuite.MakeMultipartRequest(suite.T(), "POST",
		"/api/v1/teams/"+teamID.String()+"/players/"+playerID.String()+"/image",
		nil,
		map[string][]byte{"image": []byte("jpegbytes")},
		nil,
	)

	var response handlers.APIResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	data, ok := response.Data.(map[string]interface{})
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "https://cdn.example.com/player-images/new.jpg", data["imageUrl"])
}

// TestDeleteTeam tests the DeleteTeam handler
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()

		suite.mockService.EXPECT().
			Delete(teamID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/teams/"+teamID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/teams/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
