package handlers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"team-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team registration
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// RegisterTeam handles POST /teams/register
// @Summary Register a team shell
// @Description Create a team with metadata only: empty roster, no secret key, unverified
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} APIResponse "Successfully registered team shell"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 409 {object} APIResponse "Team name already taken"
// @Router /teams/register [post]
func (h *TeamHandler) RegisterTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	team, err := h.teamService.CreateShell(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Team registered successfully", team)
}

// UpdateRoster handles PUT /teams/:id/roster
// @Summary Submit or update the team roster
// @Description Upload player images, merge them into the submitted 16-player roster and persist it. The first successful submission issues the team secret key; it is returned once and never again.
// @Tags teams
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param players formData string true "JSON array of 16 players"
// @Success 200 {object} APIResponse "Roster updated"
// @Failure 400 {object} APIResponse "Roster shape or field violation"
// @Failure 401 {object} APIResponse "Missing or invalid secret key"
// @Failure 404 {object} APIResponse "Team not found"
// @Failure 504 {object} APIResponse "Image upload timed out"
// @Router /teams/{id}/roster [put]
func (h *TeamHandler) UpdateRoster(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}

	players, files, err := parseRosterSubmission(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	team, secret, err := h.teamService.UpdateRoster(c.Request.Context(), teamID, players, files)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := APIResponse{Success: true, Message: "Roster updated successfully", Data: team}
	if secret != "" {
		resp.Message = "Team roster registered successfully. Store the secret key; it will not be shown again."
		resp.SecretKey = secret
	}
	c.JSON(http.StatusOK, resp)
}

// VerifySecret handles POST /teams/verify-secret
// @Summary Verify a team secret key
// @Description Compare a candidate secret against the stored one without revealing it
// @Tags teams
// @Accept json
// @Produce json
// @Param credentials body object true "teamName and secretKey"
// @Success 200 {object} APIResponse "Verification outcome"
// @Failure 404 {object} APIResponse "Team not found"
// @Router /teams/verify-secret [post]
func (h *TeamHandler) VerifySecret(c *gin.Context) {
	var req struct {
		TeamName  string `json:"teamName" binding:"required"`
		SecretKey string `json:"secretKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	valid, err := h.teamService.VerifySecret(req.TeamName, req.SecretKey)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Secret key is valid"
	if !valid {
		message = "Secret key is invalid"
	}
	respondOK(c, message, gin.H{"valid": valid})
}

// UpdateTeam handles PATCH /teams/:id
// @Summary Update team fields
// @Description Rename a team or update its metadata; renames re-check name uniqueness
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Team data"
// @Success 200 {object} APIResponse "Updated team"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Failure 404 {object} APIResponse "Team not found"
// @Failure 409 {object} APIResponse "Team name already taken"
// @Router /teams/{id} [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	team, err := h.teamService.UpdateTeam(teamID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Team updated successfully", team)
}

// UploadLogo handles POST /teams/:id/logo
// @Summary Upload the team logo
// @Tags teams
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param logo formData file true "Logo image"
// @Success 200 {object} APIResponse "Logo URL"
// @Failure 400 {object} APIResponse "Missing file"
// @Failure 404 {object} APIResponse "Team not found"
// @Router /teams/{id}/logo [post]
func (h *TeamHandler) UploadLogo(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		respondBadRequest(c, "logo file is required")
		return
	}

	logoURL, err := h.teamService.SetLogo(c.Request.Context(), teamID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Logo uploaded successfully", gin.H{"logoUrl": logoURL})
}

// UpdatePlayer handles PATCH /teams/:id/players/:playerId
// @Summary Update one roster entry
// @Description Replace name, position and jersey number; the stored image is preserved when the body carries none
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param playerId path string true "Player ID (UUID)"
// @Param player body service.UpdatePlayerRequest true "Player data"
// @Success 200 {object} APIResponse "Updated player"
// @Failure 404 {object} APIResponse "Team or player not found"
// @Router /teams/{id}/players/{playerId} [patch]
func (h *TeamHandler) UpdatePlayer(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}
	playerID, err := uuid.Parse(c.Param("playerId"))
	if err != nil {
		respondBadRequest(c, "invalid player ID")
		return
	}

	var req service.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	player, err := h.teamService.UpdatePlayer(teamID, playerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Player updated successfully", player)
}

// UploadPlayerImage handles POST /teams/:id/players/:playerId/image
// @Summary Upload a replacement image for one player
// @Tags teams
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param playerId path string true "Player ID (UUID)"
// @Param image formData file true "Player image"
// @Success 200 {object} APIResponse "Image URL"
// @Failure 400 {object} APIResponse "Missing file"
// @Failure 404 {object} APIResponse "Team or player not found"
// @Router /teams/{id}/players/{playerId}/image [post]
func (h *TeamHandler) UploadPlayerImage(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}
	playerID, err := uuid.Parse(c.Param("playerId"))
	if err != nil {
		respondBadRequest(c, "invalid player ID")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respondBadRequest(c, "image file is required")
		return
	}

	imageURL, err := h.teamService.SetPlayerImage(c.Request.Context(), teamID, playerID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Player image uploaded successfully", gin.H{"imageUrl": imageURL})
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description List all teams, optionally filtered by verification flag. Secret keys are never included.
// @Tags teams
// @Produce json
// @Param verified query bool false "Filter by verification flag"
// @Success 200 {object} APIResponse "Teams"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	var verified *bool
	if v := c.Query("verified"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			respondBadRequest(c, "invalid verified filter")
			return
		}
		verified = &parsed
	}

	teams, err := h.teamService.List(verified)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true, Data: teams, Count: len(teams)})
}

// GetTeamByName handles GET /teams/by-name/:name
// @Summary Get a team by name
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} APIResponse "Team"
// @Failure 404 {object} APIResponse "Team not found"
// @Router /teams/by-name/{name} [get]
func (h *TeamHandler) GetTeamByName(c *gin.Context) {
	team, err := h.teamService.GetByName(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} APIResponse "Team deleted"
// @Failure 404 {object} APIResponse "Team not found"
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	teamID, ok := parseTeamID(c)
	if !ok {
		return
	}

	if err := h.teamService.Delete(teamID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Team deleted", nil)
}

func parseTeamID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid team ID")
		return uuid.Nil, false
	}
	return id, true
}

// parseRosterSubmission deserializes the roster payload exactly once,
// accepting either a JSON body or a multipart form whose "players" field is a
// JSON array with image files keyed images[<index>].
func parseRosterSubmission(c *gin.Context) ([]service.PlayerInput, []*multipart.FileHeader, error) {
	if c.ContentType() == "multipart/form-data" {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, nil, fmt.Errorf("invalid multipart form: %w", err)
		}

		raw := c.PostForm("players")
		if raw == "" {
			return nil, nil, fmt.Errorf("players field is required")
		}

		var players []service.PlayerInput
		if err := json.Unmarshal([]byte(raw), &players); err != nil {
			return nil, nil, fmt.Errorf("players field is not a valid JSON array: %w", err)
		}

		files := make([]*multipart.FileHeader, len(players))
		for i := range players {
			if fhs := form.File[fmt.Sprintf("images[%d]", i)]; len(fhs) > 0 {
				files[i] = fhs[0]
			}
		}
		return players, files, nil
	}

	var body struct {
		Players []service.PlayerInput `json:"players" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, nil, err
	}
	return body.Players, nil, nil
}
