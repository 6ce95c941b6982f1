package handlers

import (
	"net/http"

	"team-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FixtureHandler handles HTTP requests for fixtures
type FixtureHandler struct {
	fixtureService service.FixtureServiceInterface
}

// NewFixtureHandler creates a new fixture handler
func NewFixtureHandler(fixtureService service.FixtureServiceInterface) *FixtureHandler {
	return &FixtureHandler{
		fixtureService: fixtureService,
	}
}

// CreateFixture handles POST /fixtures
// @Summary Schedule a fixture
// @Tags fixtures
// @Accept json
// @Produce json
// @Param fixture body service.CreateFixtureRequest true "Fixture data"
// @Success 201 {object} APIResponse "Created fixture"
// @Failure 400 {object} APIResponse "Invalid request body"
// @Router /fixtures [post]
func (h *FixtureHandler) CreateFixture(c *gin.Context) {
	var req service.CreateFixtureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	fixture, err := h.fixtureService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Fixture created", fixture)
}

// ListFixtures handles GET /fixtures
// @Summary List fixtures ordered by kickoff time
// @Tags fixtures
// @Produce json
// @Success 200 {object} APIResponse "Fixtures"
// @Router /fixtures [get]
func (h *FixtureHandler) ListFixtures(c *gin.Context) {
	fixtures, err := h.fixtureService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: fixtures, Count: len(fixtures)})
}

// GetFixture handles GET /fixtures/:id
// @Summary Get a fixture by ID
// @Tags fixtures
// @Produce json
// @Param id path string true "Fixture ID (UUID)"
// @Success 200 {object} APIResponse "Fixture"
// @Failure 404 {object} APIResponse "Fixture not found"
// @Router /fixtures/{id} [get]
func (h *FixtureHandler) GetFixture(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid fixture ID")
		return
	}

	fixture, err := h.fixtureService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true, Data: fixture})
}

// UpdateFixture handles PUT /fixtures/:id
// @Summary Update a fixture
// @Tags fixtures
// @Accept json
// @Produce json
// @Param id path string true "Fixture ID (UUID)"
// @Param fixture body service.UpdateFixtureRequest true "Fixture data"
// @Success 200 {object} APIResponse "Updated fixture"
// @Failure 404 {object} APIResponse "Fixture not found"
// @Router /fixtures/{id} [put]
func (h *FixtureHandler) UpdateFixture(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid fixture ID")
		return
	}

	var req service.UpdateFixtureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	fixture, err := h.fixtureService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Fixture updated", fixture)
}

// DeleteFixture handles DELETE /fixtures/:id
// @Summary Delete a fixture
// @Tags fixtures
// @Produce json
// @Param id path string true "Fixture ID (UUID)"
// @Success 200 {object} APIResponse "Fixture deleted"
// @Failure 404 {object} APIResponse "Fixture not found"
// @Router /fixtures/{id} [delete]
func (h *FixtureHandler) DeleteFixture(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid fixture ID")
		return
	}

	if err := h.fixtureService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Fixture deleted", nil)
}
