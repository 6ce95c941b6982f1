package handlers

import (
	"net/http"

	"team-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ResultHandler handles HTTP requests for match results
type ResultHandler struct {
	resultService service.ResultServiceInterface
}

// NewResultHandler creates a new result handler
func NewResultHandler(resultService service.ResultServiceInterface) *ResultHandler {
	return &ResultHandler{
		resultService: resultService,
	}
}

// CreateResult handles POST /results
// @Summary Record a fixture result
// @Description Record the outcome of a fixture; the fixture is marked completed with the final score
// @Tags results
// @Accept json
// @Produce json
// @Param result body service.CreateResultRequest true "Result data"
// @Success 201 {object} APIResponse "Recorded result"
// @Failure 404 {object} APIResponse "Fixture not found"
// @Failure 409 {object} APIResponse "Result already recorded for this fixture"
// @Router /results [post]
func (h *ResultHandler) CreateResult(c *gin.Context) {
	var req service.CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.resultService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "Result recorded", result)
}

// ListResults handles GET /results
// @Summary List recorded results
// @Tags results
// @Produce json
// @Success 200 {object} APIResponse "Results"
// @Router /results [get]
func (h *ResultHandler) ListResults(c *gin.Context) {
	results, err := h.resultService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: results, Count: len(results)})
}

// UpdateResult handles PUT /results/:id
// @Summary Correct a recorded result
// @Tags results
// @Accept json
// @Produce json
// @Param id path string true "Result ID (UUID)"
// @Param result body service.UpdateResultRequest true "Result data"
// @Success 200 {object} APIResponse "Updated result"
// @Failure 404 {object} APIResponse "Result not found"
// @Router /results/{id} [put]
func (h *ResultHandler) UpdateResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid result ID")
		return
	}

	var req service.UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.resultService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Result updated", result)
}

// DeleteResult handles DELETE /results/:id
// @Summary Delete a recorded result
// @Tags results
// @Produce json
// @Param id path string true "Result ID (UUID)"
// @Success 200 {object} APIResponse "Result deleted"
// @Failure 404 {object} APIResponse "Result not found"
// @Router /results/{id} [delete]
func (h *ResultHandler) DeleteResult(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid result ID")
		return
	}

	if err := h.resultService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Result deleted", nil)
}
