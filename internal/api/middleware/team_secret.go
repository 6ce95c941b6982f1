package middleware

import (
	"errors"
	"net/http"

	"team-registration-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamSecretHeader is the header carrying the team's access secret
const TeamSecretHeader = "X-Team-Secret"

// TeamSecret gates mutating team routes behind the possession-based secret
// key. A shell team has no secret yet and passes unchallenged; once the team
// is rostered every guarded mutation must present the exact stored secret.
func TeamSecret(teams repository.TeamRepositoryInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		teamID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "invalid team ID",
			})
			return
		}

		team, err := teams.GetByID(teamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
					"success": false,
					"message": "team not found",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "failed to load team",
			})
			return
		}

		if team.SecretKey != nil && c.GetHeader(TeamSecretHeader) != *team.SecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid or missing team secret key",
			})
			return
		}

		c.Next()
	}
}
