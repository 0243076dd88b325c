package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diogovalentte/tukangkomik/src/sources"
)

// PreferencesRoutes sets the source preferences routes
func PreferencesRoutes(group *gin.RouterGroup) {
	{
		group.GET("/preferences", GetPreferences)
		group.PATCH("/preferences", UpdatePreference)
	}
}

// @Summary Get preferences
// @Description Returns the source preferences with their current values.
// @Produce json
// @Param source_id query string false "Source ID" Example(5808419379780108473)
// @Success 200 {object} preferencesResponse
// @Router /preferences [get]
func GetPreferences(c *gin.Context) {
	screen, err := sources.GetPreferenceScreen(getSourceID(c))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"message": err.Error()})
		return
	}

	values, err := screen.Values(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": values})
}

// @Summary Update preference
// @Description Changes a source preference. Some preferences are applied only after restarting the app.
// @Accept json
// @Produce json
// @Param source_id query string false "Source ID" Example(5808419379780108473)
// @Param preference body UpdatePreferenceRequest true "Preference key and new value"
// @Success 200 {object} responseMessage
// @Router /preferences [patch]
func UpdatePreference(c *gin.Context) {
	var requestData UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid JSON fields, refer to the API documentation"})
		return
	}

	screen, err := sources.GetPreferenceScreen(getSourceID(c))
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"message": err.Error()})
		return
	}

	err = screen.Change(c.Request.Context(), requestData.Key, requestData.Value)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preference updated successfully"})
}

// UpdatePreferenceRequest is the request body for the UpdatePreference route
type UpdatePreferenceRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}
