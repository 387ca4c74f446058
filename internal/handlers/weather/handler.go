package weather

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onja-org/w2-scss-lab/internal/models"
	serviceWeather "github.com/onja-org/w2-scss-lab/internal/services/weather"
)

type weatherService interface {
	Suggest(ctx context.Context, fragment string) []models.WeatherRecord
	GetByCity(ctx context.Context, city string) (models.WeatherRecord, error)
}

type SuggestionsResponse struct {
	Suggestions []models.WeatherRecord `json:"suggestions"`
}

type Handler struct {
	service weatherService
}

func NewHandler(svc weatherService) *Handler {
	return &Handler{service: svc}
}

// GetSuggestions
// @Summary Autocomplete city names
// @Description Returns the known cities whose name starts with q, ignoring case. An empty q returns no suggestions.
// @Tags weather
// @Produce json
// @Param q query string false "Typed fragment"
// @Success 200 {object} SuggestionsResponse
// @Router /suggestions [get]
func (h *Handler) GetSuggestions(c *gin.Context) {
	matches := h.service.Suggest(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: matches})
}

// GetWeather
// @Summary Get canned weather
// @Description Returns the weather panel for a known city. Whitespace is trimmed and case is ignored.
// @Tags weather
// @Produce json
// @Param city query string true "City name. An empty value is looked up like any other text."
// @Success 200 {object} models.ResultView
// @Failure 400
// @Failure 404
// @Router /weather [get]
func (h *Handler) GetWeather(c *gin.Context) {
	city, ok := c.GetQuery("city")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city query parameter is required"})
		return
	}

	record, err := h.service.GetByCity(c.Request.Context(), city)
	if err != nil {
		if errors.Is(err, serviceWeather.ErrCityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": serviceWeather.NotFoundMessage})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, serviceWeather.Render(record))
}
