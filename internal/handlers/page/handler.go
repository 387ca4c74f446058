package page

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onja-org/w2-scss-lab/internal/models"
	serviceWeather "github.com/onja-org/w2-scss-lab/internal/services/weather"
	"github.com/onja-org/w2-scss-lab/web"
)

type weatherGetterService interface {
	GetByCity(ctx context.Context, city string) (models.WeatherRecord, error)
}

type Handler struct {
	service weatherGetterService
}

func NewHandler(svc weatherGetterService) *Handler {
	return &Handler{service: svc}
}

// Index renders the widget page. With a city query it also renders the lookup
// result, so the form works without JavaScript.
func (h *Handler) Index(c *gin.Context) {
	city, submitted := c.GetQuery("city")
	data := web.PageData{Query: city}

	if submitted {
		record, err := h.service.GetByCity(c.Request.Context(), city)
		switch {
		case err == nil:
			view := serviceWeather.Render(record)
			data.Result = &view
		case errors.Is(err, serviceWeather.ErrCityNotFound):
			data.Message = serviceWeather.NotFoundMessage
		default:
			_ = c.Error(err)
			c.String(http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	c.HTML(http.StatusOK, web.IndexTemplate, data)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
