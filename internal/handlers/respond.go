package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/helaluddin100/greenbuild/internal/events"
)

// All success payloads ride in a {"data": ...} envelope; the frontend
// unwraps one or two levels depending on pagination.

func dataJSON(c echo.Context, code int, payload interface{}) error {
	return c.JSON(code, echo.Map{"data": payload})
}

func pagedJSON(c echo.Context, items interface{}, page, limit int, total int64) error {
	return c.JSON(http.StatusOK, echo.Map{
		"data": echo.Map{
			"data": items,
			"meta": echo.Map{
				"page":        page,
				"size":        limit,
				"total":       total,
				"total_pages": (total + int64(limit) - 1) / int64(limit),
				"has_prev":    page > 1,
			},
		},
	})
}

func publish(c echo.Context, p *events.Producer, topic, key string, event map[string]interface{}) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}
