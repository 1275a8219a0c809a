package api

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type valueResponse struct {
	TotalValue decimal.Decimal `json:"totalValue"`
	Date       string          `json:"date"`
}

func (h ApiHandler) value(c *gin.Context) {
	req, ok := bindMetricsRequest(c)
	if !ok {
		return
	}

	result, err := h.MetricsService.Value(c.Request.Context(), req.Portfolio, req.Date)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, valueResponse{
		TotalValue: result.Value,
		Date:       formatDate(result.Date),
	})
}
