package api

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type sharpeResponse struct {
	Date         string          `json:"date"`
	TotalValue   decimal.Decimal `json:"totalValue"`
	RiskFreeRate float64         `json:"riskFreeRate"`
	SharpeRatio  float64         `json:"sharpeRatio"`
	NumReturns   int             `json:"numReturns"`
}

func (h ApiHandler) sharpe(c *gin.Context) {
	req, ok := bindMetricsRequest(c)
	if !ok {
		return
	}

	result, err := h.MetricsService.SharpeRatio(c.Request.Context(), req)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, sharpeResponse{
		Date:         formatDate(result.Date),
		TotalValue:   result.TotalValue,
		RiskFreeRate: result.RiskFreeRate,
		SharpeRatio:  result.SharpeRatio,
		NumReturns:   result.NumReturns,
	})
}
