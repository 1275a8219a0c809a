package api

import (
	"fmt"
	"net/http"

	"portfoliometrics/internal/domain"
	"portfoliometrics/internal/renderer"

	"github.com/gin-gonic/gin"
)

type rollingPointResponse struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

type rollingSharpeResponse struct {
	RiskFreeRate   float64                `json:"riskFreeRate"`
	LookbackWindow int                    `json:"lookbackWindow"`
	Series         []rollingPointResponse `json:"series"`
}

func rollingPointsResponse(series domain.RollingSeries) []rollingPointResponse {
	out := make([]rollingPointResponse, 0, len(series))
	for _, p := range series {
		out = append(out, rollingPointResponse{
			Date:  formatDate(p.Date),
			Value: p.Value,
		})
	}
	return out
}

func (h ApiHandler) rollingSharpe(c *gin.Context) {
	req, ok := bindMetricsRequest(c)
	if !ok {
		return
	}

	result, err := h.MetricsService.RollingSharpeRatio(c.Request.Context(), req)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, rollingSharpeResponse{
		RiskFreeRate:   result.RiskFreeRate,
		LookbackWindow: result.LookbackWindow,
		Series:         rollingPointsResponse(result.Series),
	})
}

func (h ApiHandler) rollingSharpeChart(c *gin.Context) {
	req, ok := bindMetricsRequest(c)
	if !ok {
		return
	}

	result, err := h.MetricsService.RollingSharpeRatio(c.Request.Context(), req)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	if len(result.Series.Defined()) < 2 {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("only %d of %d days have a full %d day window", len(result.Series.Defined()), len(result.Series), result.LookbackWindow),
			"kind":  "InsufficientHistory",
		})
		return
	}

	title := fmt.Sprintf("Rolling Sharpe Ratio (%d days)", result.LookbackWindow)
	png, err := renderer.RollingSharpeChart(result.Series, title)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Data(200, "image/png", png)
}
