package api

import (
	"fmt"
	"strconv"

	"portfoliometrics/internal/domain"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 1 << 20

// upload accepts a portfolio document as the multipart field "file",
// with optional date, riskFreeRate and lookbackWindow form fields, and
// responds with the full report
func (h ApiHandler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		returnErrorJson(invalidInput(fmt.Errorf("missing portfolio file: %w", err)), c)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		returnErrorJson(invalidInput(fmt.Errorf("portfolio file is %d bytes, limit is %d", fileHeader.Size, maxUploadBytes)), c)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to open upload: %w", err), c)
		return
	}
	defer f.Close()

	portfolio, err := domain.LoadPortfolio(f)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	requestBody := metricsRequest{
		Portfolio: portfolio,
		Date:      c.PostForm("date"),
	}
	if s := c.PostForm("riskFreeRate"); s != "" {
		rate, err := strconv.ParseFloat(s, 64)
		if err != nil {
			returnErrorJson(invalidInput(fmt.Errorf("invalid riskFreeRate: %w", err)), c)
			return
		}
		requestBody.RiskFreeRate = &rate
	}
	if s := c.PostForm("lookbackWindow"); s != "" {
		lookback, err := strconv.Atoi(s)
		if err != nil {
			returnErrorJson(invalidInput(fmt.Errorf("invalid lookbackWindow: %w", err)), c)
			return
		}
		requestBody.LookbackWindow = &lookback
	}

	req, err := requestBody.toServiceRequest()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	h.writeReport(c, req)
}
