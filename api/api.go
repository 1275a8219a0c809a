package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"portfoliometrics/internal/domain"
	"portfoliometrics/internal/logger"
	"portfoliometrics/internal/service"
	"portfoliometrics/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type ApiHandler struct {
	MetricsService service.MetricsService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddExposeHeaders(requestIDHeader)
	router.Use(cors.New(corsConfig))
	router.Use(requestContextMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to portfolio metrics"})
	})
	router.POST("/value", m.value)
	router.POST("/sharpe", m.sharpe)
	router.POST("/rollingSharpe", m.rollingSharpe)
	router.POST("/rollingSharpe/chart", m.rollingSharpeChart)
	router.POST("/report", m.report)
	router.POST("/upload", m.upload)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

// requestContextMiddleware gives every request an id, a logger carrying
// that id and a performance profile, all reachable from the request
// context
func requestContextMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(requestIDHeader, requestID)

	log := logger.FromContext(c.Request.Context()).With("requestId", requestID)
	profile, endProfile := domain.NewProfile()

	ctx := domain.ContextWithRequestID(c.Request.Context(), requestID)
	ctx = logger.WithContext(ctx, log)
	ctx = domain.ContextWithProfile(ctx, profile)
	c.Request = c.Request.WithContext(ctx)

	c.Next()

	endProfile()
	log.Infow(
		"handled request",
		"method", c.Request.Method,
		"route", c.FullPath(),
		"status", c.Writer.Status(),
		"durationMs", profile.ElapsedMs(),
		"spans", profile.Spans,
	)
}

func errorStatus(err error) (int, string) {
	if kind := domain.FailureKind(err); kind != "" {
		return http.StatusUnprocessableEntity, kind
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return http.StatusBadRequest, "InvalidInput"
	}
	return http.StatusInternalServerError, ""
}

func returnErrorJson(err error, c *gin.Context) {
	status, kind := errorStatus(err)
	log := logger.FromContext(c.Request.Context())
	if status == http.StatusInternalServerError {
		log.Errorf("request failed: %s", err.Error())
	} else {
		log.Warnf("request rejected: %s", err.Error())
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": err.Error(),
		"kind":  kind,
	})
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
}

type metricsRequest struct {
	Portfolio      []domain.Holding `json:"portfolio" binding:"dive"`
	Date           string           `json:"date"`
	RiskFreeRate   *float64         `json:"riskFreeRate"`
	LookbackWindow *int             `json:"lookbackWindow"`
}

func (r metricsRequest) toServiceRequest() (service.MetricsRequest, error) {
	date, err := util.ParseDate(r.Date)
	if err != nil {
		return service.MetricsRequest{}, invalidInput(err)
	}
	portfolio := domain.Portfolio(r.Portfolio)
	if portfolio == nil {
		portfolio = domain.Portfolio{}
	}
	return service.MetricsRequest{
		Portfolio:      portfolio,
		Date:           date,
		RiskFreeRate:   r.RiskFreeRate,
		LookbackWindow: r.LookbackWindow,
	}, nil
}

func bindMetricsRequest(c *gin.Context) (service.MetricsRequest, bool) {
	var requestBody metricsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(invalidInput(fmt.Errorf("failed to read request body: %w", err)), c)
		return service.MetricsRequest{}, false
	}
	req, err := requestBody.toServiceRequest()
	if err != nil {
		returnErrorJson(err, c)
		return service.MetricsRequest{}, false
	}
	return req, true
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
