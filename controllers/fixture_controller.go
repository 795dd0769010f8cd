package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Aram-az/ESSDev-Lifeyears/models"
	"github.com/Aram-az/ESSDev-Lifeyears/services"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const (
	MsgRecommendationNotFound = "Recommendation not found"
	MsgUserNotFound           = "User data not found"
	MsgUnknownFilter          = "Unknown appointment filter"
	MsgNotFound               = "Not found"
	MsgInternal               = "Internal server error"
)

// Endpoints is what GET / advertises.
var Endpoints = []string{
	"GET /api/health",
	"GET /api/recommendations",
	"GET /api/recommendations/:id",
	"GET /api/prevention",
	"GET /api/prevention/primary",
	"GET /api/prevention/secondary",
	"GET /api/longevity",
	"GET /api/appointments",
	"GET /api/dashboard",
	"GET /mock-user",
	"GET /mock-recommendations",
}

// FixtureController answers every gateway route from a FixtureStore.
type FixtureController struct {
	Store *services.FixtureStore
	// Today pins the dashboard date; zero falls back to the fixture's
	// reference date, then to the store clock.
	Today time.Time
}

func NewFixtureController(store *services.FixtureStore, today time.Time) *FixtureController {
	return &FixtureController{Store: store, Today: today}
}

func (fc *FixtureController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, models.IndexResponse{
		Success:   true,
		Message:   "ESSDev Lifeyears Mock API Server",
		Status:    "running",
		Endpoints: Endpoints,
	})
}

func (fc *FixtureController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Success:   true,
		Message:   "Mock API server is running",
		Timestamp: fc.Store.Now().UTC(),
		Server:    "Lifeyears Mock API",
	})
}

func (fc *FixtureController) ListRecommendations(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewList(fc.Store.Recommendations()))
}

// GetRecommendation answers 404 for ids that are absent or not integers.
func (fc *FixtureController) GetRecommendation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.NewError(MsgRecommendationNotFound))
		return
	}
	rec, ok := fc.Store.Recommendation(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.NewError(MsgRecommendationNotFound))
		return
	}
	c.JSON(http.StatusOK, models.NewItem(rec))
}

func (fc *FixtureController) GetPrevention(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewItem(fc.Store.Prevention()))
}

func (fc *FixtureController) ListPrimaryPrevention(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewList(fc.Store.PrimaryPrevention()))
}

func (fc *FixtureController) ListSecondaryPrevention(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewList(fc.Store.SecondaryPrevention()))
}

func (fc *FixtureController) GetLongevity(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewItem(fc.Store.Longevity()))
}

func (fc *FixtureController) GetMockUser(c *gin.Context) {
	user, ok := fc.Store.MockUser()
	if !ok {
		c.JSON(http.StatusNotFound, models.NewError(MsgUserNotFound))
		return
	}
	c.JSON(http.StatusOK, models.NewItem(user))
}

func (fc *FixtureController) ListMockRecommendations(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewList(fc.Store.MockRecommendations()))
}

func (fc *FixtureController) ListAppointments(c *gin.Context) {
	appts, err := services.FilterAppointments(fc.Store.Appointments(), c.DefaultQuery("status", services.FilterAll))
	if errors.Is(err, services.ErrUnknownFilter) {
		c.JSON(http.StatusBadRequest, models.NewError(MsgUnknownFilter))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewError(MsgInternal))
		return
	}
	c.JSON(http.StatusOK, models.NewList(appts))
}

func (fc *FixtureController) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewItem(services.ComputeDashboard(fc.Store.Appointments(), fc.today())))
}

func (fc *FixtureController) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.NewError(MsgNotFound))
}

func (fc *FixtureController) today() time.Time {
	if !fc.Today.IsZero() {
		return fc.Today
	}
	if ref := fc.Store.ReferenceDate(); !ref.IsZero() {
		return ref
	}
	now := fc.Store.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
