package routes

import (
	"time"

	"github.com/Aram-az/ESSDev-Lifeyears/controllers"
	"github.com/Aram-az/ESSDev-Lifeyears/middlewares"
	"github.com/Aram-az/ESSDev-Lifeyears/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps is everything the gateway needs; it is built once at startup.
type Deps struct {
	Store  *services.FixtureStore
	Logger *zap.Logger
	// Metrics may be nil to run without /metrics.
	Metrics *middlewares.Metrics
	// DashboardToday pins the dashboard date; zero uses the fixture's.
	DashboardToday time.Time
}

func SetupRouter(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(middlewares.Recovery(d.Logger), middlewares.RequestLogger(d.Logger))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}
	r.Use(middlewares.CORS())

	fc := controllers.NewFixtureController(d.Store, d.DashboardToday)

	r.GET("/", fc.Index)

	api := r.Group("/api", middlewares.NoStore())
	{
		api.GET("/health", fc.Health)
		api.GET("/recommendations", fc.ListRecommendations)
		api.GET("/recommendations/:id", fc.GetRecommendation)
		api.GET("/prevention", fc.GetPrevention)
		api.GET("/prevention/primary", fc.ListPrimaryPrevention)
		api.GET("/prevention/secondary", fc.ListSecondaryPrevention)
		api.GET("/longevity", fc.GetLongevity)
		api.GET("/appointments", fc.ListAppointments)
		api.GET("/dashboard", fc.GetDashboard)
	}

	// Mock-only endpoints outside /api.
	r.GET("/mock-user", middlewares.NoStore(), fc.GetMockUser)
	r.GET("/mock-recommendations", middlewares.NoStore(), fc.ListMockRecommendations)

	r.NoRoute(fc.NotFound)
	return r
}
