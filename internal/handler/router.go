package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"eatery-api/internal/handler/api"
	reqdto "eatery-api/internal/handler/dto/request"
	"eatery-api/internal/handler/middleware"
	"eatery-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	adminHandler *api.AdminHandler,
	mailConfigHandler *api.MailConfigHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	reqdto.RegisterValidations()
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, reservationHandler, adminHandler, mailConfigHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	reservationHandler *api.ReservationHandler,
	adminHandler *api.AdminHandler,
	mailConfigHandler *api.MailConfigHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/reservations", Handler: reservationHandler.CreateReservation},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := admin.Group("")
			authRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: adminHandler.ListReservations},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: adminHandler.GetReservation},
				{Method: http.MethodPatch, Path: "/reservations/:id/status", Handler: adminHandler.UpdateReservationStatus},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: adminHandler.DeleteReservation},
				{Method: http.MethodGet, Path: "/notifications", Handler: adminHandler.ListNotifications},
				{Method: http.MethodGet, Path: "/mail-config", Handler: mailConfigHandler.Get},
				{Method: http.MethodPut, Path: "/mail-config", Handler: mailConfigHandler.Save},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
