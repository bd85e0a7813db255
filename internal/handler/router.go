package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rugboost-api/internal/domain/user"
	"rugboost-api/internal/handler/api"
	"rugboost-api/internal/handler/middleware"
	"rugboost-api/internal/pkg/config"
	"rugboost-api/internal/pkg/ratelimit"
)

const (
	contactRateLimitMessage      = "Too many requests. Please try again later."
	registrationRateLimitMessage = "Too many registration attempts. Please try again later."
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Contact      *api.ContactHandler
	Registration *api.RegistrationHandler
	Inspection   *api.InspectionHandler
	Photo        *api.PhotoHandler
	Social       *api.SocialHandler
	Profile      *api.ProfileHandler
}

// Limiters holds one limiter per rate-limited endpoint.
type Limiters struct {
	Contact      ratelimit.Limiter
	Registration ratelimit.Limiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, limiters Limiters, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, limiters, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, limiters Limiters, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("")
		public.Use(authMiddleware.OptionalAuth())
		addRoutes(public, []route{
			{
				Method:  http.MethodPost,
				Path:    "/contact",
				Handler: h.Contact.Submit,
				Mw:      []gin.HandlerFunc{middleware.RateLimit("contact", limiters.Contact, contactRateLimitMessage)},
			},
			{
				Method:  http.MethodPost,
				Path:    "/registration/complete",
				Handler: h.Registration.Complete,
				Mw:      []gin.HandlerFunc{middleware.RateLimit("registration", limiters.Registration, registrationRateLimitMessage)},
			},
		})

		account := apiGroup.Group("/account")
		account.Use(authMiddleware.RequireAuth())
		{
			addRoutes(account, []route{
				{Method: http.MethodGet, Path: "/profile", Handler: h.Profile.Get},
				{Method: http.MethodPut, Path: "/profile", Handler: h.Profile.Update},
				{Method: http.MethodDelete, Path: "/profile/logo", Handler: h.Profile.RemoveLogo},
			})
		}

		staff := apiGroup.Group("")
		staff.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleStaff))
		{
			addRoutes(staff, []route{
				{Method: http.MethodPost, Path: "/inspections/report", Handler: h.Inspection.BuildReport},
				{Method: http.MethodPost, Path: "/inspections/:jobId/notify", Handler: h.Inspection.NotifyClient},
				{Method: http.MethodGet, Path: "/photo-capture/steps", Handler: h.Photo.Steps},
				{Method: http.MethodPost, Path: "/photo-capture/plan", Handler: h.Photo.Plan},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/social-posts", Handler: h.Social.List},
				{Method: http.MethodPost, Path: "/social-posts", Handler: h.Social.Create},
				{Method: http.MethodPut, Path: "/social-posts", Handler: h.Social.ReplaceAll},
				{Method: http.MethodPut, Path: "/social-posts/:id", Handler: h.Social.Update},
				{Method: http.MethodPost, Path: "/social-posts/:id/duplicate", Handler: h.Social.Duplicate},
				{Method: http.MethodDelete, Path: "/social-posts/:id", Handler: h.Social.Delete},
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
