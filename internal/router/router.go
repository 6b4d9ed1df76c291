package router

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"vetclinic/internal/config"
	"vetclinic/internal/handler"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Clinics       *handler.ClinicHandler
	Veterinarians *handler.VeterinarianHandler
	Tutors        *handler.TutorHandler
	Pets          *handler.PetHandler
	Visits        *handler.VisitHandler
	Health        *handler.HealthHandler
}

// Register wires routes and middleware. requireAuth guards every route
// except login, registration, health and docs.
func Register(e *echo.Echo, cfg *config.Config, log *zap.Logger, h Handlers, requireAuth echo.MiddlewareFunc) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())

	e.Validator = NewValidator(cfg.PhoneRegion)

	e.GET("/", h.Health.Root)
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/health", h.Health.Health)
	api.POST("/auth/token", h.Auth.Login)
	api.POST("/auth/register", h.Auth.Register)

	// Secured routes (require a bearer token of an active user)
	secured := api.Group("", requireAuth)

	secured.GET("/auth/me", h.Auth.Me)

	secured.POST("/users", h.Users.CreateUser)
	secured.GET("/users", h.Users.ListUsers)
	secured.GET("/users/:id", h.Users.GetUser)
	secured.PUT("/users/:id", h.Users.UpdateUser)
	secured.PATCH("/users/:id", h.Users.UpdateUser)
	secured.DELETE("/users/:id", h.Users.DeleteUser)

	secured.GET("/clinics/:id/veterinarians", h.Clinics.ListVeterinarians)

	crud(secured, "/clinics", h.Clinics)
	crud(secured, "/veterinarians", h.Veterinarians)
	crud(secured, "/tutors", h.Tutors)
	crud(secured, "/pets", h.Pets)
	crud(secured, "/visits", h.Visits)
}

type crudHandler interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

func crud(g *echo.Group, prefix string, h crudHandler) {
	g.POST(prefix, h.Create)
	g.GET(prefix, h.List)
	g.GET(prefix+"/:id", h.Get)
	g.PUT(prefix+"/:id", h.Update)
	g.PATCH(prefix+"/:id", h.Update)
	g.DELETE(prefix+"/:id", h.Delete)
}

func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			switch {
			case v.Status >= http.StatusInternalServerError:
				log.Error("request failed", append(fields, zap.Error(v.Error))...)
			case v.Error != nil:
				log.Warn("request rejected", fields...)
			default:
				log.Info("request", fields...)
			}
			return nil
		},
	})
}
