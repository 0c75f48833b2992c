package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hrgate/internal/config"
	"hrgate/internal/handler"
	"hrgate/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	rosterHandler *handler.RosterHandler,
	attendanceHandler *handler.AttendanceHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Attendance routes: the scanning station runs under any employee session.
	secured.POST("/attendance/scan", attendanceHandler.Scan)
	secured.GET("/attendance", attendanceHandler.List)

	// Roster and dashboard routes are admin-only.
	admin := secured.Group("", adminOnly)
	admin.GET("/employees", rosterHandler.List)
	admin.POST("/employees", rosterHandler.Create)
	admin.PUT("/employees/:id", rosterHandler.Update)
	admin.DELETE("/employees/:id", rosterHandler.Delete)
	admin.GET("/employees/:id/scan-payload", rosterHandler.ScanPayload)
	admin.GET("/admin/orphans", rosterHandler.Orphans)
	admin.GET("/stats/summary", statsHandler.Summary)
}

// adminOnly rejects sessions whose claims do not carry the admin role.
func adminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != string(model.RoleAdmin) {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
