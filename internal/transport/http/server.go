package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/todoly/backend/internal/config"
	"github.com/todoly/backend/internal/infrastructure/logger"
	"github.com/todoly/backend/internal/transport/http/dto"
	httpmw "github.com/todoly/backend/internal/transport/http/middleware"
)

// NewApp builds the fiber app with the global middleware stack and routes.
func NewApp(cfg *config.Config, log *logger.Logger, routes RouterConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           cfg.Server.IdleTimeout,
		ErrorHandler:          globalErrorHandler(log),
		JSONEncoder:           dto.JSON.Marshal,
		JSONDecoder:           dto.JSON.Unmarshal,
		DisableStartupMessage: true,
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	allowedOrigins := "*"
	if len(cfg.Server.AllowedOrigins) > 0 {
		allowedOrigins = strings.Join(cfg.Server.AllowedOrigins, ",")
	}
	requestIDHeader := cfg.Features.RequestIDHeader
	if requestIDHeader == "" {
		requestIDHeader = fiber.HeaderXRequestID
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, " + requestIDHeader,
		AllowMethods: "GET, POST, HEAD, PATCH",
	}))

	app.Use(httpmw.RequestID(requestIDHeader))
	if cfg.Features.EnableRequestLogging {
		app.Use(httpmw.AccessLog(log))
	}

	if routes.Logger == nil {
		routes.Logger = log
	}
	SetupRoutes(app, routes)

	return app
}

func globalErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code < fiber.StatusInternalServerError {
			log.Warnw("request failed",
				"method", c.Method(),
				"path", c.Path(),
				"status", code,
				"error", err.Error(),
				"request_id", httpmw.GetRequestID(c),
			)
		} else {
			log.Errorw("request error",
				"method", c.Method(),
				"path", c.Path(),
				"status", code,
				"error", err.Error(),
				"request_id", httpmw.GetRequestID(c),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
