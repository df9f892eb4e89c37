package routes

import (
	"time"

	_ "contentflow/docs"
	"contentflow/internal/controllers"
	"contentflow/internal/middleware"
	"contentflow/internal/services"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

type Options struct {
	JWTSecret      string
	CORSOrigins    string
	RequestTimeout time.Duration
	Log            zerolog.Logger
}

// NewApp builds the fiber app serving svc.
func NewApp(svc *services.ContentService, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "contentflow",
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          controllers.ErrorHandler(opts.Log),
		ReadTimeout:           opts.RequestTimeout,
		WriteTimeout:          opts.RequestTimeout,
		DisableStartupMessage: true,
	})

	origins := opts.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(recover.New())
	app.Use(middleware.RequestLogger(opts.Log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		// Credentials cannot be combined with a wildcard origin.
		AllowCredentials: origins != "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	app.Use(middleware.JWTActor(opts.JWTSecret))

	h := controllers.NewContentController(svc, opts.Log)
	SetupRoutesContent(app, svc.Chain(), h)
	return app
}
