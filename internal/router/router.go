// Package router builds the fiber application: middleware chain and route table.
package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"

	"craftify/internal/config"
	"craftify/internal/dto"
	"craftify/internal/handler"
	"craftify/internal/middleware"
	"craftify/internal/util"
	"craftify/internal/validation"
)

type Handlers struct {
	Content *handler.ContentHandler
	Health  *handler.HealthHandler
}

// New returns an app with every route registered. Routing is non-strict, so
// "/generate-course" and "/generate-course/" are the same route.
func New(cfg *config.Config, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "craftify",
		ReadTimeout:   cfg.Server.ReadTimeout,
		WriteTimeout:  cfg.Server.WriteTimeout,
		IdleTimeout:   cfg.Server.ReadTimeout,
		BodyLimit:     cfg.Server.BodyLimit,
		StrictRouting: false,
		ErrorHandler:  middleware.ErrorHandler(),
	})

	app.Use(requestid.New(requestid.Config{Generator: util.NewULID}))
	app.Use(middleware.RequestLogger())
	app.Use(middleware.Tracing())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,traceparent,tracestate",
		MaxAge:       300,
	}))

	v := validation.NewValidator()

	app.Get("/health", h.Health.Health)
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Post("/generate-course", middleware.ValidateBody[dto.CourseRequest](v), h.Content.GenerateCourse)
	app.Post("/generate-mindmap", h.Content.GenerateMindmap)
	app.Post("/generate-quiz", middleware.ValidateBody[dto.QuizRequest](v), h.Content.GenerateQuiz)
	app.Post("/get-video", middleware.ValidateBody[dto.VideoRequest](v), h.Content.GetVideo)

	return app
}
