package router

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/dhvanil3103/ats-resume/internal/config"
	"github.com/dhvanil3103/ats-resume/internal/handlers"
	"github.com/dhvanil3103/ats-resume/internal/models"
)

const Version = "1.0.0"

type Handlers struct {
	Document   *handlers.DocumentHandler
	Analysis   *handlers.AnalysisHandler
	Generation *handlers.GenerationHandler
}

func New(cfg *config.Config, log *logrus.Logger, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Server.ProjectName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: errorHandler(log),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     log.Out,
	}))

	origins := cfg.AllowOriginsHeader()
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		// fiber refuses credentials together with a wildcard origin.
		AllowCredentials: origins != "*",
	}))

	prefix := cfg.Server.APIPrefix
	api := app.Group(prefix)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/documents/upload", h.Document.HandleUpload)

	analysis := api.Group("/analysis")
	analysis.Post("/summary", h.Analysis.HandleSummary)
	analysis.Post("/similarity", h.Analysis.HandleSimilarity)
	analysis.Post("/keywords", h.Analysis.HandleKeywords)

	generate := api.Group("/generate")
	generate.Post("/cover-letter", h.Generation.HandleCoverLetter)
	generate.Post("/download-cover-letter", h.Generation.HandleDownloadCoverLetter)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": cfg.Server.ProjectName,
			"version": Version,
			"endpoints": []string{
				"POST " + prefix + "/documents/upload",
				"POST " + prefix + "/analysis/summary",
				"POST " + prefix + "/analysis/similarity",
				"POST " + prefix + "/analysis/keywords",
				"POST " + prefix + "/generate/cover-letter",
				"POST " + prefix + "/generate/download-cover-letter",
				"GET " + prefix + "/health",
			},
		})
	})

	return app
}

func errorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.WithFields(logrus.Fields{
				"method": c.Method(),
				"path":   c.Path(),
				"error":  err,
			}).Error("Request failed")
		}

		return c.Status(code).JSON(models.ErrorResponse{Detail: err.Error()})
	}
}
