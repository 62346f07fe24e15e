package routes

import (
	"time"

	"github.com/dabson254/lapor-hilang/internal/config"
	"github.com/dabson254/lapor-hilang/internal/handlers"
	"github.com/dabson254/lapor-hilang/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	reportHandler *handlers.ReportHandler,
	adminHandler *handlers.AdminHandler,
	notificationHandler *handlers.NotificationHandler,
	referenceHandler *handlers.ReferenceHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Reporter-facing laporan endpoints. Identity is the owner-token cookie,
	// no account required.
	laporan := api.Group("/laporan")
	laporan.Post("", reportHandler.Create)
	laporan.Get("/mine", reportHandler.Mine)
	laporan.Post("/upload-image", reportHandler.UploadImage)
	laporan.Post("/logout", reportHandler.Logout)
	laporan.Get("/:id", reportHandler.GetByID)
	laporan.Patch("/:id/found", reportHandler.MarkFound)

	jwtGuard := middleware.JWTProtected(cfg)
	adminGuard := middleware.AdminRequired(db)

	// Admin moderation surface. Delete requires a verified session, not a
	// caller-supplied flag.
	api.Get("/laporan", jwtGuard, adminGuard, reportHandler.List)
	api.Delete("/laporan/:id", jwtGuard, adminGuard, reportHandler.Delete)

	notifikasi := api.Group("/notifikasi", jwtGuard, adminGuard)
	notifikasi.Get("", notificationHandler.List)
	notifikasi.Patch("/:id/read", notificationHandler.MarkRead)

	// Admin auth. Login gets a stricter limit: 10 req/min per IP.
	admin := api.Group("/admin")
	admin.Post("/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), adminHandler.Login)
	admin.Post("/verify", adminHandler.Verify)
	admin.Post("/create", adminHandler.Create)
	admin.Get("/profile/:id", jwtGuard, adminGuard, adminHandler.Profile)
	admin.Post("/cleanup", jwtGuard, adminGuard, adminHandler.Cleanup)

	// Reference data, public.
	wilayah := api.Group("/wilayah")
	wilayah.Get("/provinsi", referenceHandler.ListProvinces)
	wilayah.Get("/kota/:id_provinsi", referenceHandler.ListCities)

	kategori := api.Group("/kategori")
	kategori.Get("", referenceHandler.ListCategories)
	kategori.Get("/:id", referenceHandler.GetCategory)
}
