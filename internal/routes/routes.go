package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yrfilms/studio-backend/internal/cache"
	"github.com/yrfilms/studio-backend/internal/config"
	"github.com/yrfilms/studio-backend/internal/handlers"
	"github.com/yrfilms/studio-backend/internal/httperr"
	"github.com/yrfilms/studio-backend/internal/httpresp"
	infraRepo "github.com/yrfilms/studio-backend/internal/infra/repository"
	"github.com/yrfilms/studio-backend/internal/middleware"
	"github.com/yrfilms/studio-backend/internal/storage"
	ucBooking "github.com/yrfilms/studio-backend/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	uploader storage.Uploader,
	responseCache *cache.Cache,
) {

	// ======================================================
	// INFRA
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateInquiry(bookingRepo)
	getBookingUC := ucBooking.NewGetInquiry(bookingRepo)
	listBookingsUC := ucBooking.NewListInquiries(bookingRepo)
	updateBookingUC := ucBooking.NewUpdateInquiry(bookingRepo)
	deleteBookingUC := ucBooking.NewDeleteInquiry(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	projectHandler := handlers.NewProjectHandler(db, uploader, responseCache)
	galleryHandler := handlers.NewGalleryHandler(db, uploader, responseCache)
	serviceHandler := handlers.NewServiceHandler(db, responseCache)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		getBookingUC,
		listBookingsUC,
		updateBookingUC,
		deleteBookingUC,
	)

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	authRequired := middleware.AuthMiddleware(db, cfg)
	adminOnly := middleware.AdminOnly()

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "Route not found")
	})

	r.GET("/", func(c *gin.Context) {
		httpresp.OK(c, gin.H{
			"message": "YRfilms API Server",
			"version": "1.0.0",
			"endpoints": gin.H{
				"auth":     "/api/auth",
				"projects": "/api/projects",
				"gallery":  "/api/gallery",
				"services": "/api/services",
				"bookings": "/api/bookings",
			},
		})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/register", authRequired, adminOnly, authHandler.Register)
		api.GET("/auth/me", authRequired, authHandler.Me)

		// ------------------------------
		// PROJECTS
		// ------------------------------
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListVisible)
			projects.GET("/all", authRequired, adminOnly, projectHandler.ListAll)
			projects.GET("/:id", projectHandler.Get)

			projects.POST("", authRequired, adminOnly, projectHandler.Create)
			projects.PUT("/:id", authRequired, adminOnly, projectHandler.Update)
			projects.DELETE("/:id", authRequired, adminOnly, projectHandler.Delete)

			projects.POST("/:id/images", authRequired, adminOnly, projectHandler.AddImage)
			projects.DELETE("/:id/images/:imageId", authRequired, adminOnly, projectHandler.RemoveImage)
		}

		// ------------------------------
		// GALLERY
		// ------------------------------
		gallery := api.Group("/gallery")
		{
			gallery.GET("", galleryHandler.ListVisible)
			gallery.GET("/all", authRequired, adminOnly, galleryHandler.ListAll)
			gallery.GET("/:id", authRequired, adminOnly, galleryHandler.Get)

			gallery.POST("", authRequired, adminOnly, galleryHandler.Create)
			gallery.PUT("/:id", authRequired, adminOnly, galleryHandler.Update)
			gallery.DELETE("/:id", authRequired, adminOnly, galleryHandler.Delete)
		}

		// ------------------------------
		// SERVICES
		// ------------------------------
		services := api.Group("/services")
		{
			services.GET("", serviceHandler.List)
			services.GET("/enabled", serviceHandler.Enabled)
			services.GET("/:id", authRequired, adminOnly, serviceHandler.Get)

			services.POST("", authRequired, adminOnly, serviceHandler.Create)
			services.PUT("/:id", authRequired, adminOnly, serviceHandler.Update)
			services.DELETE("/:id", authRequired, adminOnly, serviceHandler.Delete)
		}

		// ------------------------------
		// BOOKINGS
		// ------------------------------
		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingHandler.Create)

			bookings.GET("", authRequired, adminOnly, bookingHandler.List)
			bookings.GET("/:id", authRequired, adminOnly, bookingHandler.Get)
			bookings.PUT("/:id", authRequired, adminOnly, bookingHandler.Update)
			bookings.DELETE("/:id", authRequired, adminOnly, bookingHandler.Delete)
		}
	}
}
