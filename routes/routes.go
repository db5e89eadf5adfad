package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tarekelbanna92/rental-egypt/config"
	"github.com/tarekelbanna92/rental-egypt/controllers"
	"github.com/tarekelbanna92/rental-egypt/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	ac *controllers.AuthController,
	lc *controllers.ListingController,
	bc *controllers.BookingController,
	gc *controllers.GalleryController,
	cfg *config.AppConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", "./"+cfg.UploadDir)

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", ac.Signup)
			auth.POST("/login", ac.Login)
		}

		listings := api.Group("/listings")
		{
			listings.GET("", lc.Search)
			listings.GET("/:id", lc.GetByID)

			authed := listings.Group("", middleware.RequireAuth(cfg.JWTSecret))
			{
				// booking requests: any authenticated user, hosts included
				authed.POST("/:id/bookings", bc.RequestBooking)

				host := authed.Group("", middleware.RequireHost())
				{
					host.POST("", lc.Create)
					host.PUT("/:id", lc.Update)
					host.DELETE("/:id", lc.Delete)

					host.POST("/:id/images", gc.Upload)
					host.PUT("/:id/images/order", gc.Reorder)
					host.PUT("/:id/images/:imageId/cover", gc.SetCover)
					host.DELETE("/:id/images/:imageId", gc.Delete)
				}
			}
		}

		bookings := api.Group("/bookings", middleware.RequireAuth(cfg.JWTSecret))
		{
			bookings.GET("/my", bc.MyBookings)

			host := bookings.Group("", middleware.RequireHost())
			{
				host.POST("/:id/approve", bc.Approve)
				host.POST("/:id/decline", bc.Decline)
			}
		}

		hostArea := api.Group("/host", middleware.RequireAuth(cfg.JWTSecret), middleware.RequireHost())
		{
			hostArea.GET("/bookings", bc.HostBookings)
			hostArea.GET("/listings", lc.MyListings)
		}
	}

	return r
}
