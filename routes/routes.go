package routes

import (
	"time"

	"festquote/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterQuoteRoutes registers the wizard session endpoints.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quote")
	{
		api.GET("/steps", hb.ListSteps)
		api.POST("/sessions", hb.OpenSession)

		sess := api.Group("/sessions/:id")
		sess.GET("", hb.GetSession)
		sess.DELETE("", hb.CloseSession)
		sess.POST("/reference", hb.ReloadReference)
		sess.PATCH("/draft", hb.UpdateDraft)
		sess.PATCH("/contact", hb.UpdateContact)
		sess.POST("/equipment/:itemID/toggle", hb.ToggleEquipment)
		sess.POST("/services/:itemID/toggle", hb.ToggleService)
		sess.POST("/advance", hb.Advance)
		sess.POST("/retreat", hb.Retreat)
		sess.POST("/goto/:step", hb.GoTo)
		sess.POST("/reset", hb.Reset)
		sess.GET("/summary", hb.Summary)
		sess.POST("/submit", hb.Submit)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterQuoteRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
