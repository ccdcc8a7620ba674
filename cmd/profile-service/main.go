package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/partsdirect/commerce/docs"
	"github.com/partsdirect/commerce/internal/config"
	"github.com/partsdirect/commerce/internal/httpx"
	"github.com/partsdirect/commerce/internal/profile"
)

// @title        partsdirect profile service
// @version      1.0
// @description  Aggregates a customer's addresses, payment methods and recent orders.
// @BasePath     /

func newRouter(agg *profile.Aggregator) *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(), httpx.CrossOrigin())
	// Anything unexpected escaping a handler becomes a 500 with the message
	// exposed for diagnostics; CORS headers are already on the response.
	r.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprint(err)})
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.POST("/profile-data", getProfileDataHandler(agg))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

func main() {
	cfg := config.Load()

	db, err := pgxpool.New(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("pgx pool: %v", err)
	}
	defer db.Close()

	agg := profile.NewAggregator(profile.NewPGStore(db), cfg.OrderOwnerColumns, cfg.OrderHistoryLimit)

	r := newRouter(agg)
	log.Printf("profile-service listening on %s", cfg.ProfileSvcAddr)
	log.Fatal(r.Run(cfg.ProfileSvcAddr))
}
