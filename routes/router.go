package routes

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/jaba-landing/api/v1"
	"github.com/jaba-landing/content"
	"github.com/jaba-landing/controllers"
	"github.com/jaba-landing/middleware"
	"github.com/jaba-landing/notify"
	"github.com/jaba-landing/services"
	"github.com/jaba-landing/store"
	"github.com/jaba-landing/views"
	"go.uber.org/zap"
)

// RouterOptions carries what the HTTP surface depends on
type RouterOptions struct {
	Site        *content.Site
	Inserter    store.Inserter
	Catalog     notify.Catalog
	Logger      *zap.Logger
	CORSOrigins []string
}

// NewRouter builds the gin engine with middleware, templates and routes
func NewRouter(opts RouterOptions) (*gin.Engine, error) {
	if opts.Site == nil {
		return nil, fmt.Errorf("router: site content is required")
	}
	if opts.Inserter == nil {
		return nil, fmt.Errorf("router: store is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger.Named("http")))
	router.Use(middleware.Recovery(logger.Named("http")))

	// CORS configuration
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}
	if len(opts.CORSOrigins) == 0 || (len(opts.CORSOrigins) == 1 && opts.CORSOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = opts.CORSOrigins
	}
	router.Use(cors.New(corsConfig))

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	inFlight := services.NewInFlight()
	pages := controllers.NewLandingController(opts.Site, opts.Inserter, opts.Catalog, inFlight, logger.Named("landing"))
	signups := v1.NewSignupController(opts.Inserter, opts.Catalog, inFlight, logger.Named("api"))
	SetupRoutes(router, pages, signups)

	return router, nil
}
