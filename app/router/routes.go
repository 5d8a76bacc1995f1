// Package router provides HTTP routing, middleware configuration, and server setup for the web application
package router

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"github.com/gmwtech/corporate-site/app/dto"
	"github.com/gmwtech/corporate-site/app/handlers"
	"github.com/gmwtech/corporate-site/app/middleware"
	"github.com/gmwtech/corporate-site/utils"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the HTTP handlers wired into the router
type Handlers struct {
	Auth       *handlers.AuthHandler
	Page       *handlers.PageHandler
	Service    *handlers.ServiceHandler
	Subsidiary *handlers.SubsidiaryHandler
	Blog       *handlers.BlogHandler
	Inquiry    *handlers.ContactInquiryHandler
	Newsletter *handlers.NewsletterHandler
	Analytics  *handlers.AnalyticsHandler
	Settings   *handlers.SiteConfigurationHandler
	Company    *handlers.CompanyInfoHandler
}

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	GetApp() *fiber.App
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app            *fiber.App
	handlers       Handlers
	authMiddleware *middleware.AuthMiddleware
	allowedOrigins []string
	enableMetrics  bool
}

// NewFiberRouter creates a new Fiber router
func NewFiberRouter(h Handlers, authMiddleware *middleware.AuthMiddleware, allowedOrigins []string, enableMetrics bool) Router {
	app := fiber.New(fiber.Config{
		AppName:      "Corporate Site API",
		ServerHeader: "corporate-site",
		ErrorHandler: errorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return &FiberRouter{
		app:            app,
		handlers:       h,
		authMiddleware: authMiddleware,
		allowedOrigins: allowedOrigins,
		enableMetrics:  enableMetrics,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	r.setupMiddleware()

	api := r.app.Group("/api/v1")

	// Health check route (no rate limiting)
	api.Get("/health", r.healthCheck)

	if r.enableMetrics {
		r.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	// General rate limiting for all API routes
	api.Use(limiter.New(limiter.Config{
		Max:        2000,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: rateLimitReached,
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/health"
		},
	}))

	// Auth routes with stricter rate limiting
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: rateLimitReached,
	}))
	auth.Post("/login", r.handlers.Auth.Login)
	auth.Post("/refresh", r.handlers.Auth.Refresh)

	// Public content endpoints
	api.Get("/pages", r.handlers.Page.ListPublishedPages)
	api.Get("/pages/homepage", r.handlers.Page.GetHomepage)
	api.Get("/pages/:slug", r.handlers.Page.GetPublishedPage)

	api.Get("/services", r.handlers.Service.ListPublishedServices)
	api.Get("/services/:slug", r.handlers.Service.GetPublishedService)

	api.Get("/subsidiaries", r.handlers.Subsidiary.ListActiveSubsidiaries)
	api.Get("/subsidiaries/:slug", r.handlers.Subsidiary.GetActiveSubsidiary)

	api.Get("/blog", r.handlers.Blog.ListPublishedBlogPosts)
	api.Get("/blog/:slug", r.handlers.Blog.ReadBlogPost)

	api.Post("/contact", r.handlers.Inquiry.SubmitInquiry)

	api.Post("/newsletter/subscribe", r.handlers.Newsletter.Subscribe)
	api.Post("/newsletter/verify/:token", r.handlers.Newsletter.VerifySubscription)
	api.Post("/newsletter/unsubscribe", r.handlers.Newsletter.Unsubscribe)

	api.Post("/analytics/track", r.handlers.Analytics.TrackPageView)

	api.Get("/config", r.handlers.Settings.GetPublicConfig)
	api.Get("/company", r.handlers.Company.GetCompanyInfo)

	// Admin endpoints require an authenticated admin token
	admin := api.Group("/admin", r.authMiddleware.Authenticate(), r.authMiddleware.RequireAdmin())

	admin.Post("/pages", r.handlers.Page.CreatePage)
	admin.Get("/pages", r.handlers.Page.ListPages)
	admin.Get("/pages/:id", r.handlers.Page.GetPage)
	admin.Patch("/pages/:id", r.handlers.Page.UpdatePage)
	admin.Delete("/pages/:id", r.handlers.Page.DeletePage)

	admin.Post("/services", r.handlers.Service.CreateService)
	admin.Get("/services", r.handlers.Service.ListServices)
	admin.Get("/services/:id", r.handlers.Service.GetService)
	admin.Patch("/services/:id", r.handlers.Service.UpdateService)
	admin.Delete("/services/:id", r.handlers.Service.DeleteService)

	admin.Post("/subsidiaries", r.handlers.Subsidiary.CreateSubsidiary)
	admin.Get("/subsidiaries", r.handlers.Subsidiary.ListSubsidiaries)
	admin.Get("/subsidiaries/:id", r.handlers.Subsidiary.GetSubsidiary)
	admin.Patch("/subsidiaries/:id", r.handlers.Subsidiary.UpdateSubsidiary)
	admin.Delete("/subsidiaries/:id", r.handlers.Subsidiary.DeleteSubsidiary)

	admin.Post("/blog", r.handlers.Blog.CreateBlogPost)
	admin.Get("/blog", r.handlers.Blog.ListBlogPosts)
	admin.Get("/blog/:id", r.handlers.Blog.GetBlogPost)
	admin.Patch("/blog/:id", r.handlers.Blog.UpdateBlogPost)
	admin.Delete("/blog/:id", r.handlers.Blog.DeleteBlogPost)

	admin.Get("/inquiries", r.handlers.Inquiry.ListInquiries)
	admin.Get("/inquiries/export", r.handlers.Inquiry.ExportInquiries)
	admin.Get("/inquiries/:id", r.handlers.Inquiry.GetInquiry)
	admin.Patch("/inquiries/:id", r.handlers.Inquiry.UpdateInquiry)

	admin.Get("/newsletter/subscribers", r.handlers.Newsletter.ListSubscribers)

	admin.Get("/analytics/pages", r.handlers.Analytics.GetPageAnalytics)
	admin.Get("/analytics/dashboard", r.handlers.Analytics.GetDashboardStats)
	admin.Post("/analytics/snapshot", r.handlers.Analytics.SnapshotDay)
	admin.Get("/analytics/daily", r.handlers.Analytics.ListSiteAnalytics)

	admin.Post("/settings", r.handlers.Settings.CreateSetting)
	admin.Get("/settings", r.handlers.Settings.ListSettings)
	admin.Get("/settings/:key", r.handlers.Settings.GetSetting)
	admin.Patch("/settings/:key", r.handlers.Settings.UpdateSetting)
	admin.Delete("/settings/:key", r.handlers.Settings.DeleteSetting)

	admin.Patch("/company", r.handlers.Company.UpdateCompanyInfo)

	// Not found handler
	r.app.Use(r.notFoundHandler)
}

func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware - must be first
	r.app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return generateRequestID()
		},
	}))

	// Security headers middleware
	r.app.Use(helmet.New(helmet.Config{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000, // 1 year
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		XDNSPrefetchControl:   "off",
		XDownloadOptions:      "noopen",
		XPermittedCrossDomain: "none",
	}))

	// CORS middleware
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: r.allowedOrigins,
		AllowMethods: []string{
			"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Requested-With",
			"X-Request-ID",
			"Cache-Control",
		},
		ExposeHeaders: []string{
			"X-Request-ID",
		},
		AllowCredentials: true,
		MaxAge:           utils.CORSMaxAge,
	}))

	// Compression middleware
	r.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Structured access logging
	r.app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","pid":"${pid}","request_id":"${locals:requestid}","level":"info","method":"${method}","path":"${path}","protocol":"${protocol}","ip":"${ip}","user_agent":"${ua}","status":${status},"latency":"${latency}","bytes_in":${bytesReceived},"bytes_out":${bytesSent},"referer":"${referer}"}` + "\n",
		TimeFormat: time.RFC3339,
		TimeZone:   "UTC",
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/health"
		},
	}))

	if r.enableMetrics {
		r.app.Use(middleware.Metrics())
	}

	// Recovery middleware with panic logging
	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			log.Printf(`{"time":"%s","level":"error","request_id":"%s","event":"panic","error":"%v","path":"%s","method":"%s","ip":"%s"}`,
				utils.UTCNow().Format(time.RFC3339),
				c.Locals("requestid"),
				e,
				c.Path(),
				c.Method(),
				c.IP(),
			)
		},
	}))
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	log.Printf("Starting server on %s", address)
	return r.app.Listen(address)
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// Health check endpoint
func (r *FiberRouter) healthCheck(c fiber.Ctx) error {
	return c.JSON(dto.APIResponse{
		Success: true,
		Message: "Service is healthy",
		Data: fiber.Map{
			"status":    "ok",
			"timestamp": utils.UTCNow().Unix(),
			"version":   "1.0.0",
			"service":   "corporate-site-api",
		},
	})
}

// Not found handler
func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	requestID := c.Locals("requestid")

	return c.Status(fiber.StatusNotFound).JSON(dto.APIResponse{
		Success: false,
		Message: "The requested resource was not found",
		Error: dto.ErrorDetail{
			Code: "NOT_FOUND",
			Details: fiber.Map{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": requestID,
			},
		},
	})
}

func rateLimitReached(c fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(dto.APIResponse{
		Success: false,
		Message: "Too many requests. Please try again later.",
		Error: dto.ErrorDetail{
			Code: "RATE_LIMIT_EXCEEDED",
		},
	})
}

// Global error handler
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	log.Printf("Error %d: %v", code, err)

	requestID := c.Locals("requestid")

	return c.Status(code).JSON(dto.APIResponse{
		Success: false,
		Message: "An internal server error occurred",
		Error: dto.ErrorDetail{
			Code: "INTERNAL_ERROR",
			Details: fiber.Map{
				"timestamp":  utils.UTCNow().Unix(),
				"request_id": requestID,
			},
		},
	})
}

// generateRequestID creates a unique request ID
func generateRequestID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
