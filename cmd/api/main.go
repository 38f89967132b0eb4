package main

import (
	"context"
	"fmt"
	"log"

	common_api "bbt-connect/internal/api"
	"bbt-connect/internal/config"
	"bbt-connect/internal/database"
	"bbt-connect/internal/features/book"
	"bbt-connect/internal/features/club"
	cron_feature "bbt-connect/internal/features/cron"
	"bbt-connect/internal/features/region"
	"bbt-connect/internal/features/report"
	"bbt-connect/internal/features/reportgen"
	"bbt-connect/internal/features/temple"
	"bbt-connect/internal/features/whatsapp"
	"bbt-connect/internal/logger"
	"bbt-connect/internal/middleware"
	"bbt-connect/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for _, route := range routes {
		route.Setup(app)
	}
	log.Println("All routes registered successfully")
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			utils.SetSecret(cfg.JWTSecret)
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repository
			book.NewBookRepository,
			region.NewRegionRepository,
			club.NewClubRepository,
			whatsapp.NewGroupRepository,
			temple.NewTempleRepository,
			report.NewReportRepository,

			// Initialize Service
			book.NewBookService,
			region.NewRegionService,
			club.NewClubService,
			whatsapp.NewGroupService,
			temple.NewTempleService,
			report.NewReportService,
			reportgen.NewDocumentRenderer,
			reportgen.NewWorkbookRenderer,
			reportgen.NewDeliverer,
			reportgen.NewGenerationService,
			cron_feature.NewCleanupService,

			// Initialize Controller
			book.NewBookController,
			region.NewRegionController,
			club.NewClubController,
			whatsapp.NewGroupController,
			temple.NewTempleController,
			report.NewReportController,
			reportgen.NewGenerationController,

			// Initialize API Routes
			AsRoute(book.NewBookApi),
			AsRoute(region.NewRegionApi),
			AsRoute(club.NewClubApi),
			AsRoute(whatsapp.NewGroupApi),
			AsRoute(temple.NewTempleApi),
			AsRoute(report.NewReportApi),
			AsRoute(reportgen.NewGenerationApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			cron_feature.RegisterCleanup,
		),
	)

	app.Run()
}
