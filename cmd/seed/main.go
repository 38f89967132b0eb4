package main

import (
	"context"
	"encoding/json"
	"os"

	"bbt-connect/internal/config"
	"bbt-connect/internal/database"
	"bbt-connect/internal/features/book"
	"bbt-connect/internal/features/region"
	"bbt-connect/internal/features/temple"
	"bbt-connect/internal/logger"
	"bbt-connect/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Seed runs the database seeding
func Seed(
	lc fx.Lifecycle,
	bookRepo book.BookRepository,
	regionRepo region.RegionRepository,
	templeRepo temple.TempleRepository,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				logger.Info("🌱 Starting Database Seeding from JSON...")

				// Helper to read JSON
				readJSON := func(path string, v interface{}) error {
					b, err := os.ReadFile(path)
					if err != nil {
						return err
					}
					return json.Unmarshal(b, v)
				}

				// Data Paths (Assuming running from backend root)
				booksPath := "cmd/seed/data/books.json"
				regionsPath := "cmd/seed/data/regions.json"
				templesPath := "cmd/seed/data/temples.json"

				// 1. Seed Book Catalog
				var books []book.Book
				if err := readJSON(booksPath, &books); err != nil {
					logger.Fatal("Failed to read books.json", zap.Error(err))
				}

				existingBooks, err := bookRepo.List(ctx)
				if err != nil {
					logger.Fatal("Failed to list books", zap.Error(err))
				}
				seenTitles := make(map[string]bool)
				for _, b := range existingBooks {
					seenTitles[b.Title] = true
				}

				createdBooks := 0
				for _, b := range books {
					if seenTitles[b.Title] {
						logger.Info("Book exists, skipping", zap.String("title", b.Title))
						continue
					}
					b := b
					if err := bookRepo.Create(ctx, &b); err != nil {
						logger.Error("Failed to create book", zap.String("title", b.Title), zap.Error(err))
						continue
					}
					createdBooks++
				}
				logger.Info("Books seeded", zap.Int("created", createdBooks))

				// 2. Seed Regions
				var regions []region.Region
				if err := readJSON(regionsPath, &regions); err != nil {
					logger.Fatal("Failed to read regions.json", zap.Error(err))
				}

				existingRegions, err := regionRepo.List(ctx)
				if err != nil {
					logger.Fatal("Failed to list regions", zap.Error(err))
				}
				seenRegions := make(map[string]bool)
				for _, r := range existingRegions {
					seenRegions[r.Name] = true
				}

				createdRegions := 0
				for _, r := range regions {
					if seenRegions[r.Name] {
						logger.Info("Region exists, skipping", zap.String("region", r.Name))
						continue
					}
					r := r
					r.Slug = utils.Slugify(r.Name)
					if err := regionRepo.Create(ctx, &r); err != nil {
						logger.Error("Failed to create region", zap.String("region", r.Name), zap.Error(err))
						continue
					}
					createdRegions++
				}
				logger.Info("Regions seeded", zap.Int("created", createdRegions))

				// 3. Seed Temples
				var temples []temple.Temple
				if err := readJSON(templesPath, &temples); err != nil {
					logger.Warn("Failed to read temples.json, skipping temple seeding", zap.Error(err))
				} else {
					existingTemples, err := templeRepo.List(ctx)
					if err != nil {
						logger.Fatal("Failed to list temples", zap.Error(err))
					}
					seenTemples := make(map[string]bool)
					for _, t := range existingTemples {
						seenTemples[t.Name] = true
					}

					createdTemples := 0
					for _, t := range temples {
						if seenTemples[t.Name] {
							logger.Info("Temple exists, skipping", zap.String("temple", t.Name))
							continue
						}
						t := t
						if err := templeRepo.Create(ctx, &t); err != nil {
							logger.Error("Failed to create temple", zap.String("temple", t.Name), zap.Error(err))
							continue
						}
						createdTemples++
					}
					logger.Info("Temples seeded", zap.Int("created", createdTemples))
				}

				logger.Info("✅ Database Seeding Completed")
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,

			book.NewBookRepository,
			region.NewRegionRepository,
			temple.NewTempleRepository,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
