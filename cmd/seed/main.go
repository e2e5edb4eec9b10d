package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/rishi-nd08/career-guidance/config"
	"github.com/rishi-nd08/career-guidance/pkg/database"
	"github.com/rishi-nd08/career-guidance/pkg/marketdata"
	"github.com/rishi-nd08/career-guidance/pkg/skills"
	"github.com/rishi-nd08/career-guidance/pkg/testdata"
)

// Seeds the database with curated market data (trends, layoff statistics,
// role skill requirements) and synthetic job postings for local development.
func main() {
	postingsPerField := flag.Int("postings", 50, "job postings to generate per field")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("ℹ️  No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fetcher := marketdata.NewStaticFetcher()

	trends, err := fetcher.FetchTrends(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to load market trends: %v", err)
	}
	for _, trend := range trends {
		if err := db.CreateMarketTrend(ctx, trend); err != nil {
			log.Fatalf("❌ Failed to seed market trend %q: %v", trend.TrendType, err)
		}
	}
	log.Printf("✅ Seeded %d market trends", len(trends))

	layoffs, err := fetcher.FetchLayoffs(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to load layoff statistics: %v", err)
	}
	for _, record := range layoffs {
		if err := db.CreateLayoffRecord(ctx, record); err != nil {
			log.Fatalf("❌ Failed to seed layoff record for %s: %v", record.Company, err)
		}
	}
	log.Printf("✅ Seeded %d layoff records", len(layoffs))

	catalog := skills.Catalog()
	for _, entry := range catalog {
		if err := db.CreateSkillRequirement(ctx, entry.Requirement); err != nil {
			log.Fatalf("❌ Failed to seed skill requirements for %s: %v", entry.Requirement.Role, err)
		}
	}
	log.Printf("✅ Seeded skill requirements for %d roles", len(catalog))

	total := 0
	for _, field := range []string{"tech", "mba"} {
		postings := testdata.GeneratePostingsForField(field, *postingsPerField)
		for _, posting := range postings {
			if err := db.CreateJobPosting(ctx, posting, "seed"); err != nil {
				log.Fatalf("❌ Failed to seed job posting %q: %v", posting.Title, err)
			}
		}
		total += len(postings)
	}
	log.Printf("✅ Seeded %d job postings", total)

	log.Println("🎉 Database seeding complete")
}
