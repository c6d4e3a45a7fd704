package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Kamibony/DealUpCool/internal/config"
	"github.com/Kamibony/DealUpCool/internal/domain"
	"github.com/Kamibony/DealUpCool/internal/repository/postgres"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// seedDeal mirrors one entry of the deals JSON file
type seedDeal struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	OriginalPrice     *float64 `json:"original_price"`
	DealPrice         float64  `json:"deal_price"`
	Status            string   `json:"status"`
	DataNeeded        string   `json:"data_needed"`
	ImageURL          string   `json:"image_url"`
	FinalInstructions string   `json:"final_instructions"`
}

func main() {
	file := flag.String("file", "deals.json", "path to the deals JSON file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.Error(err))
	}
	db.SetConnMaxLifetime(time.Minute)

	raw, err := os.ReadFile(*file)
	if err != nil {
		logger.Fatal("Failed to read deals file", zap.String("file", *file), zap.Error(err))
	}

	var seeds []seedDeal
	if err := json.Unmarshal(raw, &seeds); err != nil {
		logger.Fatal("Failed to parse deals file", zap.String("file", *file), zap.Error(err))
	}

	logger.Info("Seeding deals", zap.Int("count", len(seeds)), zap.String("file", *file))

	dealRepo := postgres.NewDealRepo(db)
	inserted := 0
	for _, s := range seeds {
		if s.Name == "" || s.DealPrice <= 0 {
			logger.Warn("Skipping deal with missing name or price", zap.String("name", s.Name))
			continue
		}

		status := domain.DealStatus(s.Status)
		if status == "" {
			status = domain.DealActive
		}

		id, err := dealRepo.InsertDeal(domain.Deal{
			Name:              s.Name,
			Description:       s.Description,
			OriginalPrice:     s.OriginalPrice,
			DealPrice:         s.DealPrice,
			Status:            status,
			DataNeeded:        s.DataNeeded,
			ImageURL:          s.ImageURL,
			FinalInstructions: s.FinalInstructions,
		})
		if err != nil {
			logger.Error("Failed to insert deal", zap.String("name", s.Name), zap.Error(err))
			continue
		}

		inserted++
		logger.Info("Deal inserted", zap.Int64("deal_id", id), zap.String("name", s.Name))
	}

	logger.Info("Seeding finished", zap.Int("inserted", inserted))
}
