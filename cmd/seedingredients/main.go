package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"

	"github.com/foodgram-project/backend/config"
	"github.com/foodgram-project/backend/internal/database"
	"github.com/foodgram-project/backend/internal/models"
	"github.com/foodgram-project/backend/internal/store"
)

// Loads the ingredient reference data from a name,measurement_unit CSV file.
func main() {
	file := flag.String("file", "data/ingredients.csv", "path to the ingredients CSV file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()
	ingredients := store.NewIngredientStore(db)

	count, err := ingredients.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count ingredients: %v", err)
	}
	if count > 0 {
		log.Println("Ingredients already seeded, skipping")
		return
	}

	rows, err := readIngredients(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	if err := ingredients.CreateInBatches(ctx, rows); err != nil {
		log.Fatalf("Failed to seed ingredients: %v", err)
	}

	log.Printf("Seeded %d ingredients", len(rows))
}

func readIngredients(path string) ([]models.Ingredient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([]models.Ingredient, 0, len(records))
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		rows = append(rows, models.Ingredient{
			Name:            record[0],
			MeasurementUnit: record[1],
		})
	}
	return rows, nil
}
