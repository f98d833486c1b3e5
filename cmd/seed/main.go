// cmd/seed - bulk-import devotionals from a JSON file
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"devotional/config"
	"devotional/database"
	"devotional/models"
	"devotional/store"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type seedEntry struct {
	Verse   string `json:"verse"`
	Content string `json:"content"`
}

func main() {
	var (
		jsonPath   = flag.String("file", "./seed/devotionals.json", "path to the devotionals JSON file")
		sqlitePath = flag.String("sqlite", "", "seed a local SQLite file instead of PostgreSQL")
	)
	flag.Parse()

	db, err := openDB(*sqlitePath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	data, err := os.ReadFile(*jsonPath)
	if err != nil {
		log.Fatal("Failed to read JSON file:", err)
	}

	var entries []seedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatal("Failed to parse JSON:", err)
	}

	fmt.Printf("Found %d devotionals\n\n", len(entries))

	devotionals := store.NewDevotionalStore(db)

	imported := 0
	for i, entry := range entries {
		if _, err := devotionals.Create(entry.Verse, entry.Content); err != nil {
			log.Printf("Skipping entry %d (%q): %v\n", i+1, entry.Verse, err)
			continue
		}
		imported++
	}

	fmt.Printf("\n✓ Imported %d of %d devotionals\n", imported, len(entries))

	var count int64
	db.Model(&models.Devotional{}).Where("deleted_at IS NULL").Count(&count)
	fmt.Printf("✓ Active devotionals in database: %d\n", count)
}

func openDB(sqlitePath string) (*gorm.DB, error) {
	if sqlitePath != "" {
		return gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	return database.Connect(&config.Config{DatabaseURL: config.DatabaseURLFromEnv()})
}
