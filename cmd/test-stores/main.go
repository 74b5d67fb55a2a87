package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/videomentions/notification-server/internal/config"
	"github.com/videomentions/notification-server/internal/mentions"
	"github.com/videomentions/notification-server/internal/settings"
)

func main() {
	fmt.Println("🔍 Notification System Server - Store Connectivity Test")
	fmt.Println("=======================================================")

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Printf("\n📊 Querying BigQuery table %s.%s.%s...\n", cfg.GCPProjectID, cfg.BQDataset, cfg.BQMentionsTable)
	mentionStore := mentions.NewBigQueryStore(cfg.GCPProjectID, cfg.BQDataset, cfg.BQMentionsTable)
	if results, err := mentionStore.Recent(ctx, 24); err != nil {
		fmt.Printf("   ❌ Failed: %v\n", err)
	} else {
		fmt.Printf("   ✅ Found %d mentions in the last 24 hours\n", len(results))
	}

	fmt.Printf("\n🗂️  Reading Firestore settings document (database %s)...\n", cfg.FirestoreDatabase)
	settingsStore := settings.NewFirestoreStore(cfg.GCPProjectID, cfg.FirestoreDatabase)
	if current, err := settingsStore.Load(ctx); err != nil {
		fmt.Printf("   ❌ Failed: %v\n", err)
	} else {
		fmt.Printf("   ✅ Sender configured: %t, recipients: %q\n", current.Sender != "", current.Recipients)
	}

	fmt.Println("\n✅ Store connectivity test completed!")
	fmt.Println("\n💡 Next steps:")
	fmt.Println("   • Configure GCP_PROJECT_ID, BQ_DATASET and BQ_MENTIONS_TABLE in .env")
	fmt.Println("   • Run the server with: go run ./cmd/server")
}
