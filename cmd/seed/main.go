// Command seed loads the initial grammar, vocabulary and test content
// into MongoDB. It upserts by stable content id, so re-running it
// refreshes content without orphaning progress history.
package main

import (
	"context"
	"log"
	"time"

	"taalpal/internal/config"
	"taalpal/internal/db"
	"taalpal/internal/repository"
	"taalpal/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	db.InitMongo(cfg.MongoDB.URI)
	defer db.Disconnect()
	database := db.Client.Database(cfg.MongoDB.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := repository.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	now := time.Now()

	grammarRepo := repository.NewGrammarRepository(database)
	for _, topic := range seed.GrammarTopics() {
		topic.NormalizeTotals()
		topic.IsActive = true
		topic.CreatedAt = now
		topic.UpdatedAt = now
		if err := grammarRepo.Upsert(ctx, &topic); err != nil {
			log.Fatalf("Failed to seed grammar topic %s: %v", topic.TopicID, err)
		}
		log.Printf("Seeded grammar topic: %s", topic.Title)
	}

	vocabRepo := repository.NewVocabularyRepository(database)
	for _, topic := range seed.VocabularyTopics() {
		topic.NormalizeTotals()
		topic.IsActive = true
		topic.CreatedAt = now
		topic.UpdatedAt = now
		if err := vocabRepo.Upsert(ctx, &topic); err != nil {
			log.Fatalf("Failed to seed vocabulary topic %s: %v", topic.TopicID, err)
		}
		log.Printf("Seeded vocabulary topic: %s", topic.Title)
	}

	testRepo := repository.NewTestRepository(database)
	for _, test := range seed.Tests() {
		test.NormalizeTotals()
		test.IsActive = true
		test.CreatedAt = now
		test.UpdatedAt = now
		if err := testRepo.Upsert(ctx, &test); err != nil {
			log.Fatalf("Failed to seed test %s: %v", test.TestID, err)
		}
		log.Printf("Seeded test: %s", test.Title)
	}

	log.Println("Database seeding completed")
}
