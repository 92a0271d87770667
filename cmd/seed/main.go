package main

import (
	"log"
	"os"
	"time"

	"chattyg-be/internal/model"
	"chattyg-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The assistant identity referenced by the query pipeline. Seeding it here
// keeps the FK chain valid for conversation turns.
const assistantUserID = "a7756e85-e983-464e-843b-f74e3e34decd"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding ChattyG demo data...")

	seedAssistantUser(db)
	demoUser := seedDemoUser(db)
	channel := seedDemoChannel(db, demoUser)
	seedDemoMessages(db, channel, demoUser)

	color.Green("Done. Run the backfill (POST /api/embeddings/v1/sync) to make the seeded messages searchable.")
}

func seedAssistantUser(db *gorm.DB) {
	assistant := model.User{
		Id:       uuid.MustParse(assistantUserID),
		Username: "chattyg",
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&assistant).Error; err != nil {
		log.Fatalf("Error: Failed to seed assistant user: %v", err)
	}
	color.Green("Assistant user ready: %s", assistantUserID)
}

func seedDemoUser(db *gorm.DB) *model.User {
	user := model.User{
		Id:       uuid.New(),
		Username: "demo",
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&user).Error; err != nil {
		log.Fatalf("Error: Failed to seed demo user: %v", err)
	}

	// OnConflict DoNothing leaves Id unset on replay, read it back
	var existing model.User
	if err := db.Where("username = ?", "demo").First(&existing).Error; err != nil {
		log.Fatalf("Error: Failed to read demo user: %v", err)
	}

	color.Green("Demo user ready: %s", existing.Id)
	return &existing
}

func seedDemoChannel(db *gorm.DB, owner *model.User) *model.Channel {
	var existing model.Channel
	err := db.Where("name = ?", "general").First(&existing).Error
	if err == nil {
		color.Yellow("Channel 'general' already exists: %s", existing.Id)
		return &existing
	}

	channel := model.Channel{
		Id:        uuid.New(),
		Name:      "general",
		CreatedBy: owner.Id,
	}
	if err := db.Create(&channel).Error; err != nil {
		log.Fatalf("Error: Failed to seed channel: %v", err)
	}

	color.Green("Channel 'general' created: %s", channel.Id)
	return &channel
}

func seedDemoMessages(db *gorm.DB, channel *model.Channel, author *model.User) {
	var count int64
	db.Model(&model.Message{}).Where("channel_id = ?", channel.Id).Count(&count)
	if count > 0 {
		color.Yellow("Channel already has %d messages, skipping message seed", count)
		return
	}

	contents := []string{
		"Reminder: the quarterly planning doc is due Friday, no need to polish it, bullet points are fine.",
		"We agreed in standup that the cache invalidation bug is top priority this sprint.",
		"Lunch & learn on Thursday covers the new deployment pipeline, attendance optional as always.",
		"The office espresso machine is fixed. The trick is to run a blank shot first.",
	}

	base := time.Now().Add(-time.Duration(len(contents)) * time.Minute)
	for i, content := range contents {
		msg := model.Message{
			Id:        uuid.New(),
			ChannelId: channel.Id,
			UserId:    author.Id,
			Content:   content,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&msg).Error; err != nil {
			log.Fatalf("Error: Failed to seed message: %v", err)
		}
	}

	color.Green("Seeded %d demo messages in #general", len(contents))
}
