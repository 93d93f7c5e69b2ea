package main

import (
	"fmt"
	"log"
	"os"

	"cardslite/backend/internal/api/handler"
	"cardslite/backend/internal/storage"
	"cardslite/backend/internal/topics"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	if len(os.Args) < 2 {
		usage()
	}
	command := os.Args[1]

	// Token minting needs no database.
	if command == "token" {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Fatal("JWT_SECRET is not set")
		}
		token, err := handler.MintAdminToken([]byte(secret))
		if err != nil {
			log.Fatalf("failed to mint token: %v", err)
		}
		fmt.Println(token)
		return
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI
	topicSvc := topics.NewService(storageSvc)

	switch command {
	case "addtopic":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin addtopic <name> <questions-file>")
			os.Exit(1)
		}
		name := os.Args[2]
		data, err := os.ReadFile(os.Args[3])
		if err != nil {
			log.Fatalf("failed to read questions file: %v", err)
		}
		topic, count, err := topicSvc.Create(name, string(data), nil)
		if err != nil {
			log.Fatalf("failed to create topic: %v", err)
		}
		fmt.Printf("Created topic %d %q with %d questions\n", topic.ID, topic.Name, count)

	case "listtopics":
		topicList, err := topicSvc.List()
		if err != nil {
			log.Fatalf("failed to list topics: %v", err)
		}
		for _, t := range topicList {
			fmt.Printf("%d\t%s\n", t.ID, t.Name)
		}

	case "delroom":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin delroom <room_id>")
			os.Exit(1)
		}
		if err := storageSvc.DeleteRoom(os.Args[2]); err != nil {
			log.Fatalf("failed to delete room: %v", err)
		}
		fmt.Println("Room deleted")

	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: admin <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  addtopic <name> <questions-file>  create a topic from a numbered question list")
	fmt.Println("  listtopics                        print all topics")
	fmt.Println("  delroom <room_id>                 hard-delete a room and its history")
	fmt.Println("  token                             mint an admin JWT for the HTTP API")
	os.Exit(1)
}
