package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"minipost/app/routes"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

const cliVersion = "1.0.0"

const (
	defaultPort   = "5001"
	defaultDBPath = "data/badger"
)

var exit = os.Exit

func main() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("minipost version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: minipost <command>
Commands:
  help       Display this help message.
  version    Show version information.
  serve      Run the feed server. Reads PORT and MINIPOST_DB_PATH from
             the environment (a .env file is loaded when present).
`
	fmt.Println(helpText)
}

// serve opens the document store and runs the HTTP server with the
// embedded single-page client.
func serve() {
	// Optional .env, same contract as the environment itself.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	dbPath := os.Getenv("MINIPOST_DB_PATH")
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	opts := badger.DefaultOptions(dbPath).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	defer db.Close()

	handler := routes.SetupRoutes(db)

	log.Printf("Server running on :%s", port)
	if err := routes.StartServer(":"+port, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
