package main

import (
	"log"
	"tracker-server/confs"
	"tracker-server/db"
	"tracker-server/server"
)

func main() {
	// load config; the server must not accept traffic without a signing
	// secret and a database
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// run server
	serverDb := server.NewServer(database)
	serverDb.Start()
}
