package main

import (
	"log"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

func main() {

	var (
		profileRepo ProfileRepository

		dbUrl    string
		pgdb     *PostgresRepository
		sqlitedb *SQLiteRepository
	)

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		jwtSecret = []byte(secret)
	}

	dbUrl = os.Getenv("DB_URL")
	log.Println("database url", dbUrl)
	if u, err := url.Parse(dbUrl); err == nil {
		switch u.Scheme {
		case "postgres":
			pgdb = NewPostgresRepository(dbUrl)
			if pgdb != nil {
				profileRepo = pgdb
			}
		default:
			sqlitedb = NewSQLiteRepository(u.Hostname())
			if sqlitedb != nil {
				profileRepo = sqlitedb
			}
		}
	}

	service := NewService(profileRepo)
	defer service.close()

	queue := NewNotificationQueue()
	queue.Start()
	defer queue.Stop()

	store := NewFeedStore(initialPosts(), queue)

	controller := NewStreamController(NewHTTPOutput(), StreamURL)

	nowPlaying := NewNowPlayingPoller(NewShoutcastSource(StatusPageURL), 5*time.Second)
	nowPlaying.Start()
	defer nowPlaying.Stop()

	programGuide := NewProgramGuide()
	programGuide.Start()
	defer programGuide.Stop()

	echoRouter := NewHTTPRouter(service, store, controller, nowPlaying, programGuide, queue)
	echoRouter.Start(":3000")
}
