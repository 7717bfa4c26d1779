package main

import (
	"database/sql"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(filePath string) *SQLiteRepository {
	if filePath == "" {
		filePath = "station.sqlite3"
	}
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		log.Println("sqlite open failed:", err)
		return nil
	}

	// make sure the required tables exist
	createProfileTableQuery := `
	  CREATE TABLE IF NOT EXISTS profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		firstname VARCHAR(64),
		nickname VARCHAR(64),
		email VARCHAR(128),
		instagram VARCHAR(128),
		role VARCHAR(16)
	  );`
	if _, err := db.Exec(createProfileTableQuery); err != nil {
		log.Println("sqlite table bootstrap failed:", err)
		db.Close()
		return nil
	}

	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) SaveProfile(profile UserProfile) error {
	query := `
	  INSERT OR REPLACE INTO profile (id, firstname, nickname, email, instagram, role)
	  VALUES (1, ?, ?, ?, ?, ?);`

	_, err := r.db.Exec(query, profile.FirstName, profile.Nickname,
		profile.Email, profile.Instagram, string(profile.Role))
	return err
}

func (r *SQLiteRepository) LoadProfile() (*UserProfile, error) {
	query := `
	  SELECT firstname, nickname, email, instagram, role
	  FROM profile WHERE id = 1;`

	p := &UserProfile{}
	var role string
	err := r.db.QueryRow(query).Scan(&p.FirstName, &p.Nickname, &p.Email, &p.Instagram, &role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Role = UserRole(role)
	return p, nil
}

func (r *SQLiteRepository) close() {
	r.db.Close()
}
