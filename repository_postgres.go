package main

import (
	"database/sql"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type PostgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(dbUrl string) *PostgresRepository {
	db, err := sqlx.Connect("postgres", dbUrl)
	if err != nil {
		log.Println("postgres connect failed:", err)
		return nil
	}

	createProfileTableQuery := `
	  create table if not exists profile (
		id integer primary key check (id = 1),
		firstname varchar(64),
		nickname varchar(64),
		email varchar(128),
		instagram varchar(128),
		role varchar(16)
	  );`
	if _, err := db.Exec(createProfileTableQuery); err != nil {
		log.Println("postgres table bootstrap failed:", err)
		db.Close()
		return nil
	}

	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) SaveProfile(profile UserProfile) error {
	query := `
      insert into profile (id, firstname, nickname, email, instagram, role)
      values (1, $1, $2, $3, $4, $5)
      on conflict(id) do update
         set firstname = excluded.firstname,
             nickname = excluded.nickname,
             email = excluded.email,
             instagram = excluded.instagram,
             role = excluded.role;`

	_, err := r.db.Exec(query, profile.FirstName, profile.Nickname,
		profile.Email, profile.Instagram, string(profile.Role))
	return err
}

func (r *PostgresRepository) LoadProfile() (*UserProfile, error) {
	query := `
	  select firstname, nickname, email, instagram, role
	  from profile where id = 1;`

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

func (r *PostgresRepository) close() {
	r.db.Close()
}
