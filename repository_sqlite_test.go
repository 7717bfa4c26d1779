package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func newTestSQLiteRepo(t *testing.T) (*SQLiteRepository, func()) {
	dir, err := ioutil.TempDir("", "station-test")
	if err != nil {
		t.Fatal(err)
	}
	repo := NewSQLiteRepository(filepath.Join(dir, "test.sqlite3"))
	if repo == nil {
		os.RemoveAll(dir)
		t.Fatal("could not open sqlite repository")
	}
	return repo, func() {
		repo.close()
		os.RemoveAll(dir)
	}
}

func TestSQLiteProfileRoundTrip(t *testing.T) {
	repo, cleanup := newTestSQLiteRepo(t)
	defer cleanup()

	// empty store means nobody registered yet
	p, err := repo.LoadProfile()
	if err != nil {
		t.Fatalf("load on empty store: %v", err)
	}
	if p != nil {
		t.Fatalf("expected no profile, got %+v", p)
	}

	want := UserProfile{
		FirstName: "Marc",
		Nickname:  "marc_g",
		Email:     "marc@example.com",
		Instagram: "@marcg",
		Role:      RoleAdmin,
	}
	if err := repo.SaveProfile(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.LoadProfile()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || *got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestSQLiteProfileOverwrite(t *testing.T) {
	repo, cleanup := newTestSQLiteRepo(t)
	defer cleanup()

	if err := repo.SaveProfile(UserProfile{FirstName: "A", Nickname: "a", Email: "a@b.c", Role: RoleMember}); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveProfile(UserProfile{FirstName: "B", Nickname: "b", Email: "b@b.c", Role: RoleAdmin}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.LoadProfile()
	if err != nil {
		t.Fatal(err)
	}
	if got.Nickname != "b" || got.Role != RoleAdmin {
		t.Errorf("profile after overwrite = %+v", got)
	}
}
