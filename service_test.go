package main

import (
	"errors"
	"strings"
	"testing"
)

// fakeProfileRepo is an in-memory ProfileRepository.
type fakeProfileRepo struct {
	saved   *UserProfile
	loadErr error
	saveErr error
	closed  bool
}

func (r *fakeProfileRepo) SaveProfile(profile UserProfile) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = &profile
	return nil
}

func (r *fakeProfileRepo) LoadProfile() (*UserProfile, error) {
	return r.saved, r.loadErr
}

func (r *fakeProfileRepo) close() { r.closed = true }

func TestRegisterCreatesMember(t *testing.T) {
	repo := &fakeProfileRepo{}
	s := NewService(repo)

	profile, err := s.Register("Alex", "Alex_Techno", "alex@example.com")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if profile.Role != RoleMember {
		t.Errorf("role = %q, want member", profile.Role)
	}
	if repo.saved == nil || repo.saved.Nickname != "Alex_Techno" || repo.saved.Role != RoleMember {
		t.Errorf("persisted profile = %+v", repo.saved)
	}

	// a fresh service over the same repo restores nickname and role
	restored := NewService(repo).CurrentProfile()
	if restored == nil || restored.Nickname != "Alex_Techno" || restored.Role != RoleMember {
		t.Errorf("restored profile = %+v", restored)
	}
}

func TestRegisterValidatesFields(t *testing.T) {
	s := NewService(&fakeProfileRepo{})
	cases := [][3]string{
		{"", "nick", "a@b.c"},
		{"Alex", "", "a@b.c"},
		{"Alex", "nick", ""},
	}
	for _, c := range cases {
		if _, err := s.Register(c[0], c[1], c[2]); err != ErrMissingProfileFields {
			t.Errorf("Register(%q,%q,%q) err = %v", c[0], c[1], c[2], err)
		}
	}
	if s.CurrentProfile() != nil {
		t.Error("profile set despite validation failure")
	}
}

func TestAdminSetupIsRepeatable(t *testing.T) {
	repo := &fakeProfileRepo{}
	s := NewService(repo)

	first, err := s.AdminSetup("Marc", "marc_g", "marc@example.com", "@marcg")
	if err != nil {
		t.Fatalf("first admin setup failed: %v", err)
	}
	if first.Role != RoleAdmin {
		t.Errorf("role = %q, want admin", first.Role)
	}
	if first.Instagram != "@marcg" {
		t.Errorf("instagram = %q", first.Instagram)
	}

	// no blocking: a second submit succeeds without any demotion step
	second, err := s.AdminSetup("Léa", "lea_d", "lea@example.com", "")
	if err != nil {
		t.Fatalf("second admin setup failed: %v", err)
	}
	if second.Role != RoleAdmin {
		t.Errorf("second role = %q, want admin", second.Role)
	}
	if got := s.CurrentProfile(); got.Nickname != "lea_d" {
		t.Errorf("current profile = %+v", got)
	}
}

func TestCorruptStorageStartsAnonymous(t *testing.T) {
	repo := &fakeProfileRepo{loadErr: errors.New("disk on fire")}
	s := NewService(repo)
	if s.CurrentProfile() != nil {
		t.Error("expected anonymous session on storage error")
	}
}

func TestSaveErrorKeepsOldProfile(t *testing.T) {
	repo := &fakeProfileRepo{saveErr: errors.New("no space")}
	s := NewService(repo)
	if _, err := s.Register("Alex", "alex", "a@b.c"); err == nil {
		t.Fatal("expected save error to surface")
	}
	if s.CurrentProfile() != nil {
		t.Error("profile applied despite failed persistence")
	}
}

func TestEmbedURL(t *testing.T) {
	s := NewService(nil)

	embed, err := s.EmbedURL("rexy-paris")
	if err != nil {
		t.Fatalf("embed failed: %v", err)
	}
	if !strings.HasPrefix(embed, "https://w.soundcloud.com/player/?url=") {
		t.Errorf("embed url = %q", embed)
	}
	if !strings.Contains(embed, "https%3A%2F%2Fsoundcloud.com%2Fsissilaz%2Fgirly-groove") {
		t.Errorf("track url not escaped into embed: %q", embed)
	}
	if !strings.Contains(embed, "color=%2322d3ee") {
		t.Errorf("player color missing: %q", embed)
	}

	if _, err := s.EmbedURL("nope"); err != ErrClubNotFound {
		t.Errorf("unknown club err = %v", err)
	}
}

func TestStaticDirectory(t *testing.T) {
	s := NewService(nil)
	if len(s.Clubs()) != 4 {
		t.Errorf("clubs = %d, want 4", len(s.Clubs()))
	}
	if len(s.Residents()) != 4 {
		t.Errorf("residents = %d, want 4", len(s.Residents()))
	}
	club, err := s.ClubByID("djoon-paris")
	if err != nil || club.Name != "Djoon" {
		t.Errorf("ClubByID = %+v, %v", club, err)
	}

	invite := s.ShareInvite()
	if invite.Title != "Radio Electro Paris" || invite.URL == "" {
		t.Errorf("invite = %+v", invite)
	}
}
