package main

import (
	"errors"
	"log"
	"net/url"
	"sync"
)

var (
	ErrMissingProfileFields = errors.New("Tous les champs sont requis.")
	ErrClubNotFound         = errors.New("club not found")
)

type Service interface {
	Register(firstName, nickname, email string) (*UserProfile, error)
	AdminSetup(firstName, nickname, email, instagram string) (*UserProfile, error)
	CurrentProfile() *UserProfile
	Clubs() []Club
	ClubByID(id string) (*Club, error)
	EmbedURL(clubID string) (string, error)
	Residents() []ResidentDJ
	ShareInvite() ShareInvite
	close()
}

type ServiceImpl struct {
	profileRepo ProfileRepository

	mu      sync.Mutex
	profile *UserProfile
}

// NewService loads the stored profile once at startup. An unreadable or
// corrupt record starts the session anonymous instead of failing.
func NewService(profileRepo ProfileRepository) *ServiceImpl {
	s := &ServiceImpl{profileRepo: profileRepo}
	if profileRepo != nil {
		profile, err := profileRepo.LoadProfile()
		if err != nil {
			log.Println("could not restore profile, starting anonymous:", err)
		} else {
			s.profile = profile
		}
	}
	return s
}

func (s *ServiceImpl) Register(firstName, nickname, email string) (*UserProfile, error) {
	if firstName == "" || nickname == "" || email == "" {
		return nil, ErrMissingProfileFields
	}
	profile := &UserProfile{
		FirstName: firstName,
		Nickname:  nickname,
		Email:     email,
		Role:      RoleMember,
	}
	return profile, s.setProfile(profile)
}

// AdminSetup grants the admin role on submit alone. There is no
// credential check; the route is simply not linked anywhere public.
func (s *ServiceImpl) AdminSetup(firstName, nickname, email, instagram string) (*UserProfile, error) {
	if firstName == "" || nickname == "" || email == "" {
		return nil, ErrMissingProfileFields
	}
	profile := &UserProfile{
		FirstName: firstName,
		Nickname:  nickname,
		Email:     email,
		Instagram: instagram,
		Role:      RoleAdmin,
	}
	return profile, s.setProfile(profile)
}

func (s *ServiceImpl) setProfile(profile *UserProfile) error {
	if s.profileRepo != nil {
		if err := s.profileRepo.SaveProfile(*profile); err != nil {
			return err
		}
	}
	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	return nil
}

func (s *ServiceImpl) CurrentProfile() *UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

func (s *ServiceImpl) Clubs() []Club {
	return Clubs
}

func (s *ServiceImpl) ClubByID(id string) (*Club, error) {
	for i := range Clubs {
		if Clubs[i].ID == id {
			club := Clubs[i]
			return &club, nil
		}
	}
	return nil, ErrClubNotFound
}

// EmbedURL builds the SoundCloud player link for a club's exclusive mix.
func (s *ServiceImpl) EmbedURL(clubID string) (string, error) {
	club, err := s.ClubByID(clubID)
	if err != nil {
		return "", err
	}
	return "https://w.soundcloud.com/player/?url=" + url.QueryEscape(club.SoundcloudURL) +
		"&color=%2322d3ee&auto_play=true&hide_related=false&show_comments=true" +
		"&show_user=true&show_reposts=false&show_teaser=true&visual=true", nil
}

func (s *ServiceImpl) Residents() []ResidentDJ {
	return ResidentDJs
}

// ShareInvite is what clients without a native share dialog copy to the
// clipboard.
func (s *ServiceImpl) ShareInvite() ShareInvite {
	return ShareInvite{
		Title: "Radio Electro Paris",
		Text:  "Rejoins la communauté Radio Electro Paris ! Le son des DJ's de la capitale en direct.",
		URL:   SiteURL,
	}
}

func (s *ServiceImpl) close() {
	if s.profileRepo != nil {
		s.profileRepo.close()
	}
}
