package main

// ProfileRepository is the only way in and out of the durable profile
// record. There is exactly one logical profile per deployment; Load
// returns nil when nobody has registered yet.
type ProfileRepository interface {
	SaveProfile(profile UserProfile) error
	LoadProfile() (*UserProfile, error)
	close()
}
