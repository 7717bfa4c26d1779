// this file defines the data structures used throughout
package main

import "time"

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

type UserProfile struct {
	FirstName string   `json:"firstname" db:"firstname"`
	Nickname  string   `json:"nickname" db:"nickname"`
	Email     string   `json:"email" db:"email"`
	Instagram string   `json:"instagram,omitempty" db:"instagram"`
	Role      UserRole `json:"role" db:"role"`
}

type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type Post struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"author_id,omitempty"`
	Author       string    `json:"author"`
	Kind         string    `json:"type"`
	MediaURL     string    `json:"media_url"`
	Caption      string    `json:"caption"`
	Likes        int64     `json:"likes"`
	Comments     []Comment `json:"comments"`
	Timestamp    string    `json:"timestamp"`
	IsMemberPost bool      `json:"is_member_post"`
	IsAdminPost  bool      `json:"is_admin_post,omitempty"`
}

type Club struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	LogoURL       string   `json:"logo_url"`
	SoundcloudURL string   `json:"soundcloud_url"`
	InstagramURL  string   `json:"instagram_url,omitempty"`
	FacebookURL   string   `json:"facebook_url,omitempty"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
}

type ResidentDJ struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Specialty     string `json:"specialty"`
	Bio           string `json:"bio"`
	ImageURL      string `json:"image_url"`
	SoundcloudURL string `json:"soundcloud_url,omitempty"`
	InstagramURL  string `json:"instagram_url,omitempty"`
}

type Notification struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type ScheduleSlot struct {
	Time   string `json:"time"`
	Title  string `json:"title"`
	Type   string `json:"type"`
	Detail string `json:"detail"`
}

type ShareInvite struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}
