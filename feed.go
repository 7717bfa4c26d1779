// this file owns the community feed: posts, their comments, and likes
package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotAdmin          = errors.New("Seuls les administrateurs peuvent publier des vidéos.")
	ErrSignUpRequired    = errors.New("Veuillez vous inscrire pour commenter.")
	ErrEmptyComment      = errors.New("Le commentaire ne peut pas être vide")
	ErrMissingPostFields = errors.New("Une légende et une URL de média sont requises.")
	ErrPostNotFound      = errors.New("post not found")
)

// Notifier receives the ephemeral UI messages raised by feed events.
type Notifier interface {
	Push(text string)
}

// FeedStore keeps the ordered post list in memory, most recent first.
// The HTTP surface makes it reachable from many goroutines, hence the lock.
type FeedStore struct {
	mu       sync.Mutex
	posts    []Post
	notifier Notifier
}

func NewFeedStore(seed []Post, notifier Notifier) *FeedStore {
	posts := make([]Post, len(seed))
	copy(posts, seed)
	return &FeedStore{
		posts:    posts,
		notifier: notifier,
	}
}

// Posts returns a snapshot of the feed. Comments are copied too so a
// caller can never alias the store's slices.
func (f *FeedStore) Posts() []Post {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Post, len(f.posts))
	copy(out, f.posts)
	for i := range out {
		comments := make([]Comment, len(out[i].Comments))
		copy(comments, out[i].Comments)
		out[i].Comments = comments
	}
	return out
}

func (f *FeedStore) AddPost(profile *UserProfile, kind, mediaURL, caption string) (*Post, error) {
	if profile == nil || profile.Role != RoleAdmin {
		return nil, ErrNotAdmin
	}
	if mediaURL == "" || caption == "" {
		return nil, ErrMissingPostFields
	}
	if kind != "video" {
		kind = "photo"
	}

	post := Post{
		ID:           uuid.New().String(),
		AuthorID:     profile.Nickname,
		Author:       profile.Nickname,
		Kind:         kind,
		MediaURL:     mediaURL,
		Caption:      caption,
		Likes:        0,
		Comments:     []Comment{},
		Timestamp:    "À l'instant",
		IsMemberPost: true,
		IsAdminPost:  true,
	}

	f.mu.Lock()
	f.posts = append([]Post{post}, f.posts...)
	f.mu.Unlock()
	return &post, nil
}

func (f *FeedStore) AddComment(profile *UserProfile, postID, text string) (*Comment, error) {
	if profile == nil {
		return nil, ErrSignUpRequired
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.posts {
		if f.posts[i].ID != postID {
			continue
		}
		// authorship is matched by nickname, so two people sharing a
		// nickname both get notified; kept as-is on purpose
		if f.posts[i].Author == profile.Nickname {
			f.notifyLocked(fmt.Sprintf("Nouveau commentaire sur votre post: \"%s...\"", clip(text, 20)))
		}
		comment := Comment{
			ID:        uuid.New().String(),
			Author:    profile.Nickname,
			Text:      text,
			Timestamp: "Maintenant",
		}
		f.posts[i].Comments = append(f.posts[i].Comments, comment)
		return &comment, nil
	}
	return nil, ErrPostNotFound
}

// Like is cosmetic: the stored count never changes, each viewer keeps
// its own optimistic increment client side.
func (f *FeedStore) Like(profile *UserProfile, postID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.posts {
		if f.posts[i].ID != postID {
			continue
		}
		if profile != nil && f.posts[i].Author == profile.Nickname {
			f.notifyLocked("Quelqu'un a aimé votre post !")
		}
		return f.posts[i].Likes, nil
	}
	return 0, ErrPostNotFound
}

func (f *FeedStore) notifyLocked(text string) {
	if f.notifier != nil {
		f.notifier.Push(text)
	}
}

func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
