package main

// this file contains implementation of HTTP handlers - REST API

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

var (
	jwtSecret = []byte("secret")

	service       Service
	feed          *FeedStore
	player        *StreamController
	poller        *NowPlayingPoller
	guide         *ProgramGuide
	notifications *NotificationQueue
)

func NewHTTPRouter(_service Service, _feed *FeedStore, _player *StreamController,
	_poller *NowPlayingPoller, _guide *ProgramGuide, _notifications *NotificationQueue) *echo.Echo {
	service = _service
	feed = _feed
	player = _player
	poller = _poller
	guide = _guide
	notifications = _notifications

	r := echo.New()
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}\n",
	}))
	router := r.Group("/api")
	router.GET("/health", healthCheckHandler)
	router.POST("/auth/register", registerHandler)
	router.POST("/auth/admin-setup", adminSetupHandler)
	router.GET("/auth/me", currentProfileHandler)
	router.GET("/membership", membershipHandler)
	router.GET("/clubs", clubsHandler)
	router.GET("/clubs/:id/embed", clubEmbedHandler)
	router.GET("/residents", residentsHandler)
	router.GET("/schedule", scheduleHandler)
	router.GET("/share", shareHandler)
	router.GET("/notifications", notificationsHandler)

	// the feed is publicly readable and likeable; only the mutating
	// routes carry the JWT check, so no middleware on the /feed prefix
	router.GET("/feed", feedHandler)
	router.POST("/feed/like", likePostHandler)
	router.POST("/feed/new", newPostHandler, middleware.JWT(jwtSecret))
	router.POST("/feed/comment", newCommentHandler, middleware.JWT(jwtSecret))

	radioGroup := router.Group("/radio")
	{
		radioGroup.GET("/now_playing", radioNowPlayingHandler)
		radioGroup.POST("/toggle", radioToggleHandler)
		radioGroup.POST("/volume", radioVolumeHandler)
		radioGroup.POST("/mute", radioMuteHandler)
	}

	return r
}

func healthCheckHandler(c echo.Context) error {
	return c.String(http.StatusOK, "I am up and running!")
}

func registerHandler(c echo.Context) error {
	form := struct {
		FirstName string `form:"firstname" json:"firstname"`
		Nickname  string `form:"nickname" json:"nickname"`
		Email     string `form:"email" json:"email"`
	}{}
	if err := c.Bind(&form); err != nil {
		return c.String(http.StatusBadRequest, "Missing form data")
	}

	profile, err := service.Register(form.FirstName, form.Nickname, form.Email)
	if err != nil {
		return errorResponse(c, err)
	}

	t, err := signProfileToken(profile)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"profile": profile,
		"token":   t,
	})
}

func adminSetupHandler(c echo.Context) error {
	form := struct {
		FirstName string `form:"firstname" json:"firstname"`
		Nickname  string `form:"nickname" json:"nickname"`
		Email     string `form:"email" json:"email"`
		Instagram string `form:"instagram" json:"instagram"`
	}{}
	if err := c.Bind(&form); err != nil {
		return c.String(http.StatusBadRequest, "Missing form data")
	}

	profile, err := service.AdminSetup(form.FirstName, form.Nickname, form.Email, form.Instagram)
	if err != nil {
		return errorResponse(c, err)
	}

	t, err := signProfileToken(profile)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"profile": profile,
		"token":   t,
	})
}

func signProfileToken(profile *UserProfile) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["nickname"] = profile.Nickname
	claims["role"] = string(profile.Role)
	claims["exp"] = time.Now().Add(time.Hour * 72).Unix()
	return token.SignedString(jwtSecret)
}

// currentProfileHandler restores the session the way the original read
// its saved profile at startup; null means anonymous.
func currentProfileHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"profile": service.CurrentProfile(),
	})
}

func membershipHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"codes":   SecretCodes,
		"contact": AdminEmail,
	})
}

func clubsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, service.Clubs())
}

func clubEmbedHandler(c echo.Context) error {
	embed, err := service.EmbedURL(c.Param("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"embed_url": embed,
	})
}

func residentsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, service.Residents())
}

func scheduleHandler(c echo.Context) error {
	current, live := guide.CurrentSlot()
	resp := echo.Map{
		"slots":         guide.Slots(),
		"minute_of_day": guide.MinuteOfDay(),
	}
	if live {
		resp["current"] = current
	}
	return c.JSON(http.StatusOK, resp)
}

func shareHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, service.ShareInvite())
}

func notificationsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, notifications.Entries())
}

func feedHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, feed.Posts())
}

func newPostHandler(c echo.Context) error {
	form := struct {
		Kind     string `form:"type" json:"type"`
		MediaURL string `form:"media_url" json:"media_url"`
		Caption  string `form:"caption" json:"caption"`
	}{}
	if err := c.Bind(&form); err != nil {
		return c.String(http.StatusBadRequest, "Missing form data")
	}

	profile := profileFromContext(c)
	post, err := feed.AddPost(profile, form.Kind, form.MediaURL, form.Caption)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, post)
}

func newCommentHandler(c echo.Context) error {
	form := struct {
		PostID string `form:"post_id" json:"post_id"`
		Text   string `form:"text" json:"text"`
	}{}
	if err := c.Bind(&form); err != nil || form.PostID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Missing post_id",
		})
	}

	profile := profileFromContext(c)
	comment, err := feed.AddComment(profile, form.PostID, form.Text)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, comment)
}

func likePostHandler(c echo.Context) error {
	form := struct {
		PostID string `form:"post_id" json:"post_id"`
	}{}
	if err := c.Bind(&form); err != nil || form.PostID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Missing post_id",
		})
	}

	likes, err := feed.Like(optionalProfileFromHeader(c), form.PostID)
	if err != nil {
		return errorResponse(c, err)
	}
	// the increment is the viewer's own, the stored count is untouched
	return c.JSON(http.StatusOK, echo.Map{
		"likes": likes,
		"liked": true,
	})
}

func radioNowPlayingHandler(c echo.Context) error {
	state := player.State()
	radioState := "idle"
	if state.Playing {
		radioState = "running"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"state":  radioState,
		"title":  poller.Title(),
		"player": state,
	})
}

func radioToggleHandler(c echo.Context) error {
	if _, err := player.Toggle(); err != nil {
		// playback failures are logged, never surfaced as actionable;
		// the returned state already reflects the failed start
		log.Println("toggle kept player stopped:", err)
	}
	return c.JSON(http.StatusOK, player.State())
}

func radioVolumeHandler(c echo.Context) error {
	form := struct {
		Volume float64 `form:"volume" json:"volume"`
	}{}
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Missing volume",
		})
	}
	player.SetVolume(form.Volume)
	return c.JSON(http.StatusOK, player.State())
}

func radioMuteHandler(c echo.Context) error {
	player.ToggleMute()
	return c.JSON(http.StatusOK, player.State())
}

func profileFromContext(c echo.Context) *UserProfile {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	return profileFromClaims(token.Claims.(jwt.MapClaims))
}

// optionalProfileFromHeader identifies actions that work anonymously too,
// like likes: a bad or absent token just means nobody to notify.
func optionalProfileFromHeader(c echo.Context) *UserProfile {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return nil
	}
	token, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return profileFromClaims(claims)
}

func profileFromClaims(claims jwt.MapClaims) *UserProfile {
	nickname, _ := claims["nickname"].(string)
	role, _ := claims["role"].(string)
	if nickname == "" {
		return nil
	}
	return &UserProfile{Nickname: nickname, Role: UserRole(role)}
}

func errorResponse(c echo.Context, err error) error {
	status := http.StatusBadRequest
	switch err {
	case ErrNotAdmin:
		status = http.StatusForbidden
	case ErrSignUpRequired:
		status = http.StatusUnauthorized
	case ErrPostNotFound, ErrClubNotFound:
		status = http.StatusNotFound
	}
	return c.JSON(status, echo.Map{
		"message": err.Error(),
	})
}
