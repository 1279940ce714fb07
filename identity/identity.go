package identity

import (
	"encoding/json"
	"os"

	"github.com/golang-jwt/jwt/v5"

	Logger "github.com/atelier-play/lookfeed/utils/log"
)

// UnknownUser is returned when no credential source yields a user id.
const UnknownUser = "unknown"

// Store supplies the current user's identifier to the feed session.
type Store interface {
	CurrentUserId() string
}

// StaticStore returns a fixed id. Used in tests and for anonymous sessions.
type StaticStore struct {
	UserId string
}

func (s StaticStore) CurrentUserId() string {
	if s.UserId == "" {
		return UnknownUser
	}
	return s.UserId
}

// CredentialStore resolves the user id with a layered fallback: the cached
// access token first (decoded, not verified - the id is display-state, not
// an authorization decision), then the cached profile record.
type CredentialStore struct {
	// Token is the cached JWT credential, may be empty.
	Token string
	// ProfileJson is the cached profile record ({"_id": ...}), may be empty.
	ProfileJson string
}

// NewCredentialStoreFromEnv reads the cached credential material from
// LOOKFEED_TOKEN and LOOKFEED_USER_DATA.
func NewCredentialStoreFromEnv() *CredentialStore {
	return &CredentialStore{
		Token:       os.Getenv("LOOKFEED_TOKEN"),
		ProfileJson: os.Getenv("LOOKFEED_USER_DATA"),
	}
}

func (s *CredentialStore) CurrentUserId() string {
	if id := UserIdFromToken(s.Token); id != "" {
		return id
	}
	if id := userIdFromProfile(s.ProfileJson); id != "" {
		return id
	}
	return UnknownUser
}

// UserIdFromToken decodes the "_id" claim out of a cached JWT without
// verifying its signature. Returns "" on any decode problem.
func UserIdFromToken(token string) string {
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		Logger.Log.Errorf("cannot decode cached credential: %v", err)
		return ""
	}

	id, ok := claims["_id"].(string)
	if !ok {
		return ""
	}
	return id
}

func userIdFromProfile(profileJson string) string {
	if profileJson == "" {
		return ""
	}
	var profile struct {
		Id string `json:"_id"`
	}
	if err := json.Unmarshal([]byte(profileJson), &profile); err != nil {
		Logger.Log.Errorf("cannot decode cached profile: %v", err)
		return ""
	}
	return profile.Id
}
