package sessions

import (
	"encoding/base64"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const (
	SessionName = "fixmart_session"
	userIDKey   = "user_id"
	roleKey     = "role"
)

var Store *sessions.CookieStore

// Init builds the cookie store from the base64 keys in .env, generating
// throwaway keys when they are unset (dev only; sessions won't survive a
// restart).
func Init(authKeyB64, encKeyB64 string) {
	authKey, err := base64.StdEncoding.DecodeString(authKeyB64)
	if err != nil || len(authKey) == 0 {
		authKey = securecookie.GenerateRandomKey(64)
	}
	encKey, err := base64.StdEncoding.DecodeString(encKeyB64)
	if err != nil || len(encKey) == 0 {
		encKey = securecookie.GenerateRandomKey(32)
	}

	Store = sessions.NewCookieStore(authKey, encKey)
	Store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}
}

func SetUser(w http.ResponseWriter, r *http.Request, userID, role string) error {
	session, _ := Store.Get(r, SessionName)
	session.Values[userIDKey] = userID
	session.Values[roleKey] = role
	return session.Save(r, w)
}

func GetUser(r *http.Request) (userID, role string, ok bool) {
	session, err := Store.Get(r, SessionName)
	if err != nil {
		return "", "", false
	}
	userID, _ = session.Values[userIDKey].(string)
	role, _ = session.Values[roleKey].(string)
	return userID, role, userID != ""
}

func Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := Store.Get(r, SessionName)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
