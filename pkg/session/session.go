// Package session persists per-user UI preferences (theme, rows per page) in
// a cookie session. Preferences are read and written explicitly by handlers;
// there is no ambient global state.
package session

import (
	"net/http"
	"strconv"

	"github.com/Jleagle/session-go/session"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/seqdash/seqdash/pkg/config"
	"github.com/seqdash/seqdash/pkg/log"
)

const (
	SessionTheme       = "theme"
	SessionRowsPerPage = "rows-per-page"

	// Cookies
	SessionCookieName = "seqdash-session"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	defaultRowsPerPage = 50
)

func InitSession() {

	sessionInit := session.Init{}
	sessionInit.AuthenticationKey = config.C.SessionAuthentication
	sessionInit.EncryptionKey = config.C.SessionEncryption
	sessionInit.CookieName = SessionCookieName
	sessionInit.CookieOptions = sessions.Options{
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   2419200, // 30 days
		Path:     "/",
		Domain:   "",
		Secure:   config.IsProd(),
	}

	session.Initialise(sessionInit)
}

func Get(r *http.Request, key string) (value string) {

	val, err := session.Get(r, key)
	logSessionError(err)
	return val
}

func Set(r *http.Request, name string, value string) {

	err := session.Set(r, name, value)
	logSessionError(err)
}

func Save(w http.ResponseWriter, r *http.Request) {

	err := session.Save(w, r)
	logSessionError(err)
}

func GetTheme(r *http.Request) string {

	if Get(r, SessionTheme) == ThemeDark {
		return ThemeDark
	}

	return ThemeLight
}

func SetTheme(r *http.Request, theme string) {

	if theme != ThemeDark {
		theme = ThemeLight
	}

	Set(r, SessionTheme, theme)
}

func GetRowsPerPage(r *http.Request) int {

	i, err := strconv.Atoi(Get(r, SessionRowsPerPage))
	if err != nil || i <= 0 || i > 1000 {
		return defaultRowsPerPage
	}

	return i
}

func SetRowsPerPage(r *http.Request, rows int) {

	if rows > 0 && rows <= 1000 {
		Set(r, SessionRowsPerPage, strconv.Itoa(rows))
	}
}

func logSessionError(err error) {

	if err != nil {

		if val, ok := err.(securecookie.Error); ok {
			if val.IsUsage() || val.IsDecode() {
				log.InfoS(val.Error())
				return
			}
		}

		log.ErrS(err)
	}
}
