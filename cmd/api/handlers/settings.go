package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/seqdash/seqdash/pkg/session"
)

func SettingsRouter() http.Handler {

	r := chi.NewRouter()

	r.Get("/", settingsHandler)
	r.Post("/theme", settingsThemeHandler)
	r.Post("/rows", settingsRowsHandler)

	return r
}

func settingsHandler(w http.ResponseWriter, r *http.Request) {

	returnJSON(w, r, map[string]interface{}{
		"theme":       session.GetTheme(r),
		"rowsPerPage": session.GetRowsPerPage(r),
	})
}

func settingsThemeHandler(w http.ResponseWriter, r *http.Request) {

	session.SetTheme(r, r.PostFormValue("theme"))
	session.Save(w, r)

	settingsHandler(w, r)
}

func settingsRowsHandler(w http.ResponseWriter, r *http.Request) {

	rows, err := strconv.Atoi(r.PostFormValue("rows"))
	if err == nil {
		session.SetRowsPerPage(r, rows)
		session.Save(w, r)
	}

	settingsHandler(w, r)
}
