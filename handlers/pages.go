package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/tastybites/tastybites/database/dbhelper"
	"github.com/tastybites/tastybites/models"
	"github.com/tastybites/tastybites/templates"
)

const specialsCount = 4

func Index(w http.ResponseWriter, r *http.Request) {
	specials, err := dbhelper.Specials(specialsCount)
	if err != nil {
		logrus.WithError(err).Error("failed to load specials")
		http.Error(w, "failed to load specials", http.StatusInternalServerError)
		return
	}

	data := struct{ Specials []models.MenuItem }{Specials: specials}
	if err := templates.Render(w, "index.html", data); err != nil {
		logrus.WithError(err).Error("failed to render index")
	}
}
