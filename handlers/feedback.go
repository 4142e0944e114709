package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/tastybites/tastybites/database/dbhelper"
	"github.com/tastybites/tastybites/templates"
)

// Feedback shows the rating form on GET and appends the feedback row on
// POST. The order id is not required to exist.
func Feedback(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		rating, err := strconv.Atoi(r.PostForm.Get("rating"))
		if err != nil {
			rating = 5
		}
		if err := dbhelper.AddFeedback(orderID, rating, r.PostForm.Get("comment")); err != nil {
			logrus.WithError(err).Error("failed to save feedback")
			http.Error(w, "failed to save feedback", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := struct{ OrderID uuid.UUID }{OrderID: orderID}
	if err := templates.Render(w, "feedback.html", data); err != nil {
		logrus.WithError(err).Error("failed to render feedback form")
	}
}
