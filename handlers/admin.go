package handlers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/tastybites/tastybites/database/dbhelper"
	"github.com/tastybites/tastybites/models"
	"github.com/tastybites/tastybites/templates"
)

func AdminDashboard(w http.ResponseWriter, r *http.Request) {
	items, err := dbhelper.ListAllItems()
	if err != nil {
		logrus.WithError(err).Error("failed to list menu items")
		http.Error(w, "failed to load menu", http.StatusInternalServerError)
		return
	}

	data := struct{ Items []models.MenuItem }{Items: items}
	if err := templates.Render(w, "admin_dashboard.html", data); err != nil {
		logrus.WithError(err).Error("failed to render admin dashboard")
	}
}

func AdminAddItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	price, _ := strconv.Atoi(r.PostForm.Get("price"))
	calories, _ := strconv.Atoi(r.PostForm.Get("calories"))
	stock, _ := strconv.Atoi(r.PostForm.Get("stock"))

	name := r.PostForm.Get("name")
	if name == "" {
		http.Error(w, "item name is required", http.StatusBadRequest)
		return
	}

	if _, err := dbhelper.CreateMenuItem(name, r.PostForm.Get("category"), price,
		r.PostForm.Get("diet"), calories, stock); err != nil {
		logrus.WithError(err).Error("failed to create menu item")
		http.Error(w, "failed to add item", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin_dashboard", http.StatusSeeOther)
}

func AdminDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/admin_dashboard", http.StatusSeeOther)
		return
	}

	if err := dbhelper.DeleteMenuItem(id); err != nil {
		logrus.WithError(err).Error("failed to delete menu item")
		http.Error(w, "failed to delete item", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin_dashboard", http.StatusSeeOther)
}

// AdminUpdateStock overwrites an item's stock level.
func AdminUpdateStock(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id, err := uuid.Parse(r.PostForm.Get("item_id"))
	if err != nil {
		http.Redirect(w, r, "/admin_dashboard", http.StatusSeeOther)
		return
	}

	stock, err := strconv.Atoi(r.PostForm.Get("stock"))
	if err != nil || stock < 0 {
		http.Error(w, "stock must be a non-negative number", http.StatusBadRequest)
		return
	}

	if err := dbhelper.SetStock(id, stock); err != nil {
		logrus.WithError(err).Error("failed to update stock")
		http.Error(w, "failed to update stock", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/admin_dashboard", http.StatusSeeOther)
}
