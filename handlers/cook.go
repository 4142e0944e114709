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

const lowStockThreshold = 5

func CookDashboard(w http.ResponseWriter, r *http.Request) {
	orders, err := dbhelper.ListOrders()
	if err != nil {
		logrus.WithError(err).Error("failed to list orders")
		http.Error(w, "failed to load orders", http.StatusInternalServerError)
		return
	}

	low, err := dbhelper.LowStockItems(lowStockThreshold)
	if err != nil {
		logrus.WithError(err).Error("failed to list low-stock items")
		http.Error(w, "failed to load inventory", http.StatusInternalServerError)
		return
	}

	data := struct {
		Orders   []models.Order
		LowStock []models.MenuItem
	}{
		Orders:   orders,
		LowStock: low,
	}
	if err := templates.Render(w, "cook.html", data); err != nil {
		logrus.WithError(err).Error("failed to render cook dashboard")
	}
}

// CookUpdate marks an order Ready. Idempotent, no precondition check.
func CookUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Redirect(w, r, "/cook_dashboard", http.StatusSeeOther)
		return
	}

	if err := dbhelper.MarkOrderReady(id); err != nil {
		logrus.WithError(err).Error("failed to mark order ready")
		http.Error(w, "failed to update order", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/cook_dashboard", http.StatusSeeOther)
}

// CookRestock adds stock to an item. Missing ids and non-positive
// amounts are silently ignored.
func CookRestock(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id, err := uuid.Parse(r.PostForm.Get("item_id"))
	if err != nil {
		http.Redirect(w, r, "/cook_dashboard", http.StatusSeeOther)
		return
	}
	amount, _ := strconv.Atoi(r.PostForm.Get("amount"))

	if err := dbhelper.Restock(id, amount); err != nil {
		logrus.WithError(err).Error("failed to restock item")
		http.Error(w, "failed to restock", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/cook_dashboard", http.StatusSeeOther)
}
