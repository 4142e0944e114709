package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tastybites/tastybites/database/dbhelper"
	"github.com/tastybites/tastybites/models"
	"github.com/tastybites/tastybites/templates"
)

// APIMenu returns in-stock items as JSON.
func APIMenu(w http.ResponseWriter, r *http.Request) {
	items, err := dbhelper.ListAvailableItems(models.MenuFilter{})
	if err != nil {
		logrus.WithError(err).Error("failed to list available items")
		http.Error(w, "failed to query menu", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// APIMenuFull returns every item regardless of stock.
func APIMenuFull(w http.ResponseWriter, r *http.Request) {
	items, err := dbhelper.ListAllItems()
	if err != nil {
		logrus.WithError(err).Error("failed to list all items")
		http.Error(w, "failed to query menu", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// Menu serves the browse/order form on GET and places an order on POST.
func Menu(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		placeOrder(w, r)
		return
	}
	renderMenu(w, r, "")
}

func renderMenu(w http.ResponseWriter, r *http.Request, formError string) {
	filter := models.MenuFilter{
		Diet:     r.URL.Query().Get("diet"),
		Category: r.URL.Query().Get("category"),
	}

	items, err := dbhelper.ListAvailableItems(filter)
	if err != nil {
		logrus.WithError(err).Error("failed to list available items")
		http.Error(w, "failed to query menu", http.StatusInternalServerError)
		return
	}

	selectedDiet := filter.Diet
	if selectedDiet == "" {
		selectedDiet = "All"
	}
	selectedCategory := filter.Category
	if selectedCategory == "" {
		selectedCategory = "All"
	}

	data := struct {
		Items            []models.MenuItem
		Categories       []string
		Diets            []string
		SelectedCategory string
		SelectedDiet     string
		Error            string
	}{
		Items:            items,
		Categories:       []string{"All", models.CategoryStarters, models.CategoryMains, models.CategoryDesserts},
		Diets:            []string{"All", models.DietVeg, models.DietNonVeg, models.DietJain, models.DietLowCalorie},
		SelectedCategory: selectedCategory,
		SelectedDiet:     selectedDiet,
		Error:            formError,
	}
	if err := templates.Render(w, "menu.html", data); err != nil {
		logrus.WithError(err).Error("failed to render menu")
	}
}

func placeOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	req := dbhelper.OrderRequest{
		CustomerName: strings.TrimSpace(r.PostForm.Get("name")),
		TableNo:      strings.TrimSpace(r.PostForm.Get("table")),
		Phone:        strings.TrimSpace(r.PostForm.Get("phone")),
		Quantities:   parseQuantities(r.PostForm),
	}
	if req.TableNo == "" {
		req.TableNo = "0"
	}

	orderID, err := dbhelper.PlaceOrder(req)
	switch {
	case err == models.ErrEmptyOrder:
		renderMenu(w, r, "Select at least one item")
		return
	case models.IsStockInsufficient(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		logrus.WithError(err).Error("failed to place order")
		http.Error(w, "failed to place order", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/order_success/"+orderID.String(), http.StatusSeeOther)
}

// parseQuantities collects qty_{itemID} form fields. Non-numeric and
// negative values count as zero; ids that fail to parse are skipped.
func parseQuantities(form map[string][]string) map[uuid.UUID]int {
	quantities := make(map[uuid.UUID]int)
	for key, values := range form {
		if !strings.HasPrefix(key, "qty_") || len(values) == 0 {
			continue
		}
		id, err := uuid.Parse(strings.TrimPrefix(key, "qty_"))
		if err != nil {
			continue
		}
		qty, err := strconv.Atoi(strings.TrimSpace(values[0]))
		if err != nil || qty <= 0 {
			continue
		}
		quantities[id] = qty
	}
	return quantities
}
