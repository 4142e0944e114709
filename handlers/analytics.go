package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/tastybites/tastybites/database/dbhelper"
)

const (
	popularLimit = 10
	recentLimit  = 20
)

// chartSeries is the {labels, values} shape the dashboard charts consume.
type chartSeries struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

func APISales(w http.ResponseWriter, r *http.Request) {
	sales, err := dbhelper.SalesByDay()
	if err != nil {
		logrus.WithError(err).Error("failed to aggregate sales")
		http.Error(w, "failed to query sales", http.StatusInternalServerError)
		return
	}

	series := chartSeries{Labels: []string{}, Values: []int{}}
	for _, day := range sales {
		series.Labels = append(series.Labels, day.Date)
		series.Values = append(series.Values, day.Total)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(series)
}

func APIPopular(w http.ResponseWriter, r *http.Request) {
	counts, err := dbhelper.PopularItems(popularLimit)
	if err != nil {
		logrus.WithError(err).Error("failed to aggregate popular items")
		http.Error(w, "failed to query popular items", http.StatusInternalServerError)
		return
	}

	series := chartSeries{Labels: []string{}, Values: []int{}}
	for _, ic := range counts {
		series.Labels = append(series.Labels, ic.Name)
		series.Values = append(series.Values, ic.Count)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(series)
}

func APIInventory(w http.ResponseWriter, r *http.Request) {
	levels, err := dbhelper.InventoryLevels()
	if err != nil {
		logrus.WithError(err).Error("failed to query inventory")
		http.Error(w, "failed to query inventory", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(levels)
}

func APIOrdersRecent(w http.ResponseWriter, r *http.Request) {
	orders, err := dbhelper.RecentOrders(recentLimit)
	if err != nil {
		logrus.WithError(err).Error("failed to query recent orders")
		http.Error(w, "failed to query orders", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

func APIPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := dbhelper.RecentPayments(recentLimit)
	if err != nil {
		logrus.WithError(err).Error("failed to query recent payments")
		http.Error(w, "failed to query payments", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payments)
}
