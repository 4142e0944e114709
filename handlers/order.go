package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/tastybites/tastybites/database/dbhelper"
	"github.com/tastybites/tastybites/models"
	"github.com/tastybites/tastybites/templates"
)

// orderFromPath loads the order named by the {id} path var, writing the
// plain-text 404 the customer-facing pages use when it is missing.
func orderFromPath(w http.ResponseWriter, r *http.Request) (models.Order, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return models.Order{}, false
	}

	order, err := dbhelper.GetOrder(id)
	if err == models.ErrOrderNotFound {
		http.Error(w, "Order not found", http.StatusNotFound)
		return models.Order{}, false
	} else if err != nil {
		logrus.WithError(err).Error("failed to load order")
		http.Error(w, "failed to load order", http.StatusInternalServerError)
		return models.Order{}, false
	}
	return order, true
}

func OrderSuccess(w http.ResponseWriter, r *http.Request) {
	order, ok := orderFromPath(w, r)
	if !ok {
		return
	}

	data := struct{ Order models.Order }{Order: order}
	if err := templates.Render(w, "order_success.html", data); err != nil {
		logrus.WithError(err).Error("failed to render order confirmation")
	}
}

func Status(w http.ResponseWriter, r *http.Request) {
	order, ok := orderFromPath(w, r)
	if !ok {
		return
	}

	data := struct{ Order models.Order }{Order: order}
	if err := templates.Render(w, "status.html", data); err != nil {
		logrus.WithError(err).Error("failed to render status")
	}
}

// Pay renders the payment page with the UPI deep link and its QR code.
func Pay(w http.ResponseWriter, r *http.Request) {
	order, ok := orderFromPath(w, r)
	if !ok {
		return
	}

	// upi:// is not a scheme html/template trusts, so the link and the
	// QR endpoint URL are marked safe explicitly.
	upiURI := fmt.Sprintf("upi://pay?pa=hotel@upi&pn=TastyBites&am=%d", order.Total)
	data := struct {
		Order    models.Order
		UPIURI   template.URL
		UPILabel string
		QRURL    template.URL
	}{
		Order:    order,
		UPIURI:   template.URL(upiURI),
		UPILabel: upiURI,
		QRURL:    template.URL("/qrcode?data=" + url.QueryEscape(upiURI)),
	}
	if err := templates.Render(w, "pay.html", data); err != nil {
		logrus.WithError(err).Error("failed to render payment page")
	}
}

// SimulatePayment stands in for a real gateway callback: it marks the
// order paid and records the payment.
func SimulatePayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	err = dbhelper.RecordPayment(id)
	switch err {
	case nil:
		http.Redirect(w, r, "/status/"+id.String(), http.StatusSeeOther)
	case models.ErrOrderNotFound:
		http.Error(w, "Order not found", http.StatusNotFound)
	case models.ErrAlreadyPaid:
		http.Error(w, "Already paid", http.StatusBadRequest)
	default:
		logrus.WithError(err).Error("failed to record payment")
		http.Error(w, "failed to record payment", http.StatusInternalServerError)
	}
}
