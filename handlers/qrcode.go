package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"
	qrcode "github.com/skip2/go-qrcode"
)

// QRCode encodes the data query param into a PNG.
func QRCode(w http.ResponseWriter, r *http.Request) {
	data := r.URL.Query().Get("data")
	if data == "" {
		data = "hello"
	}

	png, err := qrcode.Encode(data, qrcode.Medium, 256)
	if err != nil {
		logrus.WithError(err).Error("failed to encode qr code")
		http.Error(w, "failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
