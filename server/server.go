package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/tastybites/tastybites/handlers"
	"github.com/tastybites/tastybites/middlewares"
	"github.com/tastybites/tastybites/models"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes() *Server {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	// customer-facing pages
	router.HandleFunc("/", handlers.Index).Methods("GET")
	router.HandleFunc("/menu", handlers.Menu).Methods("GET", "POST")
	router.HandleFunc("/order_success/{id}", handlers.OrderSuccess).Methods("GET")
	router.HandleFunc("/status/{id}", handlers.Status).Methods("GET")
	router.HandleFunc("/pay/{id}", handlers.Pay).Methods("GET")
	router.HandleFunc("/qrcode", handlers.QRCode).Methods("GET")
	router.HandleFunc("/simulate_payment/{id}", handlers.SimulatePayment).Methods("POST")
	router.HandleFunc("/feedback/{id}", handlers.Feedback).Methods("GET", "POST")

	// staff auth
	router.HandleFunc("/cook_login", handlers.CookLogin).Methods("GET", "POST")
	router.HandleFunc("/admin_login", handlers.AdminLogin).Methods("GET", "POST")
	router.HandleFunc("/logout", handlers.Logout).Methods("GET")

	// cook only
	cook := router.NewRoute().Subrouter()
	cook.Use(middlewares.RequireRole(models.RoleCook))
	cook.HandleFunc("/cook_dashboard", handlers.CookDashboard).Methods("GET")
	cook.HandleFunc("/cook_update/{id}", handlers.CookUpdate).Methods("GET")
	cook.HandleFunc("/cook_restock", handlers.CookRestock).Methods("POST")

	// admin only
	admin := router.NewRoute().Subrouter()
	admin.Use(middlewares.RequireRole(models.RoleAdmin))
	admin.HandleFunc("/admin_dashboard", handlers.AdminDashboard).Methods("GET")
	admin.HandleFunc("/admin_add_item", handlers.AdminAddItem).Methods("POST")
	admin.HandleFunc("/admin_delete_item/{id}", handlers.AdminDeleteItem).Methods("POST")
	admin.HandleFunc("/admin_update_stock", handlers.AdminUpdateStock).Methods("POST")

	// JSON feeds
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/menu", handlers.APIMenu).Methods("GET")
	api.HandleFunc("/menu_full", handlers.APIMenuFull).Methods("GET")
	api.HandleFunc("/sales", handlers.APISales).Methods("GET")
	api.HandleFunc("/popular", handlers.APIPopular).Methods("GET")
	api.HandleFunc("/inventory", handlers.APIInventory).Methods("GET")
	api.HandleFunc("/orders_recent", handlers.APIOrdersRecent).Methods("GET")
	api.HandleFunc("/payments", handlers.APIPayments).Methods("GET")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              ":" + port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
