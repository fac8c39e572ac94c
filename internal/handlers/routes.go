package handlers

import (
	"net/http"

	"github.com/ceylontrails/tourism-api/internal/auth"
	"github.com/ceylontrails/tourism-api/internal/config"
	"github.com/ceylontrails/tourism-api/internal/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type MessageResponse struct {
	Body struct {
		Message string `json:"message"`
	}
}

// newAPI wraps a chi router (or route group) in a huma API. Only the root
// API serves the OpenAPI documents; group APIs exist so route-group
// middleware actually applies to the operations registered on them.
func newAPI(r chi.Router, withDocs bool) huma.API {
	cfg := huma.DefaultConfig("Tourism Marketplace API", "1.0.0")
	cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	if !withDocs {
		cfg.OpenAPIPath = ""
		cfg.DocsPath = ""
		cfg.SchemasPath = ""
	}
	return humachi.New(r, cfg)
}

func created(o *huma.Operation) {
	o.DefaultStatus = http.StatusCreated
}

func secured(o *huma.Operation) {
	o.Security = []map[string][]string{{"bearerAuth": {}}}
}

func RegisterRoutes(
	r *chi.Mux,
	cfg *config.Config,
	authHandler *auth.AuthHandler,
	userHandler *UserHandler,
	hotelHandler *HotelHandler,
	vehicleHandler *VehicleHandler,
	packageHandler *PackageHandler,
	bookingHandler *BookingHandler,
	tourRequestHandler *TourRequestHandler,
) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", "Authorization"},
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Public routes
	api := newAPI(r, true)
	huma.Post(api, "/api/auth/register", authHandler.HandleRegister, created)
	huma.Post(api, "/api/auth/login", authHandler.HandleLogin)
	huma.Post(api, "/api/auth/forgot-password", authHandler.HandleForgotPassword)
	huma.Post(api, "/api/auth/reset-password", authHandler.HandleResetPassword)
	huma.Post(api, "/api/auth/google", authHandler.HandleGoogleSignIn)

	huma.Get(api, "/api/hotels", hotelHandler.HandleList)
	huma.Get(api, "/api/hotels/{id}", hotelHandler.HandleGet)
	huma.Get(api, "/api/vehicles", vehicleHandler.HandleList)
	huma.Get(api, "/api/vehicles/{id}", vehicleHandler.HandleGet)
	huma.Get(api, "/api/packages", packageHandler.HandleList)
	huma.Get(api, "/api/packages/{id}", packageHandler.HandleGet)
	huma.Post(api, "/api/tours/requests", tourRequestHandler.HandleCreate, created)

	// Any authenticated user
	r.Group(func(gr chi.Router) {
		gr.Use(authHandler.Authenticator)
		userAPI := newAPI(gr, false)
		huma.Get(userAPI, "/api/users/me", userHandler.HandleMe, secured)
	})

	// Tourists
	r.Group(func(gr chi.Router) {
		gr.Use(authHandler.Authenticator)
		gr.Use(auth.RequireRoles(models.RoleTourist))
		touristAPI := newAPI(gr, false)
		huma.Post(touristAPI, "/api/bookings", bookingHandler.HandleCreate, created, secured)
		huma.Get(touristAPI, "/api/bookings", bookingHandler.HandleListMine, secured)
		huma.Get(touristAPI, "/api/bookings/{id}", bookingHandler.HandleGet, secured)
	})

	// Hotel owners
	r.Group(func(gr chi.Router) {
		gr.Use(authHandler.Authenticator)
		gr.Use(auth.RequireRoles(models.RoleHotelOwner))
		ownerAPI := newAPI(gr, false)
		huma.Post(ownerAPI, "/api/hotels", hotelHandler.HandleCreate, created, secured)
	})

	// Transport owners
	r.Group(func(gr chi.Router) {
		gr.Use(authHandler.Authenticator)
		gr.Use(auth.RequireRoles(models.RoleTransportOwner))
		ownerAPI := newAPI(gr, false)
		huma.Post(ownerAPI, "/api/vehicles", vehicleHandler.HandleCreate, created, secured)
	})

	// Admins
	r.Group(func(gr chi.Router) {
		gr.Use(authHandler.Authenticator)
		gr.Use(auth.RequireRoles(models.RoleAdmin))
		adminAPI := newAPI(gr, false)
		huma.Get(adminAPI, "/api/hotels/pending", hotelHandler.HandlePending, secured)
		huma.Put(adminAPI, "/api/hotels/{id}/approve", hotelHandler.HandleApprove, secured)
		huma.Get(adminAPI, "/api/transports/pending", vehicleHandler.HandlePending, secured)
		huma.Put(adminAPI, "/api/transports/{id}/approve", vehicleHandler.HandleApprove, secured)
		huma.Get(adminAPI, "/api/tours/requests", tourRequestHandler.HandleListPending, secured)
		huma.Get(adminAPI, "/api/tours/noStatusRequests", tourRequestHandler.HandleListAll, secured)
		huma.Get(adminAPI, "/api/tours/requests/{id}", tourRequestHandler.HandleGet, secured)
		huma.Put(adminAPI, "/api/tours/requests/{id}", tourRequestHandler.HandleApprove, secured)
		huma.Post(adminAPI, "/api/packages", packageHandler.HandleCreate, created, secured)
		huma.Put(adminAPI, "/api/packages/{id}", packageHandler.HandleUpdate, secured)
		huma.Delete(adminAPI, "/api/packages/{id}", packageHandler.HandleDelete, secured)
		huma.Put(adminAPI, "/api/bookings/{id}/status", bookingHandler.HandleUpdateStatus, secured)
		huma.Get(adminAPI, "/api/bookings/all", bookingHandler.HandleListAll, secured)
	})
}
