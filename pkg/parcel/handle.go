package parcel

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jinzhu/copier"
	"github.com/tendant/simple-parcel/pkg/auth"
)

// Handle handles HTTP requests for parcels
type Handle struct {
	parcelService *ParcelService
}

// NewHandle creates a new parcel handler
func NewHandle(parcelService *ParcelService) *Handle {
	return &Handle{
		parcelService: parcelService,
	}
}

// RegisterRoutes registers the parcel routes. Both routes require a
// resolved identity; mount behind auth.Auth and auth.RequireAuth.
func (h *Handle) RegisterRoutes(r chi.Router) {
	r.Route("/parcels", func(r chi.Router) {
		r.Get("/{id}", h.GetParcel)
		r.Put("/{id}", h.UpdateParcel)
	})
}

// ParcelResponse is the wire representation of a parcel
type ParcelResponse struct {
	ID           int64      `json:"id"`
	Status       string     `json:"status"`
	Sender       string     `json:"sender"`
	Receipient   string     `json:"receipient"`
	Schedule     *time.Time `json:"schedule"`
	DropoffPerms *string    `json:"dropoffPerms"`
}

type errorDetail struct {
	Name   string  `json:"name"`
	Issues []Issue `json:"issues"`
}

type errorBody struct {
	Success bool        `json:"success"`
	Error   errorDetail `json:"error"`
}

// GetParcel handles the request to get a parcel by ID
func (h *Handle) GetParcel(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	p, err := h.parcelService.GetByID(r.Context(), id)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	renderParcel(w, r, p)
}

// UpdateParcel handles the request to partially update a parcel
func (h *Handle) UpdateParcel(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, auth.ErrorBody{Message: "Unauthorized", Ok: false})
		return
	}

	var payload map[string]any
	if err := render.DecodeJSON(r.Body, &payload); err != nil {
		renderValidationError(w, r, newShapeError([]Issue{{
			Code:    "invalid_body",
			Message: "unable to parse body",
		}}))
		return
	}

	fields, err := Validate(identity.Role, payload)
	if err != nil {
		var verr ValidationError
		if errors.As(err, &verr) {
			renderValidationError(w, r, verr)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	p, err := h.parcelService.Update(r.Context(), id, fields)
	if err != nil {
		renderServiceError(w, r, err)
		return
	}

	renderParcel(w, r, p)
}

// parseID reads the path id, which must itself be a positive integer.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		renderValidationError(w, r, newShapeError([]Issue{{
			Code:    "invalid_type",
			Message: "Expected positive integer, received string",
			Path:    "id",
		}}))
		return 0, false
	}
	return id, true
}

func renderParcel(w http.ResponseWriter, r *http.Request, p Parcel) {
	resp := ParcelResponse{}
	copier.Copy(&resp, &p)
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func renderServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var nfe NotFoundError
	if errors.As(err, &nfe) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorBody{
			Error: errorDetail{
				Name: "Not Found",
				Issues: []Issue{{
					Code:    "not_found",
					Message: nfe.Error(),
				}},
			},
		})
		return
	}

	slog.Error("Failed handling parcel request", "err", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func renderValidationError(w http.ResponseWriter, r *http.Request, verr ValidationError) {
	issues := verr.Issues
	if issues == nil {
		issues = []Issue{}
	}
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, errorBody{
		Error: errorDetail{
			Name:   verr.Name,
			Issues: issues,
		},
	})
}
