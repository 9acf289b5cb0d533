package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sakif/property-listings/internal/apperror"
	"github.com/sakif/property-listings/internal/store"
	"github.com/sakif/property-listings/internal/validate"
)

// ListingHandler serves the CRUD endpoints under /api/listings.
type ListingHandler struct {
	store  *store.ListingStore
	logger *slog.Logger
}

func NewListingHandler(s *store.ListingStore, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{store: s, logger: logger}
}

// listingID parses the {id} path value. Listing IDs are numeric; a value
// that does not parse cannot match any record, so it reads as not found.
func listingID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, apperror.NotFound("Listing")
	}
	return id, nil
}

// HandleList returns all listings plus a count.
//
// HTTP: GET /api/listings
func (h *ListingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	listings := h.store.List()
	writeListData(w, listings, len(listings))
}

// HandleGetByID returns a single listing.
//
// HTTP: GET /api/listings/{id}
func (h *ListingHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := listingID(r)
	if err != nil {
		writeError(w, h.logger, err, "Failed to fetch listing")
		return
	}

	listing, err := h.store.GetByID(id)
	if err != nil {
		writeError(w, h.logger, err, "Failed to fetch listing")
		return
	}
	writeData(w, http.StatusOK, listing)
}

// HandleCreate validates the payload and inserts the listing.
//
// HTTP: POST /api/listings
func (h *ListingHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	data, err := decodeBody(r)
	if err != nil {
		writeError(w, h.logger, err, "Failed to create listing")
		return
	}

	req, err := validate.CreateListing(data)
	if err != nil {
		writeError(w, h.logger, err, "Failed to create listing")
		return
	}

	listing, err := h.store.Create(req)
	if err != nil {
		writeError(w, h.logger, err, "Failed to create listing")
		return
	}

	h.logger.Info("listing created",
		slog.Int64("id", listing.ID),
		slog.String("postTown", listing.PostTown),
	)
	writeData(w, http.StatusCreated, listing)
}

// HandleUpdate merges the fields present in the payload onto an existing
// listing. Omitted fields are left untouched; developmentName and
// madeVisibleAt can be cleared by submitting an explicit null.
//
// HTTP: PUT /api/listings/{id}
func (h *ListingHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := listingID(r)
	if err != nil {
		writeError(w, h.logger, err, "Failed to update listing")
		return
	}

	if _, err := h.store.GetByID(id); err != nil {
		writeError(w, h.logger, err, "Failed to update listing")
		return
	}

	data, err := decodeBody(r)
	if err != nil {
		writeError(w, h.logger, err, "Failed to update listing")
		return
	}

	req, err := validate.UpdateListing(data)
	if err != nil {
		writeError(w, h.logger, err, "Failed to update listing")
		return
	}

	listing, err := h.store.Update(id, req)
	if err != nil {
		writeError(w, h.logger, err, "Failed to update listing")
		return
	}

	h.logger.Info("listing updated", slog.Int64("id", listing.ID))
	writeData(w, http.StatusOK, listing)
}

// HandleDelete removes a listing and returns the removed record.
//
// HTTP: DELETE /api/listings/{id}
func (h *ListingHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := listingID(r)
	if err != nil {
		writeError(w, h.logger, err, "Failed to delete listing")
		return
	}

	listing, err := h.store.Delete(id)
	if err != nil {
		writeError(w, h.logger, err, "Failed to delete listing")
		return
	}

	h.logger.Info("listing deleted", slog.Int64("id", listing.ID))
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    listing,
		Message: "Listing deleted successfully",
	})
}
