package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sakif/property-listings/internal/handler"
	"github.com/sakif/property-listings/internal/model"
	"github.com/sakif/property-listings/internal/store"
)

func newListingHandler(t *testing.T) (*handler.ListingHandler, *store.ListingStore) {
	t.Helper()
	s := store.NewListingStore()
	return handler.NewListingHandler(s, testLogger()), s
}

func seedListing(t *testing.T, s *store.ListingStore) *model.Listing {
	t.Helper()
	listing, err := s.Create(&model.CreateListingRequest{
		PostTown:                "Manchester",
		ShortenedPostCode:       "M1",
		Region:                  "North West",
		PropertyType:            "Flat",
		Bedrooms:                2,
		Bathrooms:               1,
		SizeSqFt:                650,
		PriceInCents:            25000000,
		MinimumDepositInCents:   2500000,
		EstimatedDepositInCents: 3000000,
		RentalIncomeInCents:     120000,
		IsTenanted:              true,
		Description:             "Two-bed flat near the station",
		Photos:                  []model.Photo{},
		GrossYield:              5.8,
	})
	if err != nil {
		t.Fatalf("failed to seed listing: %v", err)
	}
	return listing
}

const validListingBody = `{
	"developmentName": "The Oaks",
	"postTown": " Manchester ",
	"shortenedPostCode": "M1",
	"region": "North West",
	"propertyType": "Flat",
	"bedrooms": 2,
	"bathrooms": 1,
	"sizeSqFt": 650,
	"priceInCents": 25000000,
	"minimumDepositInCents": 2500000,
	"estimatedDepositInCents": 3000000,
	"rentalIncomeInCents": 120000,
	"isTenanted": true,
	"isCashOnly": false,
	"description": "Two-bed flat near the station",
	"photos": [{
		"originalURL": "https://cdn.example.com/1/original.jpg",
		"standardURL": "https://cdn.example.com/1/standard.jpg",
		"thumbnailURL": "https://cdn.example.com/1/thumb.jpg",
		"mimeType": "image/jpeg"
	}],
	"grossYield": 5.8
}`

func TestListingHandler_HandleCreate(t *testing.T) {
	t.Run("valid payload returns 201", func(t *testing.T) {
		h, s := newListingHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/listings", bytes.NewBufferString(validListingBody))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.True(t, env.Success)

		var listing model.Listing
		assert.NoError(t, json.Unmarshal(env.Data, &listing))
		assert.Equal(t, int64(1), listing.ID)
		assert.Equal(t, "Manchester", listing.PostTown)
		assert.False(t, listing.IsFeatured)
		assert.Nil(t, listing.MadeVisibleAt)
		assert.Len(t, listing.Photos, 1)

		stored, err := s.GetByID(listing.ID)
		assert.NoError(t, err)
		assert.Equal(t, listing.PostTown, stored.PostTown)
	})

	t.Run("missing propertyType is a 400 naming the field", func(t *testing.T) {
		h, _ := newListingHandler(t)

		var data map[string]any
		assert.NoError(t, json.Unmarshal([]byte(validListingBody), &data))
		delete(data, "propertyType")
		body, _ := json.Marshal(data)

		req := httptest.NewRequest(http.MethodPost, "/api/listings", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.False(t, env.Success)
		assert.Equal(t, "Property type is required and must be a string", env.Error)
	})

	t.Run("boolean sent as string is a 400", func(t *testing.T) {
		h, _ := newListingHandler(t)

		var data map[string]any
		assert.NoError(t, json.Unmarshal([]byte(validListingBody), &data))
		data["isTenanted"] = "false"
		body, _ := json.Marshal(data)

		req := httptest.NewRequest(http.MethodPost, "/api/listings", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		h.HandleCreate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Is tenanted must be a boolean", decodeEnvelope(t, rr).Error)
	})
}

func TestListingHandler_HandleList(t *testing.T) {
	h, s := newListingHandler(t)
	seedListing(t, s)
	seedListing(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	rr := httptest.NewRecorder()
	h.HandleList(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.True(t, env.Success)
	if assert.NotNil(t, env.Count) {
		assert.Equal(t, 2, *env.Count)
	}
}

func TestListingHandler_HandleGetByID(t *testing.T) {
	h, s := newListingHandler(t)
	created := seedListing(t, s)

	t.Run("found", func(t *testing.T) {
		id := strconv.FormatInt(created.ID, 10)
		req := httptest.NewRequest(http.MethodGet, "/api/listings/"+id, nil)
		req.SetPathValue("id", id)
		rr := httptest.NewRecorder()
		h.HandleGetByID(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unknown numeric id is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/listings/99", nil)
		req.SetPathValue("id", "99")
		rr := httptest.NewRecorder()
		h.HandleGetByID(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Listing not found", decodeEnvelope(t, rr).Error)
	})

	t.Run("non-numeric id is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/listings/abc", nil)
		req.SetPathValue("id", "abc")
		rr := httptest.NewRecorder()
		h.HandleGetByID(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListingHandler_HandleUpdate(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		h, s := newListingHandler(t)
		created := seedListing(t, s)
		id := strconv.FormatInt(created.ID, 10)

		body := `{"priceInCents": 30000000, "isFeatured": true}`
		req := httptest.NewRequest(http.MethodPut, "/api/listings/"+id, bytes.NewBufferString(body))
		req.SetPathValue("id", id)
		rr := httptest.NewRecorder()
		h.HandleUpdate(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var listing model.Listing
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &listing))
		assert.Equal(t, int64(30000000), listing.PriceInCents)
		assert.True(t, listing.IsFeatured)
		assert.Equal(t, created.PostTown, listing.PostTown)
	})

	t.Run("explicit null clears madeVisibleAt", func(t *testing.T) {
		h, s := newListingHandler(t)
		created := seedListing(t, s)
		id := strconv.FormatInt(created.ID, 10)

		// Set it first, then clear it
		setBody := `{"madeVisibleAt": "2026-09-01T12:00:00Z"}`
		req := httptest.NewRequest(http.MethodPut, "/api/listings/"+id, bytes.NewBufferString(setBody))
		req.SetPathValue("id", id)
		rr := httptest.NewRecorder()
		h.HandleUpdate(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		clearBody := `{"madeVisibleAt": null}`
		req = httptest.NewRequest(http.MethodPut, "/api/listings/"+id, bytes.NewBufferString(clearBody))
		req.SetPathValue("id", id)
		rr = httptest.NewRecorder()
		h.HandleUpdate(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var listing model.Listing
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, rr).Data, &listing))
		assert.Nil(t, listing.MadeVisibleAt)
	})

	t.Run("validation failure is a 400", func(t *testing.T) {
		h, s := newListingHandler(t)
		created := seedListing(t, s)
		id := strconv.FormatInt(created.ID, 10)

		body := `{"bedrooms": -1}`
		req := httptest.NewRequest(http.MethodPut, "/api/listings/"+id, bytes.NewBufferString(body))
		req.SetPathValue("id", id)
		rr := httptest.NewRecorder()
		h.HandleUpdate(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Bedrooms must be a non-negative number", decodeEnvelope(t, rr).Error)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		h, _ := newListingHandler(t)

		req := httptest.NewRequest(http.MethodPut, "/api/listings/42", bytes.NewBufferString(`{}`))
		req.SetPathValue("id", "42")
		rr := httptest.NewRecorder()
		h.HandleUpdate(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListingHandler_HandleDelete(t *testing.T) {
	h, s := newListingHandler(t)
	created := seedListing(t, s)
	id := strconv.FormatInt(created.ID, 10)

	req := httptest.NewRequest(http.MethodDelete, "/api/listings/"+id, nil)
	req.SetPathValue("id", id)
	rr := httptest.NewRecorder()
	h.HandleDelete(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.True(t, env.Success)
	assert.Equal(t, "Listing deleted successfully", env.Message)
	assert.Empty(t, s.List())
}
