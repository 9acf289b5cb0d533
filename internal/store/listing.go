package store

import (
	"sync"

	"github.com/sakif/property-listings/internal/apperror"
	"github.com/sakif/property-listings/internal/model"
)

// ListingStore is an insertion-ordered in-memory collection of listings.
// IDs are assigned from a monotonically increasing counter; IDs of deleted
// listings are never reused.
type ListingStore struct {
	mu       sync.RWMutex
	listings []model.Listing
	nextID   int64
}

func NewListingStore() *ListingStore {
	return &ListingStore{nextID: 1}
}

// cloneListing deep-copies the fields that would otherwise share memory with
// the store (the photos slice and the two nullable string pointers).
func cloneListing(l model.Listing) model.Listing {
	out := l
	if l.Photos != nil {
		out.Photos = make([]model.Photo, len(l.Photos))
		copy(out.Photos, l.Photos)
	}
	if l.DevelopmentName != nil {
		v := *l.DevelopmentName
		out.DevelopmentName = &v
	}
	if l.MadeVisibleAt != nil {
		v := *l.MadeVisibleAt
		out.MadeVisibleAt = &v
	}
	return out
}

// List returns all listings in insertion order.
func (s *ListingStore) List() []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Listing, len(s.listings))
	for i := range s.listings {
		out[i] = cloneListing(s.listings[i])
	}
	return out
}

// GetByID returns the listing with the given ID, or apperror.ErrNotFound.
func (s *ListingStore) GetByID(id int64) (*model.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.listings {
		if s.listings[i].ID == id {
			listing := cloneListing(s.listings[i])
			return &listing, nil
		}
	}
	return nil, apperror.NotFound("Listing")
}

// Create assigns a fresh ID and appends the listing. Server-controlled flags
// (hasUserRequestedContact, hasUserSavedListing) start false, and the listing
// is not visible until madeVisibleAt is set through an update.
func (s *ListingStore) Create(req *model.CreateListingRequest) (*model.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing := model.Listing{
		ID:                      s.nextID,
		DevelopmentName:         req.DevelopmentName,
		PostTown:                req.PostTown,
		ShortenedPostCode:       req.ShortenedPostCode,
		Region:                  req.Region,
		PropertyType:            req.PropertyType,
		Bedrooms:                req.Bedrooms,
		Bathrooms:               req.Bathrooms,
		SizeSqFt:                req.SizeSqFt,
		PriceInCents:            req.PriceInCents,
		MinimumDepositInCents:   req.MinimumDepositInCents,
		EstimatedDepositInCents: req.EstimatedDepositInCents,
		RentalIncomeInCents:     req.RentalIncomeInCents,
		IsTenanted:              req.IsTenanted,
		IsCashOnly:              req.IsCashOnly,
		Description:             req.Description,
		Photos:                  req.Photos,
		IsFeatured:              req.IsFeatured,
		GrossYield:              req.GrossYield,
		IsShareSale:             req.IsShareSale,
		IsGetgroundCompany:      req.IsGetgroundCompany,
	}
	s.nextID++

	s.listings = append(s.listings, cloneListing(listing))
	return &listing, nil
}

// Update merges the fields present in req onto the stored listing. The ID is
// never touched. For developmentName and madeVisibleAt a Set flag with a nil
// value clears the field; an unset flag leaves it alone.
func (s *ListingStore) Update(id int64, req *model.UpdateListingRequest) (*model.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.listings {
		if s.listings[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperror.NotFound("Listing")
	}

	l := &s.listings[idx]

	if req.DevelopmentNameSet {
		l.DevelopmentName = req.DevelopmentName
	}
	if req.PostTown != nil {
		l.PostTown = *req.PostTown
	}
	if req.ShortenedPostCode != nil {
		l.ShortenedPostCode = *req.ShortenedPostCode
	}
	if req.Region != nil {
		l.Region = *req.Region
	}
	if req.PropertyType != nil {
		l.PropertyType = *req.PropertyType
	}
	if req.Bedrooms != nil {
		l.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		l.Bathrooms = *req.Bathrooms
	}
	if req.SizeSqFt != nil {
		l.SizeSqFt = *req.SizeSqFt
	}
	if req.PriceInCents != nil {
		l.PriceInCents = *req.PriceInCents
	}
	if req.MinimumDepositInCents != nil {
		l.MinimumDepositInCents = *req.MinimumDepositInCents
	}
	if req.EstimatedDepositInCents != nil {
		l.EstimatedDepositInCents = *req.EstimatedDepositInCents
	}
	if req.RentalIncomeInCents != nil {
		l.RentalIncomeInCents = *req.RentalIncomeInCents
	}
	if req.IsTenanted != nil {
		l.IsTenanted = *req.IsTenanted
	}
	if req.IsCashOnly != nil {
		l.IsCashOnly = *req.IsCashOnly
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.PhotosSet {
		l.Photos = req.Photos
	}
	if req.IsFeatured != nil {
		l.IsFeatured = *req.IsFeatured
	}
	if req.GrossYield != nil {
		l.GrossYield = *req.GrossYield
	}
	if req.IsShareSale != nil {
		l.IsShareSale = *req.IsShareSale
	}
	if req.IsGetgroundCompany != nil {
		l.IsGetgroundCompany = *req.IsGetgroundCompany
	}
	if req.MadeVisibleAtSet {
		l.MadeVisibleAt = req.MadeVisibleAt
	}

	listing := cloneListing(*l)
	return &listing, nil
}

// Delete removes and returns the listing with the given ID.
func (s *ListingStore) Delete(id int64) (*model.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.listings {
		if s.listings[i].ID == id {
			listing := s.listings[i]
			s.listings = append(s.listings[:i], s.listings[i+1:]...)
			return &listing, nil
		}
	}
	return nil, apperror.NotFound("Listing")
}
