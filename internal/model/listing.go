package model

// Photo is an image attached to a listing. Photos have no identity of their
// own — they live and die with the listing that holds them.
type Photo struct {
	OriginalURL  string `json:"originalURL"`
	StandardURL  string `json:"standardURL"`
	ThumbnailURL string `json:"thumbnailURL"`
	MimeType     string `json:"mimeType"`
}

// Listing represents a property listing.
//
// Monetary amounts are integer cents — never floats — so prices survive
// arithmetic and JSON round-trips exactly.
//
// DevelopmentName and MadeVisibleAt are pointers because "absent" is a
// distinct, meaningful state: a listing with no development name serializes
// as null, and MadeVisibleAt is null until the listing is made visible.
type Listing struct {
	ID                      int64   `json:"id"`
	DevelopmentName         *string `json:"developmentName"`
	PostTown                string  `json:"postTown"`
	ShortenedPostCode       string  `json:"shortenedPostCode"`
	Region                  string  `json:"region"`
	PropertyType            string  `json:"propertyType"`
	Bedrooms                float64 `json:"bedrooms"`
	Bathrooms               float64 `json:"bathrooms"`
	SizeSqFt                float64 `json:"sizeSqFt"`
	PriceInCents            int64   `json:"priceInCents"`
	MinimumDepositInCents   int64   `json:"minimumDepositInCents"`
	EstimatedDepositInCents int64   `json:"estimatedDepositInCents"`
	RentalIncomeInCents     int64   `json:"rentalIncomeInCents"`
	IsTenanted              bool    `json:"isTenanted"`
	IsCashOnly              bool    `json:"isCashOnly"`
	Description             string  `json:"description"`
	Photos                  []Photo `json:"photos"`
	IsFeatured              bool    `json:"isFeatured"`
	GrossYield              float64 `json:"grossYield"`
	HasUserRequestedContact bool    `json:"hasUserRequestedContact"`
	HasUserSavedListing     bool    `json:"hasUserSavedListing"`
	IsShareSale             bool    `json:"isShareSale"`
	IsGetgroundCompany      bool    `json:"isGetgroundCompany"`
	MadeVisibleAt           *string `json:"madeVisibleAt"`
}

// CreateListingRequest is the validated, normalized payload for creating a
// listing. Optional booleans have already been defaulted to false by the
// validator; DevelopmentName is nil when absent or blank.
type CreateListingRequest struct {
	DevelopmentName         *string
	PostTown                string
	ShortenedPostCode       string
	Region                  string
	PropertyType            string
	Bedrooms                float64
	Bathrooms               float64
	SizeSqFt                float64
	PriceInCents            int64
	MinimumDepositInCents   int64
	EstimatedDepositInCents int64
	RentalIncomeInCents     int64
	IsTenanted              bool
	IsCashOnly              bool
	Description             string
	Photos                  []Photo
	IsFeatured              bool
	GrossYield              float64
	IsShareSale             bool
	IsGetgroundCompany      bool
}

// UpdateListingRequest carries only the fields present in the update payload;
// nil pointers mean "leave unchanged".
//
// DevelopmentName and MadeVisibleAt need three states — absent, explicit
// null, and a value — so each pairs a pointer with a Set flag: the pointer is
// only consulted when the flag is true, and a nil pointer then means "clear
// the field".
type UpdateListingRequest struct {
	DevelopmentName         *string
	DevelopmentNameSet      bool
	PostTown                *string
	ShortenedPostCode       *string
	Region                  *string
	PropertyType            *string
	Bedrooms                *float64
	Bathrooms               *float64
	SizeSqFt                *float64
	PriceInCents            *int64
	MinimumDepositInCents   *int64
	EstimatedDepositInCents *int64
	RentalIncomeInCents     *int64
	IsTenanted              *bool
	IsCashOnly              *bool
	Description             *string
	Photos                  []Photo
	PhotosSet               bool
	IsFeatured              *bool
	GrossYield              *float64
	IsShareSale             *bool
	IsGetgroundCompany      *bool
	MadeVisibleAt           *string
	MadeVisibleAtSet        bool
}
