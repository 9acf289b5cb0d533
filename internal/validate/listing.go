package validate

import (
	"fmt"
	"strings"

	"github.com/sakif/property-listings/internal/apperror"
	"github.com/sakif/property-listings/internal/model"
)

// Field-check helpers for listings. Each returns the first violated rule as a
// validation error; the label is the human-readable field name used in
// messages ("Post town"), the key is the JSON field name ("postTown").

func requiredListingString(data map[string]any, key, label string) (string, error) {
	s, ok := asString(data[key])
	if !ok || strings.TrimSpace(s) == "" {
		return "", apperror.ValidationFailed(key, label+" is required and must be a string")
	}
	return strings.TrimSpace(s), nil
}

func nonNegativeNumber(data map[string]any, key, label string) (float64, error) {
	f, ok := asNumber(data[key])
	if !ok || f < 0 {
		return 0, apperror.ValidationFailed(key, label+" must be a non-negative number")
	}
	return f, nil
}

func centsAmount(data map[string]any, key, label string) (int64, error) {
	c, ok := asCents(data[key])
	if !ok {
		return 0, apperror.ValidationFailed(key, label+" must be a non-negative number")
	}
	return c, nil
}

func requiredBool(data map[string]any, key, label string) (bool, error) {
	b, ok := asBool(data[key])
	if !ok {
		return false, apperror.ValidationFailed(key, label+" must be a boolean")
	}
	return b, nil
}

// optionalBool defaults to false when the key is absent, but a present value
// must still be a real boolean.
func optionalBool(data map[string]any, key, label string) (bool, error) {
	raw, present := data[key]
	if !present {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, apperror.ValidationFailed(key, label+" must be a boolean")
	}
	return b, nil
}

// optionalTrimmedString handles developmentName's three-way input: absent or
// null yields nil, a string is trimmed (blank collapses to nil), anything
// else is a type error.
func optionalTrimmedString(raw any, present bool, key, label string) (*string, error) {
	if !present || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, apperror.ValidationFailed(key, label+" must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

// validatePhotos checks that raw is an array of photo objects, each with the
// four required URL/mime fields. Error messages carry the 1-based position of
// the first bad element.
func validatePhotos(raw any) ([]model.Photo, error) {
	elems, ok := raw.([]any)
	if !ok {
		return nil, apperror.ValidationFailed("photos", "Photos must be an array")
	}

	photos := make([]model.Photo, 0, len(elems))
	for i, elem := range elems {
		obj, _ := elem.(map[string]any)

		photo := model.Photo{}
		for _, field := range []struct {
			key string
			dst *string
		}{
			{"originalURL", &photo.OriginalURL},
			{"standardURL", &photo.StandardURL},
			{"thumbnailURL", &photo.ThumbnailURL},
			{"mimeType", &photo.MimeType},
		} {
			s, ok := asString(obj[field.key])
			if !ok || strings.TrimSpace(s) == "" {
				return nil, apperror.ValidationFailed("photos",
					fmt.Sprintf("Photo %d must have a valid %s", i+1, field.key))
			}
			*field.dst = s
		}
		photos = append(photos, photo)
	}
	return photos, nil
}

// CreateListing validates the payload for creating a listing and returns the
// normalized request, or the first violated rule. Checks run in a fixed
// order, so a payload with several problems always reports the same one.
func CreateListing(data map[string]any) (*model.CreateListingRequest, error) {
	req := &model.CreateListingRequest{}
	var err error

	if req.PostTown, err = requiredListingString(data, "postTown", "Post town"); err != nil {
		return nil, err
	}
	if req.ShortenedPostCode, err = requiredListingString(data, "shortenedPostCode", "Shortened post code"); err != nil {
		return nil, err
	}
	if req.Region, err = requiredListingString(data, "region", "Region"); err != nil {
		return nil, err
	}
	if req.PropertyType, err = requiredListingString(data, "propertyType", "Property type"); err != nil {
		return nil, err
	}

	if req.Bedrooms, err = nonNegativeNumber(data, "bedrooms", "Bedrooms"); err != nil {
		return nil, err
	}
	if req.Bathrooms, err = nonNegativeNumber(data, "bathrooms", "Bathrooms"); err != nil {
		return nil, err
	}

	// Size is the one strictly positive number: a zero square foot property
	// is not a property.
	sizeSqFt, ok := asNumber(data["sizeSqFt"])
	if !ok || sizeSqFt <= 0 {
		return nil, apperror.ValidationFailed("sizeSqFt", "Size in square feet must be a positive number")
	}
	req.SizeSqFt = sizeSqFt

	if req.PriceInCents, err = centsAmount(data, "priceInCents", "Price in cents"); err != nil {
		return nil, err
	}
	if req.MinimumDepositInCents, err = centsAmount(data, "minimumDepositInCents", "Minimum deposit in cents"); err != nil {
		return nil, err
	}
	if req.EstimatedDepositInCents, err = centsAmount(data, "estimatedDepositInCents", "Estimated deposit in cents"); err != nil {
		return nil, err
	}
	if req.RentalIncomeInCents, err = centsAmount(data, "rentalIncomeInCents", "Rental income in cents"); err != nil {
		return nil, err
	}

	if req.IsTenanted, err = requiredBool(data, "isTenanted", "Is tenanted"); err != nil {
		return nil, err
	}
	if req.IsCashOnly, err = requiredBool(data, "isCashOnly", "Is cash only"); err != nil {
		return nil, err
	}

	if req.Description, err = requiredListingString(data, "description", "Description"); err != nil {
		return nil, err
	}

	if req.Photos, err = validatePhotos(data["photos"]); err != nil {
		return nil, err
	}

	if req.GrossYield, err = nonNegativeNumber(data, "grossYield", "Gross yield"); err != nil {
		return nil, err
	}

	if req.IsFeatured, err = optionalBool(data, "isFeatured", "Is featured"); err != nil {
		return nil, err
	}
	if req.IsShareSale, err = optionalBool(data, "isShareSale", "Is share sale"); err != nil {
		return nil, err
	}
	if req.IsGetgroundCompany, err = optionalBool(data, "isGetgroundCompany", "Is getground company"); err != nil {
		return nil, err
	}

	raw, present := data["developmentName"]
	if req.DevelopmentName, err = optionalTrimmedString(raw, present, "developmentName", "Development name"); err != nil {
		return nil, err
	}

	return req, nil
}

// UpdateListing validates a partial listing payload. Only keys present in the
// map make it into the result.
//
// developmentName and madeVisibleAt support an explicit null: submitting null
// (or a blank development name) clears the field, while omitting the key
// leaves it untouched. The Set flags on the result carry that distinction to
// the store.
func UpdateListing(data map[string]any) (*model.UpdateListingRequest, error) {
	req := &model.UpdateListingRequest{}
	var err error

	if raw, present := data["developmentName"]; present {
		req.DevelopmentNameSet = true
		if req.DevelopmentName, err = optionalTrimmedString(raw, present, "developmentName", "Development name"); err != nil {
			return nil, err
		}
	}

	for _, field := range []struct {
		key   string
		label string
		dst   **string
	}{
		{"postTown", "Post town", &req.PostTown},
		{"shortenedPostCode", "Shortened post code", &req.ShortenedPostCode},
		{"region", "Region", &req.Region},
		{"propertyType", "Property type", &req.PropertyType},
		{"description", "Description", &req.Description},
	} {
		raw, present := data[field.key]
		if !present {
			continue
		}
		s, ok := asString(raw)
		if !ok {
			return nil, apperror.ValidationFailed(field.key, field.label+" must be a string")
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, apperror.ValidationFailed(field.key, field.label+" cannot be empty")
		}
		*field.dst = &s
	}

	for _, field := range []struct {
		key   string
		label string
		dst   **float64
	}{
		{"bedrooms", "Bedrooms", &req.Bedrooms},
		{"bathrooms", "Bathrooms", &req.Bathrooms},
		{"grossYield", "Gross yield", &req.GrossYield},
	} {
		raw, present := data[field.key]
		if !present {
			continue
		}
		f, ok := raw.(float64)
		if !ok || f < 0 {
			return nil, apperror.ValidationFailed(field.key, field.label+" must be a non-negative number")
		}
		*field.dst = &f
	}

	if raw, present := data["sizeSqFt"]; present {
		f, ok := raw.(float64)
		if !ok || f <= 0 {
			return nil, apperror.ValidationFailed("sizeSqFt", "Size in square feet must be a positive number")
		}
		req.SizeSqFt = &f
	}

	for _, field := range []struct {
		key   string
		label string
		dst   **int64
	}{
		{"priceInCents", "Price in cents", &req.PriceInCents},
		{"minimumDepositInCents", "Minimum deposit in cents", &req.MinimumDepositInCents},
		{"estimatedDepositInCents", "Estimated deposit in cents", &req.EstimatedDepositInCents},
		{"rentalIncomeInCents", "Rental income in cents", &req.RentalIncomeInCents},
	} {
		raw, present := data[field.key]
		if !present {
			continue
		}
		c, ok := asCents(raw)
		if !ok {
			return nil, apperror.ValidationFailed(field.key, field.label+" must be a non-negative number")
		}
		*field.dst = &c
	}

	for _, field := range []struct {
		key   string
		label string
		dst   **bool
	}{
		{"isTenanted", "Is tenanted", &req.IsTenanted},
		{"isCashOnly", "Is cash only", &req.IsCashOnly},
		{"isFeatured", "Is featured", &req.IsFeatured},
		{"isShareSale", "Is share sale", &req.IsShareSale},
		{"isGetgroundCompany", "Is getground company", &req.IsGetgroundCompany},
	} {
		raw, present := data[field.key]
		if !present {
			continue
		}
		b, ok := raw.(bool)
		if !ok {
			return nil, apperror.ValidationFailed(field.key, field.label+" must be a boolean")
		}
		*field.dst = &b
	}

	if raw, present := data["photos"]; present {
		req.PhotosSet = true
		if req.Photos, err = validatePhotos(raw); err != nil {
			return nil, err
		}
	}

	if raw, present := data["madeVisibleAt"]; present {
		req.MadeVisibleAtSet = true
		if raw != nil {
			s, ok := raw.(string)
			if !ok {
				return nil, apperror.ValidationFailed("madeVisibleAt", "Made visible at must be a string")
			}
			if s != "" {
				req.MadeVisibleAt = &s
			}
		}
	}

	return req, nil
}
