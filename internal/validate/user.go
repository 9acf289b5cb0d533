package validate

import (
	"regexp"
	"strings"

	"github.com/sakif/property-listings/internal/apperror"
	"github.com/sakif/property-listings/internal/model"
)

// emailPattern is deliberately loose: no whitespace, exactly one @, at least
// one dot after it. Real mailbox validation happens when you send mail, not
// here.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// normalizeEmail trims and lower-cases, then checks shape. Normalization runs
// first so "  ANN@X.COM " validates and stores as "ann@x.com".
func normalizeEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	return email, emailPattern.MatchString(email)
}

// CreateUser validates the payload for creating a user and returns the
// normalized request, or the first violated rule.
func CreateUser(data map[string]any) (*model.CreateUserRequest, error) {
	name, ok := asString(data["name"])
	if !ok || strings.TrimSpace(name) == "" {
		return nil, apperror.ValidationFailed("name", "Name is required and must be a string")
	}

	rawEmail, ok := asString(data["email"])
	if !ok || strings.TrimSpace(rawEmail) == "" {
		return nil, apperror.ValidationFailed("email", "Email is required and must be a string")
	}
	email, ok := normalizeEmail(rawEmail)
	if !ok {
		return nil, apperror.ValidationFailed("email", "Invalid email format")
	}

	return &model.CreateUserRequest{
		Name:  strings.TrimSpace(name),
		Email: email,
	}, nil
}

// UpdateUser validates a partial user payload. Only keys present in the map
// make it into the result; an absent key means "no change".
func UpdateUser(data map[string]any) (*model.UpdateUserRequest, error) {
	req := &model.UpdateUserRequest{}

	if raw, present := data["name"]; present {
		name, ok := asString(raw)
		if !ok {
			return nil, apperror.ValidationFailed("name", "Name must be a string")
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, apperror.ValidationFailed("name", "Name cannot be empty")
		}
		req.Name = &name
	}

	if raw, present := data["email"]; present {
		rawEmail, ok := asString(raw)
		if !ok {
			return nil, apperror.ValidationFailed("email", "Email must be a string")
		}
		email, ok := normalizeEmail(rawEmail)
		if !ok {
			return nil, apperror.ValidationFailed("email", "Invalid email format")
		}
		req.Email = &email
	}

	return req, nil
}
