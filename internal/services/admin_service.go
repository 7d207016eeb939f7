package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/hirewire/employment-api/internal/dtos"
	"github.com/hirewire/employment-api/internal/models"
	"github.com/hirewire/employment-api/internal/store"
)

const (
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tokenLength   = 16
)

// AdminService registers admins and verifies their bearer tokens. The token
// is generated once at registration and never re-exposed afterwards; there is
// no expiry and no endpoint to revoke an admin.
type AdminService struct {
	Store *store.Store
}

func NewAdminService(s *store.Store) *AdminService {
	return &AdminService{Store: s}
}

// Register creates an admin with a fresh access token. adminEmail must be
// unique across registered admins; the internal id is the registration
// timestamp in Unix milliseconds.
func (s *AdminService) Register(req *dtos.RegisterAdminRequest) (models.Record, error) {
	token, err := generateAccessToken()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	created := models.Record{
		"id":          float64(now.UnixMilli()),
		"adminName":   req.AdminName,
		"adminEmail":  req.AdminEmail,
		"token":       token,
		"createdDate": now.Format(time.RFC3339),
	}
	err = s.Store.Update(models.Admins, func(admins []models.Record) ([]models.Record, error) {
		for _, rec := range admins {
			if email, ok := rec["adminEmail"].(string); ok && email == req.AdminEmail {
				return nil, ErrConflict
			}
		}
		return append(admins, created), nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// IsValidToken reports whether a bearer token belongs to a registered admin.
// The admin list is re-read from the datastore on every call; tokens minted
// after startup are honored immediately. A document without an admins
// collection simply has no valid tokens.
func (s *AdminService) IsValidToken(token string) (bool, error) {
	admins, err := s.Store.Read(models.Admins)
	if errors.Is(err, store.ErrUnknownCollection) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	for _, rec := range admins {
		if t, ok := rec["token"].(string); ok && t == token {
			return true, nil
		}
	}
	return false, nil
}

// generateAccessToken returns an opaque 16-character uppercase alphanumeric
// credential.
func generateAccessToken() (string, error) {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(buf), nil
}
