package services

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ReferenceGenerator issues human-readable booking references shaped
// PREFIX-YYYYMMDD-XXXXXX (issuance date in UTC, 6 random alphanumerics).
// The unique index on bookings.reference stays the final authority; the
// existence pre-check in UniqueReference only dodges the obvious
// collision.
type ReferenceGenerator struct {
	Prefix      string
	MaxAttempts int

	// overridable in tests to force suffix collisions
	suffixFn func() (string, error)
}

func NewReferenceGenerator(prefix string, maxAttempts int) *ReferenceGenerator {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		prefix = "GLA"
	}
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &ReferenceGenerator{
		Prefix:      prefix,
		MaxAttempts: maxAttempts,
		suffixFn:    randomSuffix,
	}
}

// randomSuffix draws 6 characters from crypto/rand. rand.Int with
// math/big keeps the draw free of modulo bias.
func randomSuffix() (string, error) {
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(referenceCharset)))
	for i := 0; i < 6; i++ {
		n, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(referenceCharset[n.Int64()])
	}
	return sb.String(), nil
}

// Generate produces one candidate reference.
func (g *ReferenceGenerator) Generate() (string, error) {
	suffix, err := g.suffixFn()
	if err != nil {
		return "", err
	}
	date := time.Now().UTC().Format("20060102")
	return g.Prefix + "-" + date + "-" + suffix, nil
}

// UniqueReference generates candidates and checks each against the
// persisted references, bounded at MaxAttempts. If every candidate
// collides it fails loudly with ErrReferenceExhausted rather than
// spinning forever.
func (g *ReferenceGenerator) UniqueReference(ctx context.Context, db *gorm.DB) (string, error) {
	for attempt := 0; attempt < g.MaxAttempts; attempt++ {
		candidate, err := g.Generate()
		if err != nil {
			return "", err
		}

		var count int64
		if err := db.WithContext(ctx).Model(&models.Booking{}).
			Where("reference = ?", candidate).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", ErrReferenceExhausted
}
