package repository

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/ahmetcoskunkizilkaya/mafia-backend/internal/models"
)

const accessCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxAccessCodeAttempts bounds the search for an unused code.
const maxAccessCodeAttempts = 10

// NewAccessCode returns a random code of models.AccessCodeLength characters.
func NewAccessCode() (string, error) {
	var b strings.Builder
	b.Grow(models.AccessCodeLength)
	max := big.NewInt(int64(len(accessCodeAlphabet)))
	for i := 0; i < models.AccessCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate access code: %w", err)
		}
		b.WriteByte(accessCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// NormalizeAccessCode trims and upper-cases a user supplied code.
func NormalizeAccessCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
