package store

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NewProjectID generates a human-readable project ID.
// Format: "PRJ-1234" (4-digit numeric suffix).
func NewProjectID() (string, error) {
	n, err := randInt(0, 9999)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PRJ-%04d", n), nil
}

func randInt(min, max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return 0, err
	}
	return min + n.Int64(), nil
}
