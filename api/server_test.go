package api

import (
	"testing"

	"github.com/bruxa61/PortfolioRAFA/database"
)

func TestNewServerRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := NewServer(database.Database{}, nil); err == nil {
		t.Fatal("NewServer accepted an empty JWT_SECRET")
	}
}
