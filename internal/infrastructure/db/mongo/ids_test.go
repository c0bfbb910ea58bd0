package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/domain"
)

func TestParseObjectID_RoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()

	parsed, err := parseObjectID(oid.Hex())
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if parsed != oid {
		t.Fatalf("expected %s, got %s", oid.Hex(), parsed.Hex())
	}
}

func TestParseObjectID_Malformed(t *testing.T) {
	for _, id := range []string{"", "nope", "zzzzzzzzzzzzzzzzzzzzzzzz", "68a1b2c3d4e5f6a7b8c9"} {
		if _, err := parseObjectID(id); !errors.Is(err, domain.ErrInvalidID) {
			t.Fatalf("id %q: expected ErrInvalidID, got %v", id, err)
		}
	}
}
