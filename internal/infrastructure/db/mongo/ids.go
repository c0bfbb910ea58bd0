package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/domain"
)

// parseObjectID converts an opaque record id into its native ObjectID form.
// Ids minted by this backend are ObjectID hex strings; anything else fails
// with domain.ErrInvalidID before a query is ever issued.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}
