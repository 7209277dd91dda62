package menu

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// deleteLegacyStringID removes a dish whose _id was persisted as a plain
// string instead of an ObjectID. Only Delete consults it; drop this shim once
// the menuItems collection has been migrated to ObjectID keys.
func (s *Store) deleteLegacyStringID(ctx context.Context, id string) (bool, error) {
	res, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return false, fmt.Errorf("delete legacy menu item: %w", err)
	}
	return res.DeletedCount > 0, nil
}
