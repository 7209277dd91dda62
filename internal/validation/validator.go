package validation

import (
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/calmliming/menuflow/internal/catalog"
)

// New returns a validator with the custom tags registered and field names
// reported by their json name.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("notblank", notBlank)
	_ = v.RegisterValidation("category", knownCategory)
	_ = v.RegisterValidation("objectid", objectID)

	return v
}

func notBlank(fl validatorv10.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func knownCategory(fl validatorv10.FieldLevel) bool {
	return catalog.IsKnown(fl.Field().String())
}

func objectID(fl validatorv10.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}
