package validation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/calmliming/menuflow/internal/apperr"
)

// BindAndValidate binds the JSON body into out and runs validation.
// Failures are returned as validation errors listing the offending fields.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate) error {
	if err := c.ShouldBindJSON(out); err != nil {
		return apperr.ValidationFields("invalid request body", decodeErrorFields(err))
	}

	if err := v.Struct(out); err != nil {
		return apperr.ValidationFields("validation failed", validationErrorsToMap(err))
	}
	return nil
}

// ObjectID parses a path id, rejecting anything that is not 24 hex chars.
func ObjectID(v *validatorv10.Validate, raw string) (primitive.ObjectID, error) {
	if err := v.Var(raw, "required,objectid"); err != nil {
		return primitive.NilObjectID, apperr.Validation("malformed id")
	}
	return primitive.ObjectIDFromHex(raw)
}

// decodeErrorFields describes a JSON decode failure without leaking Go type names.
func decodeErrorFields(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return map[string]string{typeErr.Field: "has the wrong type"}
	}
	return map[string]string{"body": "must be a valid JSON object"}
}

func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	var ve validatorv10.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = describe(fe)
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}

func describe(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "category":
		return "unknown category"
	case "objectid":
		return "malformed id"
	default:
		return fmt.Sprintf("failed %q", fe.Tag())
	}
}
