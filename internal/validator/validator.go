// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"pfa/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("asset_type", validateAssetType)
		_ = v.RegisterValidation("income_type", validateIncomeType)
		_ = v.RegisterValidation("retirement_account_type", validateRetirementAccountType)
		_ = v.RegisterValidation("filing_status", validateFilingStatus)
		_ = v.RegisterValidation("us_state", validateUSState)
	}
}

// jsonFieldName reports fields by their wire name in validation errors.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func validateAssetType(fl validator.FieldLevel) bool {
	return models.AssetType(fl.Field().String()).Valid()
}

func validateIncomeType(fl validator.FieldLevel) bool {
	return models.IncomeType(fl.Field().String()).Valid()
}

func validateRetirementAccountType(fl validator.FieldLevel) bool {
	return models.RetirementAccountType(fl.Field().String()).Valid()
}

func validateFilingStatus(fl validator.FieldLevel) bool {
	return models.FilingStatus(fl.Field().String()).Valid()
}

func validateUSState(fl validator.FieldLevel) bool {
	return models.IsUSState(fl.Field().String())
}

// Describe turns a binding error into a message suitable for showing to the
// user verbatim, e.g. "assets[0].asset_type: must be a valid asset_type".
// Errors that are not validation failures are returned as-is.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fieldPath(fe), rule(fe)))
	}
	return strings.Join(msgs, "; ")
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func rule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "us_state":
		return "must be a two-letter US state code"
	}
	return "must be a valid " + fe.Tag()
}
