package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	govalidator "github.com/go-playground/validator/v10"

	apperrors "pfa/internal/errors"
	"pfa/internal/middleware"
	"pfa/internal/validator"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// getOwnerID returns whose records the request reads and writes: the
// authenticated user, or the guest owner.
func getOwnerID(c *gin.Context) (string, error) {
	ownerID := c.GetString(middleware.OwnerIDKey)
	if ownerID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return ownerID, nil
}

// bindError maps a binding failure to an AppError. Field validation failures
// become validation errors with a readable message; malformed bodies are
// invalid input.
func bindError(sentinel *apperrors.AppError, err error) error {
	var verrs govalidator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.WithMessage(sentinel, validator.Describe(err))
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}
