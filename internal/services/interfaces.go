package services

import (
	"pfa/internal/models"
	"pfa/internal/portfolio"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// PortfolioServicer defines the contract for reading and replacing an
// owner's record set. Every method returns a freshly computed snapshot.
type PortfolioServicer interface {
	GetPortfolio(ownerID string) (*portfolio.Snapshot, error)
	ReplacePortfolio(ownerID string, records models.Records) (*portfolio.Snapshot, error)
	UpdateTaxProfile(ownerID string, status models.FilingStatus, state string) (*portfolio.Snapshot, error)
}
