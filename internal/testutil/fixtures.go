package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"pfa/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// TestPassword is the plain-text password of every fixture user.
const TestPassword = "password123"

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// Float returns a pointer to f, for optional numeric fields.
func Float(f float64) *float64 {
	return &f
}

// String returns a pointer to s, for optional references.
func String(s string) *string {
	return &s
}

// SampleRecords returns a record set exercising every collection: a priced
// stock, a cash balance, a 401(k) holding one asset, a salary, and a car loan.
// The retirement account carries a temporary ID.
func SampleRecords(year int) models.Records {
	accountID := fmt.Sprintf("tmp-%d", nextID())
	return models.Records{
		Assets: []models.Asset{
			{Ticker: "QQQ", AssetType: models.AssetTypeStock, Shares: 10, CostPerShare: 400, CostBasis: 4000, CurrentPrice: Float(450)},
			{Ticker: "CASH", AssetType: models.AssetTypeCash, Shares: 5000},
			{Ticker: "VTI", AssetType: models.AssetTypeStock, Shares: 2, CostPerShare: 250, CostBasis: 500, RetirementAccountID: String(accountID)},
		},
		Incomes: []models.Income{
			{IncomeType: models.IncomeTypeSalary, MonthlyIncome: 10000, YearlyIncome: 120000, Year: year},
		},
		Debts: []models.Debt{
			{Name: "Car", InitialAmount: 20000, AmountPaid: 5000, MonthlyPayment: 400, InterestRate: 5.5},
		},
		RetirementAccounts: []models.RetirementAccount{
			{ID: accountID, Name: "Work 401k", AccountType: models.RetirementAccountK401, Contributions: models.Contributions{year - 1: 20000, year: 10000}},
		},
	}
}
