package testutil_test

import (
	"testing"

	"pfa/internal/errors"
	"pfa/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "tax_profiles", "retirement_accounts", "assets", "incomes", "debts"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDBIsolated(t *testing.T) {
	a := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, a)
	b := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, b)

	testutil.CreateTestUser(t, a)

	var count int64
	if err := b.Table("users").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected isolated database, found %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}

	records := testutil.SampleRecords(2026)
	if got := records.Assets[2].LinkedAccountID(); got != records.RetirementAccounts[0].ID {
		t.Errorf("expected VTI linked to %s, got %s", records.RetirementAccounts[0].ID, got)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrValidation, "custom message")
	testutil.AssertAppError(t, err, "VALIDATION_FAILED")
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}

func TestAssertMessageContains(t *testing.T) {
	err := errors.WithMessage(errors.ErrValidation, "assets[0]: ticker is required for STOCK assets")
	testutil.AssertMessageContains(t, err, "VALIDATION_FAILED", "ticker is required")
}
