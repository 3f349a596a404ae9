package models

import "errors"

// IncomeType represents how an income stream is composed.
type IncomeType string

const (
	IncomeTypeSalary IncomeType = "SALARY"
	IncomeTypeHourly IncomeType = "HOURLY"
)

// Valid reports whether t is a known income type.
func (t IncomeType) Valid() bool {
	return t == IncomeTypeSalary || t == IncomeTypeHourly
}

// Income represents one income stream for a tax year.
//
// SALARY streams use MonthlyIncome/YearlyIncome, HOURLY streams use
// HourlyWage/HoursWorked (weekly hours). The inactive pair is retained but
// ignored when aggregating.
type Income struct {
	Row
	IncomeType    IncomeType `gorm:"not null" json:"income_type"`
	MonthlyIncome float64    `gorm:"not null;default:0" json:"monthly_income"`
	YearlyIncome  float64    `gorm:"not null;default:0" json:"yearly_income"`
	HourlyWage    float64    `gorm:"not null;default:0" json:"hourly_wage"`
	HoursWorked   float64    `gorm:"not null;default:0" json:"hours_worked"`
	Year          int        `gorm:"not null;index" json:"year"`
}

// Validate checks the field constraints that do not depend on other records.
func (i Income) Validate() error {
	if !i.IncomeType.Valid() {
		return errors.New("income_type must be SALARY or HOURLY")
	}
	if i.Year <= 0 {
		return errors.New("income year must be a positive tax year")
	}
	return nil
}
