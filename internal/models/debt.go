package models

// Debt represents a liability. InterestRate is a percentage.
type Debt struct {
	Row
	Name           string  `gorm:"not null;default:''" json:"name"`
	InitialAmount  float64 `gorm:"not null;default:0" json:"initial_amount"`
	AmountPaid     float64 `gorm:"not null;default:0" json:"amount_paid"`
	MonthlyPayment float64 `gorm:"not null;default:0" json:"monthly_payment"`
	InterestRate   float64 `gorm:"not null;default:0" json:"interest_rate"`
}
