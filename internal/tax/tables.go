package tax

import "pfa/internal/models"

// TableYear is the tax year the bracket tables below describe.
const TableYear = 2026

var federalSingle = Schedule{
	Deduction: 16100,
	Brackets: []Bracket{
		{UpTo: 12400, Rate: 0.10},
		{UpTo: 50400, Rate: 0.12},
		{UpTo: 105700, Rate: 0.22},
		{UpTo: 201775, Rate: 0.24},
		{UpTo: 256225, Rate: 0.32},
		{UpTo: 640600, Rate: 0.35},
		{Rate: 0.37},
	},
}

var federalJoint = Schedule{
	Deduction: 32200,
	Brackets: []Bracket{
		{UpTo: 24800, Rate: 0.10},
		{UpTo: 100800, Rate: 0.12},
		{UpTo: 211400, Rate: 0.22},
		{UpTo: 403550, Rate: 0.24},
		{UpTo: 512450, Rate: 0.32},
		{UpTo: 768700, Rate: 0.35},
		{Rate: 0.37},
	},
}

var federalSeparate = Schedule{
	Deduction: 16100,
	Brackets: []Bracket{
		{UpTo: 12400, Rate: 0.10},
		{UpTo: 50400, Rate: 0.12},
		{UpTo: 105700, Rate: 0.22},
		{UpTo: 201775, Rate: 0.24},
		{UpTo: 256225, Rate: 0.32},
		{UpTo: 384350, Rate: 0.35},
		{Rate: 0.37},
	},
}

var federalHeadOfHousehold = Schedule{
	Deduction: 24150,
	Brackets: []Bracket{
		{UpTo: 17700, Rate: 0.10},
		{UpTo: 67450, Rate: 0.12},
		{UpTo: 105700, Rate: 0.22},
		{UpTo: 201750, Rate: 0.24},
		{UpTo: 256200, Rate: 0.32},
		{UpTo: 640600, Rate: 0.35},
		{Rate: 0.37},
	},
}

var federal = map[models.FilingStatus]Schedule{
	models.FilingStatusSingle:                  federalSingle,
	models.FilingStatusMarriedFilingJointly:    federalJoint,
	models.FilingStatusMarriedFilingSeparately: federalSeparate,
	models.FilingStatusHeadOfHousehold:         federalHeadOfHousehold,
	models.FilingStatusQualifyingWidow:         federalJoint,
}

var californiaSingle = Schedule{
	Deduction: 5706,
	Brackets: []Bracket{
		{UpTo: 11079, Rate: 0.01},
		{UpTo: 26264, Rate: 0.02},
		{UpTo: 41452, Rate: 0.04},
		{UpTo: 57542, Rate: 0.06},
		{UpTo: 72724, Rate: 0.08},
		{UpTo: 371479, Rate: 0.093},
		{UpTo: 445771, Rate: 0.103},
		{UpTo: 742953, Rate: 0.113},
		{Rate: 0.123},
	},
	// Mental Health Services Tax
	SurchargeRate:      0.01,
	SurchargeThreshold: 1000000,
}

// Joint filers use the single schedule with doubled brackets and deduction.
// The surcharge threshold is not doubled.
var californiaJoint = californiaSingle.scaled(2)

// Head of household uses the single schedule until its own table is added.
var california = map[models.FilingStatus]Schedule{
	models.FilingStatusSingle:                  californiaSingle,
	models.FilingStatusMarriedFilingJointly:    californiaJoint,
	models.FilingStatusMarriedFilingSeparately: californiaSingle,
	models.FilingStatusHeadOfHousehold:         californiaSingle,
	models.FilingStatusQualifyingWidow:         californiaJoint,
}

var states = map[string]map[models.FilingStatus]Schedule{
	"CA": california,
}

// noIncomeTax lists states that levy no tax on wage income.
var noIncomeTax = map[string]bool{
	"AK": true, "FL": true, "NV": true, "NH": true, "SD": true,
	"TN": true, "TX": true, "WA": true, "WY": true,
}

// FICA parameters.
const (
	socialSecurityRate     = 0.062
	socialSecurityWageBase = 184500
	medicareRate           = 0.0145
	additionalMedicareRate = 0.009
)

var additionalMedicareThreshold = map[models.FilingStatus]float64{
	models.FilingStatusSingle:                  200000,
	models.FilingStatusHeadOfHousehold:         200000,
	models.FilingStatusQualifyingWidow:         200000,
	models.FilingStatusMarriedFilingJointly:    250000,
	models.FilingStatusMarriedFilingSeparately: 125000,
}
