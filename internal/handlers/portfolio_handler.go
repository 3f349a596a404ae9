package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pfa/internal/errors"
	"pfa/internal/models"
	"pfa/internal/services"
)

// PortfolioHandler serves the owner's record set and its snapshot.
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService services.PortfolioServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// AssetRequest is one asset in a full-replace save.
type AssetRequest struct {
	Ticker              string           `json:"ticker" binding:"max=32"`
	AssetType           models.AssetType `json:"asset_type" binding:"required,asset_type"`
	Shares              float64          `json:"shares"`
	CostPerShare        float64          `json:"cost_per_share"`
	CostBasis           float64          `json:"cost_basis"`
	CurrentPrice        *float64         `json:"current_price"`
	RetirementAccountID *string          `json:"retirement_account_id"`
}

// IncomeRequest is one income stream in a full-replace save. A zero year
// means the filing year.
type IncomeRequest struct {
	IncomeType    models.IncomeType `json:"income_type" binding:"required,income_type"`
	MonthlyIncome float64           `json:"monthly_income"`
	YearlyIncome  float64           `json:"yearly_income"`
	HourlyWage    float64           `json:"hourly_wage"`
	HoursWorked   float64           `json:"hours_worked"`
	Year          int               `json:"year" binding:"omitempty,min=1900,max=2200"`
}

// DebtRequest is one debt in a full-replace save.
type DebtRequest struct {
	Name           string  `json:"name" binding:"max=255"`
	InitialAmount  float64 `json:"initial_amount"`
	AmountPaid     float64 `json:"amount_paid"`
	MonthlyPayment float64 `json:"monthly_payment"`
	InterestRate   float64 `json:"interest_rate"`
}

// PortfolioRequest is the full-replace save body. Derived fields sent back
// from a snapshot are ignored.
type PortfolioRequest struct {
	Assets             []AssetRequest             `json:"assets" binding:"dive"`
	Incomes            []IncomeRequest            `json:"incomes" binding:"dive"`
	Debts              []DebtRequest              `json:"debts" binding:"dive"`
	RetirementAccounts []models.RetirementAccount `json:"retirement_accounts" swaggertype:"array,object"`
}

// Records converts the request into stored form.
func (r PortfolioRequest) Records() models.Records {
	out := models.Records{
		Assets:             make([]models.Asset, 0, len(r.Assets)),
		Incomes:            make([]models.Income, 0, len(r.Incomes)),
		Debts:              make([]models.Debt, 0, len(r.Debts)),
		RetirementAccounts: r.RetirementAccounts,
	}
	for _, a := range r.Assets {
		out.Assets = append(out.Assets, models.Asset{
			Ticker:              a.Ticker,
			AssetType:           a.AssetType,
			Shares:              a.Shares,
			CostPerShare:        a.CostPerShare,
			CostBasis:           a.CostBasis,
			CurrentPrice:        a.CurrentPrice,
			RetirementAccountID: a.RetirementAccountID,
		})
	}
	for _, i := range r.Incomes {
		out.Incomes = append(out.Incomes, models.Income{
			IncomeType:    i.IncomeType,
			MonthlyIncome: i.MonthlyIncome,
			YearlyIncome:  i.YearlyIncome,
			HourlyWage:    i.HourlyWage,
			HoursWorked:   i.HoursWorked,
			Year:          i.Year,
		})
	}
	for _, d := range r.Debts {
		out.Debts = append(out.Debts, models.Debt{
			Name:           d.Name,
			InitialAmount:  d.InitialAmount,
			AmountPaid:     d.AmountPaid,
			MonthlyPayment: d.MonthlyPayment,
			InterestRate:   d.InterestRate,
		})
	}
	return out
}

// TaxInfoRequest updates the filing context.
type TaxInfoRequest struct {
	FilingStatus models.FilingStatus `json:"filing_status" binding:"required,filing_status"`
	State        string              `json:"state" binding:"required,us_state"`
}

// GetPortfolio returns the snapshot
// @Summary     Get portfolio
// @Description Get every record of the caller with derived totals and tax estimates. Requests without a token use the guest portfolio.
// @Tags        portfolio
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} portfolio.Snapshot "Portfolio snapshot"
// @Failure     401 {object} ErrorResponse "Invalid token"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	snap, err := h.portfolioService.GetPortfolio(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

// ReplacePortfolio saves the full record set
// @Summary     Replace portfolio
// @Description Replace all assets, incomes, debts and retirement accounts of the caller. Temporary retirement account IDs are replaced with permanent ones.
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PortfolioRequest true "Full record set"
// @Success     200 {object} portfolio.Snapshot "Updated snapshot"
// @Failure     400 {object} ErrorResponse "Malformed body"
// @Failure     401 {object} ErrorResponse "Invalid token"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /portfolio [put]
func (h *PortfolioHandler) ReplacePortfolio(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(apperrors.ErrValidation, err))
		return
	}

	snap, err := h.portfolioService.ReplacePortfolio(ownerID, req.Records())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}

// UpdateTaxInfo stores the filing context
// @Summary     Update tax profile
// @Description Set filing status and state, and return the snapshot with recomputed tax estimates.
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TaxInfoRequest true "Filing status and state"
// @Success     200 {object} portfolio.Snapshot "Updated snapshot"
// @Failure     400 {object} ErrorResponse "Invalid input or unsupported state"
// @Failure     401 {object} ErrorResponse "Invalid token"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /tax_info [put]
func (h *PortfolioHandler) UpdateTaxInfo(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TaxInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(apperrors.ErrInvalidInput, err))
		return
	}

	snap, err := h.portfolioService.UpdateTaxProfile(ownerID, req.FilingStatus, req.State)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}
