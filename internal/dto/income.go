package dto

import (
	"github.com/maooe/finance_control_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest defines the data needed to record an income entry.
// InstallmentCount is optional and only meaningful when installments is true;
// the entry form owns that consistency, the server does not enforce it.
type CreateIncomeRequest struct {
	Client           string          `json:"client" binding:"required"`
	ServiceType      string          `json:"serviceType" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Installments     bool            `json:"installments"`
	InstallmentCount *int            `json:"installmentCount"`
	PaymentDates     []string        `json:"paymentDates" binding:"required,min=1,dive,ymd"`
	PaymentMethod    string          `json:"paymentMethod" binding:"required"`
	Observation      string          `json:"observation"`
	Status           string          `json:"status" binding:"required,oneof=pendente recebido atrasado"`
}

// ToDomain converts the request into a domain.Income. The id is left empty;
// the store assigns it.
func (r CreateIncomeRequest) ToDomain() domain.Income {
	return domain.Income{
		Client:           r.Client,
		ServiceType:      r.ServiceType,
		Amount:           r.Amount,
		Installments:     r.Installments,
		InstallmentCount: r.InstallmentCount,
		PaymentDates:     r.PaymentDates,
		PaymentMethod:    r.PaymentMethod,
		Observation:      r.Observation,
		Status:           domain.IncomeStatus(r.Status),
	}
}

// ListIncomesResponse wraps the income collection, most recent first.
type ListIncomesResponse struct {
	Incomes []domain.Income `json:"incomes"`
}
