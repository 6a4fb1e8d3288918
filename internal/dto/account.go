package dto

import (
	"github.com/maooe/finance_control_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account payable.
// Status values are the pt-BR labels used everywhere on the wire.
type CreateAccountRequest struct {
	Description   string          `json:"description" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	Type          string          `json:"type" binding:"required,oneof=Pessoal Empresarial"`
	PaymentDate   string          `json:"paymentDate" binding:"required,ymd"`
	Reminder      bool            `json:"reminder"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	Bank          string          `json:"bank" binding:"required"`
	Status        string          `json:"status" binding:"required,oneof='em dia' pago agendado 'em análise' 'em atraso' cancelado"`
	Value         decimal.Decimal `json:"value" binding:"required"`
}

// ToDomain converts the request into a domain.Account. The id is left empty;
// the store assigns it.
func (r CreateAccountRequest) ToDomain() domain.Account {
	return domain.Account{
		Description:   r.Description,
		Category:      r.Category,
		Type:          domain.AccountType(r.Type),
		PaymentDate:   r.PaymentDate,
		Reminder:      r.Reminder,
		PaymentMethod: r.PaymentMethod,
		Bank:          r.Bank,
		Status:        domain.AccountStatus(r.Status),
		Value:         r.Value,
	}
}

// ListAccountsResponse wraps the account collection, most recent first.
type ListAccountsResponse struct {
	Accounts []domain.Account `json:"accounts"`
}
