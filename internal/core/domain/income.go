package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeStatus is the collection status of an income entry.
type IncomeStatus string

const (
	IncomeStatusPending  IncomeStatus = "pendente"
	IncomeStatusReceived IncomeStatus = "recebido"
	IncomeStatusOverdue  IncomeStatus = "atrasado"
)

// Income represents money owed to or received by the user.
// InstallmentCount is only meaningful when Installments is true, but the
// store accepts either combination; entry forms own that consistency.
type Income struct {
	IncomeID         string          `json:"id"` // Primary key (UUID)
	Client           string          `json:"client"`
	ServiceType      string          `json:"serviceType"`
	Amount           decimal.Decimal `json:"amount"`
	Installments     bool            `json:"installments"`
	InstallmentCount *int            `json:"installmentCount,omitempty"`
	PaymentDates     []string        `json:"paymentDates"` // YYYY-MM-DD, at least one
	PaymentMethod    string          `json:"paymentMethod"`
	Observation      string          `json:"observation"`
	Status           IncomeStatus    `json:"status"`
}

// FirstPaymentDate returns the first scheduled payment date, or "" when the
// entry carries none (tolerated for imported records).
func (i Income) FirstPaymentDate() string {
	if len(i.PaymentDates) == 0 {
		return ""
	}
	return i.PaymentDates[0]
}
