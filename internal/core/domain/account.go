package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType distinguishes personal from business payables.
type AccountType string

const (
	AccountTypePersonal AccountType = "Pessoal"
	AccountTypeBusiness AccountType = "Empresarial"
)

// AccountStatus is the lifecycle status of an account payable.
// The values are the pt-BR labels used on the wire so that exported files,
// imported backups and remote snapshots stay compatible with existing data.
type AccountStatus string

const (
	AccountStatusOnTime     AccountStatus = "em dia"
	AccountStatusPaid       AccountStatus = "pago"
	AccountStatusScheduled  AccountStatus = "agendado"
	AccountStatusInAnalysis AccountStatus = "em análise"
	AccountStatusLate       AccountStatus = "em atraso"
	AccountStatusCancelled  AccountStatus = "cancelado"
)

// Account represents a single account payable.
// The value is set at creation and never updated; correcting a value means
// deleting the record and recreating it.
type Account struct {
	AccountID     string          `json:"id"` // Primary key (UUID)
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Type          AccountType     `json:"type"`
	PaymentDate   string          `json:"paymentDate"` // YYYY-MM-DD
	Reminder      bool            `json:"reminder"`
	PaymentMethod string          `json:"paymentMethod"`
	Bank          string          `json:"bank"`
	Status        AccountStatus   `json:"status"`
	Value         decimal.Decimal `json:"value"`
}
