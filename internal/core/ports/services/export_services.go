package services

import (
	"context"
)

// ExportSvcFacade turns the entity store into downloadable artifacts. Both
// encoders are synchronous pure functions of the current accounts and
// incomes; the returned bytes are the complete file.
type ExportSvcFacade interface {
	ExportCSV(ctx context.Context) ([]byte, string, error)
	ExportPDF(ctx context.Context) ([]byte, string, error)
}
