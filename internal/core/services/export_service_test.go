package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/maooe/finance_control_app/internal/core/domain"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
	"github.com/maooe/finance_control_app/internal/core/services"
)

type ExportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockStateRepository
	store    mutableStore
	export   portssvc.ExportSvcFacade
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStateRepository)
	suite.store = services.NewStoreService(suite.mockRepo)
	fixed := time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)
	suite.export = services.NewExportService(suite.store, services.WithClock(func() time.Time { return fixed }))
}

func (suite *ExportServiceTestSuite) seedAccount() {
	suite.mockRepo.On("SaveAccounts", mock.Anything, mock.Anything).Return(nil).Once()
	_, err := suite.store.AddAccount(context.Background(), domain.Account{
		Description: "Rent",
		Bank:        "Nubank",
		PaymentDate: "2026-02-01",
		Status:      domain.AccountStatusOnTime,
		Value:       decimal.RequireFromString("1500.00"),
	})
	suite.Require().NoError(err)
}

// --- Test Cases ---

func (suite *ExportServiceTestSuite) TestExportCSV_RowFormat() {
	suite.seedAccount()

	data, filename, err := suite.export.ExportCSV(context.Background())
	suite.Require().NoError(err)
	suite.Equal("maooe-finance-export-15-02-2026.csv", filename)

	content := string(data)
	suite.True(strings.HasPrefix(content, "\ufeff"), "starts with a UTF-8 BOM")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(content, "\ufeff")), "\n")
	suite.Require().Len(lines, 2)
	suite.Equal("Módulo;Descrição;Fonte/Banco;Data Vencimento/Recebimento;Status Atual;Valor Bruto (R$)", lines[0])
	suite.Equal("SAÍDA (Conta);Rent;Nubank;2026-02-01;EM DIA;1500,00", lines[1])
}

func (suite *ExportServiceTestSuite) TestExportCSV_IncomeUsesFirstPaymentDate() {
	suite.mockRepo.On("SaveIncomes", mock.Anything, mock.Anything).Return(nil).Once()
	_, err := suite.store.AddIncome(context.Background(), domain.Income{
		Client:        "Cliente X",
		ServiceType:   "Consultoria",
		Amount:        decimal.RequireFromString("350.5"),
		PaymentDates:  []string{"2026-03-10", "2026-04-10"},
		PaymentMethod: "Pix",
		Status:        domain.IncomeStatusPending,
	})
	suite.Require().NoError(err)

	data, _, err := suite.export.ExportCSV(context.Background())
	suite.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	suite.Require().Len(lines, 2)
	suite.Equal("ENTRADA (Receita);Consultoria;Cliente X;2026-03-10;PENDENTE;350,50", lines[1])
}

func (suite *ExportServiceTestSuite) TestExportCSV_EmptyStoreStillHasHeader() {
	data, _, err := suite.export.ExportCSV(context.Background())
	suite.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	suite.Len(lines, 1)
}

func (suite *ExportServiceTestSuite) TestExportPDF_ProducesValidDocument() {
	suite.seedAccount()

	data, filename, err := suite.export.ExportPDF(context.Background())
	suite.Require().NoError(err)
	suite.Equal("relatorio-invest-maooe-15-02-2026.pdf", filename)
	suite.True(strings.HasPrefix(string(data), "%PDF"), "output is a PDF document")
	suite.Greater(len(data), 1000)
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
