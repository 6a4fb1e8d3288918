package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
	"github.com/maooe/finance_control_app/internal/utils"
)

// utf8BOM makes spreadsheet tools detect the encoding and render the
// pt-BR accents correctly.
const utf8BOM = "\ufeff"

// exportService implements the ExportSvcFacade interface. Both encoders are
// pure functions of the current accounts and incomes; the whole artifact is
// produced in memory.
type exportService struct {
	BaseService
	store portssvc.StoreSvcFacade
	// now is stubbed in tests to pin the generated-at date.
	now func() time.Time
}

// ExportServiceOption is a functional option for configuring the export service
type ExportServiceOption func(*exportService)

// WithClock overrides the time source used for filenames and headers.
func WithClock(now func() time.Time) ExportServiceOption {
	return func(s *exportService) {
		s.now = now
	}
}

// NewExportService creates a new export encoder service over store.
func NewExportService(store portssvc.StoreSvcFacade, options ...ExportServiceOption) portssvc.ExportSvcFacade {
	svc := &exportService{
		store: store,
		now:   time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure exportService implements the ExportSvcFacade interface
var _ portssvc.ExportSvcFacade = (*exportService)(nil)

// ExportCSV renders one row per account payable (tagged as expense) and one
// per income entry (tagged as revenue), semicolon-delimited with comma
// decimal separators, the way pt-BR spreadsheet tools expect.
func (s *exportService) ExportCSV(ctx context.Context) ([]byte, string, error) {
	snapshot := s.store.Snapshot(ctx)

	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	records := [][]string{
		{"Módulo", "Descrição", "Fonte/Banco", "Data Vencimento/Recebimento", "Status Atual", "Valor Bruto (R$)"},
	}
	for _, a := range snapshot.Accounts {
		records = append(records, []string{
			"SAÍDA (Conta)",
			a.Description,
			a.Bank,
			a.PaymentDate,
			strings.ToUpper(string(a.Status)),
			utils.FormatAmountCSV(a.Value),
		})
	}
	for _, i := range snapshot.Incomes {
		records = append(records, []string{
			"ENTRADA (Receita)",
			i.ServiceType,
			i.Client,
			i.FirstPaymentDate(),
			strings.ToUpper(string(i.Status)),
			utils.FormatAmountCSV(i.Amount),
		})
	}

	if err := w.WriteAll(records); err != nil {
		s.LogError(ctx, err, "Failed to encode CSV export")
		return nil, "", fmt.Errorf("failed to encode CSV: %w", err)
	}

	filename := fmt.Sprintf("maooe-finance-export-%s.csv", s.now().Format("02-01-2006"))
	return buf.Bytes(), filename, nil
}

// ExportPDF renders the consolidated report: summary totals, then one table
// per entity kind, with a footer on every page.
func (s *exportService) ExportPDF(ctx context.Context) ([]byte, string, error) {
	snapshot := s.store.Snapshot(ctx)
	dateStr := s.now().Format("02/01/2006")

	totalExpense := decimal.Zero
	for _, a := range snapshot.Accounts {
		totalExpense = totalExpense.Add(a.Value)
	}
	totalIncome := decimal.Zero
	for _, i := range snapshot.Incomes {
		totalIncome = totalIncome.Add(i.Amount)
	}
	balance := totalIncome.Sub(totalExpense)

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 8, tr("Invest maooe - Gestão Inteligente de Finanças"), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	// Header band in the maooe primary green.
	pdf.SetFillColor(0, 107, 63)
	pdf.Rect(0, 0, 210, 40, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(14, 20, "INVEST MAOOE")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(14, 30, tr("Relatório Consolidado de Investimentos e Despesas"))
	pdf.Text(150, 30, tr(fmt.Sprintf("Gerado em: %s", dateStr)))

	pdf.SetTextColor(30, 41, 59)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(14, 55, "Resumo Executivo")

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(14, 65, tr(fmt.Sprintf("Total de Receitas: R$ %s", utils.FormatAmountBRL(totalIncome))))
	pdf.Text(14, 72, tr(fmt.Sprintf("Total de Despesas: R$ %s", utils.FormatAmountBRL(totalExpense))))

	if balance.Sign() >= 0 {
		pdf.SetTextColor(0, 107, 63)
		pdf.Text(14, 79, tr(fmt.Sprintf("Saldo Líquido: R$ %s (Superavit)", utils.FormatAmountBRL(balance))))
	} else {
		pdf.SetTextColor(244, 63, 94)
		pdf.Text(14, 79, tr(fmt.Sprintf("Saldo Líquido: R$ %s (Deficit)", utils.FormatAmountBRL(balance))))
	}

	pdf.SetTextColor(30, 41, 59)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(14, 95, tr("Detalhamento de Contas a Pagar"))
	pdf.SetY(100)

	accountRows := make([][]string, 0, len(snapshot.Accounts))
	for _, a := range snapshot.Accounts {
		accountRows = append(accountRows, []string{
			a.Description,
			a.Bank,
			a.PaymentDate,
			strings.ToUpper(string(a.Status)),
			"R$ " + utils.FormatAmountBRL(a.Value),
		})
	}
	s.renderTable(pdf, tr,
		[]string{"Descrição", "Banco", "Vencimento", "Status", "Valor"},
		accountRows)

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr("Detalhamento de Recebíveis"), "", 1, "L", false, 0, "")

	incomeRows := make([][]string, 0, len(snapshot.Incomes))
	for _, i := range snapshot.Incomes {
		incomeRows = append(incomeRows, []string{
			i.Client,
			i.ServiceType,
			i.PaymentMethod,
			strings.ToUpper(string(i.Status)),
			"R$ " + utils.FormatAmountBRL(i.Amount),
		})
	}
	s.renderTable(pdf, tr,
		[]string{"Cliente/Fonte", "Serviço", "Forma", "Status", "Valor"},
		incomeRows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.LogError(ctx, err, "Failed to render PDF export")
		return nil, "", fmt.Errorf("failed to render PDF: %w", err)
	}

	filename := fmt.Sprintf("relatorio-invest-maooe-%s.pdf", s.now().Format("02-01-2006"))
	return buf.Bytes(), filename, nil
}

// renderTable draws a five-column table with a filled header row and
// alternating row backgrounds, starting at the current Y position.
func (s *exportService) renderTable(pdf *fpdf.Fpdf, tr func(string) string, header []string, rows [][]string) {
	colWidths := []float64{52, 36, 30, 30, 34}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(0, 107, 63)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetX(14)
	for i, h := range header {
		pdf.CellFormat(colWidths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(30, 41, 59)
	for rowIdx, row := range rows {
		fill := rowIdx%2 == 1
		pdf.SetFillColor(240, 250, 245)
		pdf.SetX(14)
		for i, cell := range row {
			pdf.CellFormat(colWidths[i], 6, tr(cell), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}
}
