package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdmehedi135712-tech/account-books/internal/application/dto"
	"github.com/mdmehedi135712-tech/account-books/internal/application/ledger"
	"github.com/mdmehedi135712-tech/account-books/internal/application/prefs"
	"github.com/mdmehedi135712-tech/account-books/internal/infrastructure/pdf"
	"github.com/mdmehedi135712-tech/account-books/pkg/currency"
)

// SummaryHandler maneja el reporte agregado de deudas (JSON y PDF).
type SummaryHandler struct {
	uc      *ledger.LedgerUseCase
	prefsUC *prefs.PreferenceUseCase
	pdfGen  *pdf.SummaryPDFGenerator
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *ledger.LedgerUseCase, prefsUC *prefs.PreferenceUseCase, pdfGen *pdf.SummaryPDFGenerator) *SummaryHandler {
	return &SummaryHandler{uc: uc, prefsUC: prefsUC, pdfGen: pdfGen}
}

// Summary GET /api/summary
func (h *SummaryHandler) Summary(c *fiber.Ctx) error {
	entries := h.uc.ListDueSummary()
	out := dto.SummaryResponse{
		TotalDue:       h.uc.GetTotalDue(),
		TotalCustomers: len(h.uc.ListCustomers("")),
		Entries:        make([]dto.DueSummaryEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, dto.DueSummaryEntryResponse{
			CustomerID: e.Customer.ID,
			Name:       e.Customer.Name,
			Due:        e.Due,
		})
	}
	return c.JSON(out)
}

// SummaryPDF GET /api/summary/pdf
func (h *SummaryHandler) SummaryPDF(c *fiber.Ctx) error {
	code, err := h.prefsUC.Currency()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	entries := h.uc.ListDueSummary()
	doc, err := h.pdfGen.GenerateSummaryPDF(
		h.uc.GetTotalDue(),
		len(h.uc.ListCustomers("")),
		entries,
		currency.FormatterFor(code),
	)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="due-summary.pdf"`)
	return c.Send(doc)
}
