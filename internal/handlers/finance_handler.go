package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/studiohair/salon-scheduler/internal/httperr"
	"github.com/studiohair/salon-scheduler/internal/httpresp"
	"github.com/studiohair/salon-scheduler/internal/usecase/finance"
)

type FinanceHandler struct {
	reports *finance.Reports
}

func NewFinanceHandler(reports *finance.Reports) *FinanceHandler {
	return &FinanceHandler{reports: reports}
}

// Summary responde GET /finance/summary?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *FinanceHandler) Summary(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		httperr.BadRequest(c, "missing_range", "Informe from e to no formato YYYY-MM-DD.")
		return
	}

	summary, err := h.reports.SummaryForRange(c.Request.Context(), from, to)
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_summarize", "Não foi possível gerar o resumo financeiro.")
		return
	}

	httpresp.OK(c, summary)
}

// Monthly responde GET /finance/monthly?year=YYYY
func (h *FinanceHandler) Monthly(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	records, err := h.reports.MonthlyForYear(c.Request.Context(), year)
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_summarize", "Não foi possível gerar a série mensal.")
		return
	}

	httpresp.List(c, records)
}
