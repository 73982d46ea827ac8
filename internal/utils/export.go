package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
)

// CSV files keep the format the spreadsheets of the household expect:
// semicolon separator and decimal comma.

func decimalComma(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

func statusLabel(status string) string {
	if status == models.StatusPaid {
		return "Pago"
	}
	return "Pendente"
}

// WriteLoanPlanCSV renders a loan's amortization plan
func WriteLoanPlanCSV(w io.Writer, plan []models.LoanInstallment) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write([]string{"Mês", "Parcela", "Prestação", "Juros", "Amortização", "Saldo Devedor", "Status"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, in := range plan {
		rec := []string{
			in.Month,
			fmt.Sprintf("%d/%d", in.Index, in.Count),
			decimalComma(in.Payment),
			decimalComma(in.Interest),
			decimalComma(in.Principal),
			decimalComma(in.Balance),
			statusLabel(in.Status),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteInvoiceCSV renders one invoice month of a card
func WriteInvoiceCSV(w io.Writer, card *models.Card, month string, installments []models.CardInstallment) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	head := [][]string{
		{"Cartão", card.Name},
		{"Mês", month},
		{"Fechamento", fmt.Sprintf("%d", card.CloseDay)},
		{"Vencimento", fmt.Sprintf("%d", card.DueDay)},
		{},
		{"Descrição", "Parcela", "Valor", "Status"},
	}
	for _, rec := range head {
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}
	for _, in := range installments {
		rec := []string{
			in.Description,
			fmt.Sprintf("%d/%d", in.Index, in.Count),
			decimalComma(in.Amount),
			statusLabel(in.Status),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
