package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
)

func TestWriteLoanPlanCSV(t *testing.T) {
	plan := []models.LoanInstallment{
		{Month: "2025-06", Index: 1, Count: 2, Payment: 100.5, Interest: 10, Principal: 90.5, Balance: 90.5, Status: models.StatusPaid},
		{Month: "2025-07", Index: 2, Count: 2, Payment: 100.5, Interest: 10, Principal: 90.5, Balance: 0, Status: models.StatusPending},
	}
	var buf bytes.Buffer
	if err := WriteLoanPlanCSV(&buf, plan); err != nil {
		t.Fatalf("WriteLoanPlanCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "Mês;Parcela;Prestação;Juros;Amortização;Saldo Devedor;Status" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2025-06;1/2;100,50;10,00;90,50;90,50;Pago" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "2025-07;2/2;100,50;10,00;90,50;0,00;Pendente" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestWriteInvoiceCSV(t *testing.T) {
	card := &models.Card{Name: "Visa", CloseDay: 1, DueDay: 5}
	installments := []models.CardInstallment{
		{Description: "Notebook", Index: 2, Count: 10, Amount: 250, Status: models.StatusPending},
	}
	var buf bytes.Buffer
	if err := WriteInvoiceCSV(&buf, card, "2025-06", installments); err != nil {
		t.Fatalf("WriteInvoiceCSV: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Cartão;Visa",
		"Mês;2025-06",
		"Descrição;Parcela;Valor;Status",
		"Notebook;2/10;250,00;Pendente",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
