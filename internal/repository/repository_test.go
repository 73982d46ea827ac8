package repository

import (
	"database/sql"
	"errors"
	"os"
	"testing"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// testRepo connects to the database named by TEST_DB_CONN, or skips.
// The schema from scripts/schema.sql must be applied.
func testRepo(t *testing.T) *Repository {
	t.Helper()
	conn := os.Getenv("TEST_DB_CONN")
	if conn == "" {
		t.Skip("TEST_DB_CONN not set")
	}
	db, err := sql.Open("postgres", conn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db)
}

func TestCardRoundTrip(t *testing.T) {
	repo := testRepo(t)

	card := &models.Card{
		ID:       uuid.NewString(),
		Name:     "Visa Teste",
		Limit:    1500,
		Color:    "#2563eb",
		CloseDay: 1,
		DueDay:   5,
	}
	if err := repo.CreateCard(card); err != nil {
		t.Fatalf("CreateCard: %v", err)
	}
	defer repo.DeleteCard(card.ID)

	got, err := repo.GetCard(card.ID)
	if err != nil {
		t.Fatalf("GetCard: %v", err)
	}
	if got.Name != card.Name || got.Limit != card.Limit || got.DueDay != card.DueDay {
		t.Errorf("got %+v, want %+v", got, card)
	}
}

func TestCardCascadeDelete(t *testing.T) {
	repo := testRepo(t)

	card := &models.Card{ID: uuid.NewString(), Name: "Cascata", Limit: 1000, Color: "#2563eb", CloseDay: 1, DueDay: 5}
	if err := repo.CreateCard(card); err != nil {
		t.Fatalf("CreateCard: %v", err)
	}
	charge := &models.Charge{
		ID: uuid.NewString(), CardID: card.ID, Date: "2025-06-15",
		Description: "TV", Amount: 300, Installments: 3, FirstMonth: "2025-06",
	}
	installments := []models.CardInstallment{
		{ID: uuid.NewString(), ChargeID: charge.ID, CardID: card.ID, Index: 1, Count: 3, Month: "2025-06", Amount: 100, Status: models.StatusPending},
		{ID: uuid.NewString(), ChargeID: charge.ID, CardID: card.ID, Index: 2, Count: 3, Month: "2025-07", Amount: 100, Status: models.StatusPending},
		{ID: uuid.NewString(), ChargeID: charge.ID, CardID: card.ID, Index: 3, Count: 3, Month: "2025-08", Amount: 100, Status: models.StatusPending},
	}
	if err := repo.CreateCharge(charge, installments); err != nil {
		t.Fatalf("CreateCharge: %v", err)
	}

	if err := repo.DeleteCard(card.ID); err != nil {
		t.Fatalf("DeleteCard: %v", err)
	}
	if _, err := repo.GetCardInstallment(installments[0].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("installment survived the cascade: err = %v", err)
	}
	if _, err := repo.GetCard(card.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetCard after delete: err = %v, want ErrNotFound", err)
	}
}

func TestTransactionFilter(t *testing.T) {
	repo := testRepo(t)

	entries := []models.Transaction{
		{ID: uuid.NewString(), Date: "2025-06-01", Description: "Salário", Category: "Renda", Type: models.TypeIncome, Amount: 2000, Status: models.StatusPaid},
		{ID: uuid.NewString(), Date: "2025-06-10", Description: "Mercado", Category: "Alimentação", Type: models.TypeExpense, Amount: 180, Status: models.StatusPaid},
		{ID: uuid.NewString(), Date: "2025-07-01", Description: "Mercado", Category: "Alimentação", Type: models.TypeExpense, Amount: 150, Status: models.StatusPaid},
	}
	for i := range entries {
		if err := repo.AppendTransaction(&entries[i]); err != nil {
			t.Fatalf("AppendTransaction: %v", err)
		}
		defer repo.DeleteTransaction(entries[i].ID)
	}

	got, err := repo.ListTransactions(TransactionFilter{Month: "2025-06", Type: models.TypeExpense})
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	found := false
	for _, tx := range got {
		if tx.ID == entries[1].ID {
			found = true
		}
		if tx.ID == entries[0].ID || tx.ID == entries[2].ID {
			t.Errorf("filter leaked entry %s", tx.ID)
		}
	}
	if !found {
		t.Error("expected the June expense in the result")
	}
}

func TestLoanInstallmentStatus(t *testing.T) {
	repo := testRepo(t)

	loan := &models.Loan{
		ID: uuid.NewString(), Name: "Teste", Color: "#0ea5e9",
		Principal: 300, Months: 3, Rate: 0, StartMonth: "2025-06",
	}
	plan := []models.LoanInstallment{
		{ID: uuid.NewString(), LoanID: loan.ID, Index: 1, Count: 3, Month: "2025-06", Payment: 100, Interest: 0, Principal: 100, Balance: 200, Status: models.StatusPending},
	}
	if err := repo.CreateLoan(loan, plan); err != nil {
		t.Fatalf("CreateLoan: %v", err)
	}
	defer repo.DeleteLoan(loan.ID)

	if err := repo.SetLoanInstallmentStatus(plan[0].ID, models.StatusPaid); err != nil {
		t.Fatalf("SetLoanInstallmentStatus: %v", err)
	}
	got, err := repo.GetLoanInstallment(plan[0].ID)
	if err != nil {
		t.Fatalf("GetLoanInstallment: %v", err)
	}
	if got.Status != models.StatusPaid {
		t.Errorf("status = %q, want paid", got.Status)
	}
}
