package ledger

import (
	"fmt"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/schedule"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Ledger categories used for synthesized entries
const (
	CategoryLoanCredit  = "Crédito/Empréstimo"
	CategoryLoanPayment = "Empréstimos"
	CategoryCardInvoice = "Cartão de Crédito"
)

// Appender is the one-way interface into the transactions ledger. The
// bridge only appends; it never reads entries back.
type Appender interface {
	AppendTransaction(t *models.Transaction) error
}

// Bridge mirrors schedule events into the transactions ledger. Posting is
// best-effort: a failed append is logged and reported to the caller, but
// the schedule mutation that triggered it stands.
type Bridge struct {
	store Appender
	log   *logrus.Logger
}

// NewBridge creates a ledger bridge over the given appender
func NewBridge(store Appender, log *logrus.Logger) *Bridge {
	return &Bridge{store: store, log: log}
}

// post appends the entry and reports whether it landed
func (b *Bridge) post(t *models.Transaction) bool {
	if err := b.store.AppendTransaction(t); err != nil {
		b.log.Errorf("Failed to post ledger entry %q: %v", t.Description, err)
		return false
	}
	b.log.Infof("Ledger entry posted: %s %s %.2f", t.Type, t.Description, t.Amount)
	return true
}

// PostDisbursement records the received principal as income dated at the
// loan's start month
func (b *Bridge) PostDisbursement(loan *models.Loan) bool {
	return b.post(&models.Transaction{
		ID:          uuid.NewString(),
		Date:        schedule.Month(loan.StartMonth).DateISO(1),
		Description: fmt.Sprintf("Crédito recebido – %s", loan.Name),
		Category:    CategoryLoanCredit,
		Type:        models.TypeIncome,
		Amount:      loan.Principal,
		Status:      models.StatusPaid,
	})
}

// PostLoanPayment records one settled loan installment as an expense
// dated inside its target period
func (b *Bridge) PostLoanPayment(loan *models.Loan, in *models.LoanInstallment) bool {
	return b.post(&models.Transaction{
		ID:          uuid.NewString(),
		Date:        schedule.Month(in.Month).DateISO(5),
		Description: fmt.Sprintf("Parcela empréstimo – %s (%d/%d)", loan.Name, in.Index, in.Count),
		Category:    CategoryLoanPayment,
		Type:        models.TypeExpense,
		Amount:      in.Payment,
		Status:      models.StatusPaid,
	})
}

// PostCardInstallment records one settled card installment as an expense
// dated at the card's due day inside the invoice month
func (b *Bridge) PostCardInstallment(card *models.Card, in *models.CardInstallment) bool {
	desc := in.Description
	if in.Count > 1 {
		desc = fmt.Sprintf("%s (%d/%d)", in.Description, in.Index, in.Count)
	}
	return b.post(&models.Transaction{
		ID:          uuid.NewString(),
		Date:        schedule.Month(in.Month).DateISO(card.DueDay),
		Description: fmt.Sprintf("Cartão %s – %s", card.Name, desc),
		Category:    CategoryCardInvoice,
		Type:        models.TypeExpense,
		Amount:      in.Amount,
		Status:      models.StatusPaid,
	})
}

// PostInvoicePayment records a whole card invoice as a single expense
func (b *Bridge) PostInvoicePayment(card *models.Card, month string, total float64) bool {
	return b.post(&models.Transaction{
		ID:          uuid.NewString(),
		Date:        schedule.Month(month).DateISO(card.DueDay),
		Description: fmt.Sprintf("Fatura cartão – %s (%s)", card.Name, month),
		Category:    CategoryCardInvoice,
		Type:        models.TypeExpense,
		Amount:      total,
		Status:      models.StatusPaid,
	})
}
