package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/config"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/models"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/repository"
	"github.com/Ivanmonteiro-create/gerenciamentofamiliar.site/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// stubRepo overrides only the repository methods a test exercises; the
// embedded nil interface panics on anything unexpected.
type stubRepo struct {
	service.Repository
	cards map[string]*models.Card
}

func (s *stubRepo) CreateCard(card *models.Card) error {
	s.cards[card.ID] = card
	return nil
}

func (s *stubRepo) GetCard(id string) (*models.Card, error) {
	c, ok := s.cards[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return c, nil
}

func (s *stubRepo) CardInstallments(cardID string) ([]models.CardInstallment, error) {
	return nil, nil
}

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		AdminEmail:        "dona@casa.pt",
		AdminPasswordHash: string(hash),
	}
	repo := &stubRepo{cards: map[string]*models.Card{}}
	svc := service.NewService(repo, nil, log, cfg)
	h := NewHandler(svc, nil, nil, log)

	r := mux.NewRouter()
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/cards", h.CreateCard).Methods("POST")
	r.HandleFunc("/cards/{id}/summary", h.CardSummary).Methods("GET")
	return r
}

func TestLoginRoute(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email":"dona@casa.pt","password":"s3cret"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("valid login: status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "token") {
		t.Errorf("response missing token: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email":"dona@casa.pt","password":"wrong"}`)))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password: status = %d, want 401", w.Code)
	}
}

func TestCreateCardRejectsBadInput(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/cards",
		strings.NewReader(`{"name":"Visa","limit":0}`)))
	if w.Code != http.StatusBadRequest {
		t.Errorf("zero limit: status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/cards", strings.NewReader(`not json`)))
	if w.Code != http.StatusBadRequest {
		t.Errorf("garbage body: status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/cards",
		strings.NewReader(`{"name":"Visa","limit":1200}`)))
	if w.Code != http.StatusCreated {
		t.Errorf("valid card: status = %d, want 201", w.Code)
	}
}

func TestCardSummaryNotFound(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/cards/nope/summary?month=2025-06", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown card: status = %d, want 404", w.Code)
	}
}
