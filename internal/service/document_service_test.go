package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/docgen"
	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
)

// mockUserStore implements UserStore for testing
type mockUserStore struct {
	users map[uuid.UUID]*domain.User
}

func (m *mockUserStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.users[id], nil
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.users[user.ID] = user
	return nil
}

func newTestService() (*DocumentService, uuid.UUID) {
	userID := uuid.New()
	store := &mockUserStore{users: map[uuid.UUID]*domain.User{
		userID: {
			ID:       userID,
			Email:    "vlasnik@firma.mk",
			IsActive: true,
			CompanyProfile: domain.CompanyProfile{
				CompanyName: "Нек Смарт ДООЕЛ",
				Address:     "ул. Партизанска бр. 5, Битола",
			},
		},
	}}

	svc := NewDocumentService(store, docgen.NewRegistry())
	svc.now = func() time.Time { return time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC) }
	return svc, userID
}

func TestGenerateKnownDocument(t *testing.T) {
	svc, userID := newTestService()

	doc, err := svc.Generate(context.Background(), "employment-contract", map[string]any{
		"employeeName": "Ана Петрова",
		"salary":       float64(42000),
		"startDate":    "2026-04-01",
	}, userID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.HasSuffix(doc.Filename, ".docx") {
		t.Errorf("filename %q does not end in .docx", doc.Filename)
	}
	if !strings.Contains(doc.Filename, "Ана_Петрова") {
		t.Errorf("filename %q does not carry the employee name", doc.Filename)
	}
	if len(doc.Content) == 0 {
		t.Error("document content is empty")
	}
}

func TestGenerateUnknownDocumentType(t *testing.T) {
	svc, userID := newTestService()

	_, err := svc.Generate(context.Background(), "no-such-document", map[string]any{}, userID)
	if !errors.Is(err, ErrUnknownDocumentType) {
		t.Errorf("err = %v, want ErrUnknownDocumentType", err)
	}
}

func TestGenerateUnknownUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Generate(context.Background(), "employment-contract", map[string]any{}, uuid.New())
	if !errors.Is(err, ErrUnknownUser) {
		t.Errorf("err = %v, want ErrUnknownUser", err)
	}
}

func TestStringifyForm(t *testing.T) {
	got := stringifyForm(map[string]any{
		"text":      "Ана",
		"checked":   true,
		"unchecked": false,
		"amount":    float64(42000),
		"fraction":  2.5,
		"empty":     nil,
	})

	want := map[string]string{
		"text":      "Ана",
		"checked":   "true",
		"unchecked": "",
		"amount":    "42000",
		"fraction":  "2.5",
		"empty":     "",
	}

	for key, expected := range want {
		if got[key] != expected {
			t.Errorf("stringifyForm[%q] = %q, want %q", key, got[key], expected)
		}
	}
}
