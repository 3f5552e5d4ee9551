package docgen

import (
	"strings"
	"testing"
	"time"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
)

var testNow = time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

func TestBuildContextMergeOrder(t *testing.T) {
	placeholders := []Placeholder{
		{Key: "companyName", Label: "Company Name", ProfileField: ProfileCompanyName},
		{Key: "companyTaxNumber", Label: "Company Tax Number", ProfileField: ProfileTaxNumber},
		{Key: "employeeName", Label: "Employee Name"},
	}
	profile := domain.CompanyProfile{CompanyName: "Нек Смарт ДООЕЛ"}

	ctx := BuildContext(placeholders, map[string]string{
		"companyName":  "Преименувана Фирма",
		"employeeName": "",
	}, profile, testNow)

	// Form value wins over the profile
	if got := ctx.Get("companyName"); got != "Преименувана Фирма" {
		t.Errorf("companyName = %q, want form value", got)
	}
	// Missing form value falls back to the profile — here the profile is
	// empty too, so the bracketed label stands in
	if got := ctx.Get("companyTaxNumber"); got != "[Company Tax Number]" {
		t.Errorf("companyTaxNumber = %q, want bracketed label", got)
	}
	if got := ctx.Get("employeeName"); got != "[Employee Name]" {
		t.Errorf("employeeName = %q, want bracketed label", got)
	}
}

func TestBuildContextProfileFallback(t *testing.T) {
	placeholders := []Placeholder{
		{Key: "companyAddress", Label: "Company Address", ProfileField: ProfileAddress},
	}
	profile := domain.CompanyProfile{Address: "ул. Македонија бр. 12, Скопје"}

	ctx := BuildContext(placeholders, map[string]string{}, profile, testNow)

	if got := ctx.Get("companyAddress"); got != "ул. Македонија бр. 12, Скопје" {
		t.Errorf("companyAddress = %q, want profile value", got)
	}
}

func TestContextNeverEmpty(t *testing.T) {
	placeholders := []Placeholder{
		{Key: "a", Label: "A", ProfileField: ProfileManager},
		{Key: "b", Label: "B"},
	}

	ctx := BuildContext(placeholders, map[string]string{"a": "   ", "b": ""}, domain.CompanyProfile{}, testNow)

	for _, key := range []string{"a", "b"} {
		if got := ctx.Get(key); strings.TrimSpace(got) == "" {
			t.Errorf("placeholder %q resolved to an empty value", key)
		}
	}
}

func TestFormatLongDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-01-15", "15 јануари 2026 година"},
		{"2025-12-01", "1 декември 2025 година"},
		{"not-a-date", "not-a-date"},
		{"[Start Date]", "[Start Date]"},
	}

	for _, tt := range tests {
		if got := FormatLongDate(tt.in); got != tt.want {
			t.Errorf("FormatLongDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		title string
		human string
		want  string
	}{
		{"Договор за вработување", "Ана Петрова", "Договор_за_вработување_Ана_Петрова.docx"},
		{"Одлука   (бр. 7)", "J. Smith & Co", "Одлука_бр_7_J_Smith_Co.docx"},
	}

	for _, tt := range tests {
		if got := Filename(tt.title, tt.human); got != tt.want {
			t.Errorf("Filename(%q, %q) = %q, want %q", tt.title, tt.human, got, tt.want)
		}
	}
}

func TestRegistryRenderersProduceDocuments(t *testing.T) {
	registry := NewRegistry()
	profile := domain.CompanyProfile{
		CompanyName: "Нек Смарт ДООЕЛ",
		Address:     "ул. Партизанска бр. 5, Битола",
		TaxNumber:   "4002019512345",
		Manager:     "Марко Марковски",
	}

	for _, key := range registry.Keys() {
		t.Run(key, func(t *testing.T) {
			renderer, ok := registry.Get(key)
			if !ok {
				t.Fatalf("renderer %q not found", key)
			}

			doc, err := renderer(map[string]string{
				"employeeName": "Ана Петрова",
				"partyName":    "Инвест Група ДОО",
			}, profile, testNow)
			if err != nil {
				t.Fatalf("render: %v", err)
			}

			if len(doc.Content) == 0 {
				t.Error("rendered document is empty")
			}
			if !strings.HasSuffix(doc.Filename, ".docx") {
				t.Errorf("filename %q does not end in .docx", doc.Filename)
			}
			if strings.Contains(doc.Filename, " ") {
				t.Errorf("filename %q contains spaces", doc.Filename)
			}
		})
	}
}

func TestRegistryUnknownKey(t *testing.T) {
	registry := NewRegistry()
	if _, ok := registry.Get("no-such-document"); ok {
		t.Error("unknown key should not resolve")
	}
}
