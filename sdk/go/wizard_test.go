package nexa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/schema"
)

func contractTemplate() schema.Template {
	return schema.Template{
		ID:          "test-contract",
		Name:        "Test Contract",
		APIEndpoint: "/api/documents/generate/test-contract",
		Fields: []schema.FieldSpec{
			{Name: "fullName", Type: schema.FieldText, Required: true},
			{Name: "effectiveDate", Type: schema.FieldDate, Required: true},
		},
	}
}

func TestWizardStepPlanAndValidationScenario(t *testing.T) {
	w := NewWizard(nil, "user-1")
	w.SelectTemplate(contractTemplate())

	// fullName is an identity field, effectiveDate a date field, so the
	// plan has two steps in that order
	if w.StepCount() != 2 {
		t.Fatalf("StepCount = %d, want 2", w.StepCount())
	}
	if fields := w.CurrentFields(); len(fields) != 1 || fields[0].Name != "fullName" {
		t.Fatalf("step 1 fields = %+v, want [fullName]", fields)
	}

	// Empty required field blocks the step with an error keyed by name
	if w.ValidateStep(1) {
		t.Error("ValidateStep(1) should fail with empty fullName")
	}
	if w.Errors()["fullName"] != schema.MsgRequired {
		t.Errorf("fullName error = %q, want %q", w.Errors()["fullName"], schema.MsgRequired)
	}

	// Filling the field and revalidating clears the failure
	w.SetField("fullName", "Ana Petrova")
	if !w.ValidateStep(1) {
		t.Errorf("ValidateStep(1) should pass, errors: %v", w.Errors())
	}
	if len(w.Errors()) != 0 {
		t.Errorf("errors = %v, want none", w.Errors())
	}
}

func TestWizardNavigation(t *testing.T) {
	w := NewWizard(nil, "user-1")
	w.SelectTemplate(contractTemplate())

	// NextStep is gated on validation
	if w.NextStep() {
		t.Error("NextStep should not advance past an invalid step")
	}
	if w.CurrentStep() != 1 {
		t.Errorf("CurrentStep = %d, want 1", w.CurrentStep())
	}

	w.SetField("fullName", "Ana Petrova")
	if !w.NextStep() {
		t.Fatal("NextStep should advance once the step validates")
	}
	if w.CurrentStep() != 2 {
		t.Errorf("CurrentStep = %d, want 2", w.CurrentStep())
	}

	// NextStep clamps at the last step even when it validates
	w.SetField("effectiveDate", "2026-04-01")
	if w.NextStep() {
		t.Error("NextStep should clamp at the last step")
	}

	// PrevStep never validates and clamps at the first step
	w.PrevStep()
	if w.CurrentStep() != 1 {
		t.Errorf("CurrentStep after PrevStep = %d, want 1", w.CurrentStep())
	}
	w.PrevStep()
	if w.CurrentStep() != 1 {
		t.Error("PrevStep should clamp at step 1")
	}
}

func TestWizardSetFieldClearsErrorOptimistically(t *testing.T) {
	w := NewWizard(nil, "user-1")
	w.SelectTemplate(contractTemplate())

	w.ValidateStep(1)
	if _, ok := w.Errors()["fullName"]; !ok {
		t.Fatal("expected a fullName error")
	}

	// Setting any value clears the error without re-validating
	w.SetField("fullName", " ")
	if _, ok := w.Errors()["fullName"]; ok {
		t.Error("SetField should clear the field's error")
	}
}

func TestWizardSelectTemplateSeedsDefaults(t *testing.T) {
	tpl := contractTemplate()
	tpl.Fields = append(tpl.Fields, schema.FieldSpec{
		Name: "extraNotes", Type: schema.FieldTextarea, DefaultValue: "n/a",
	})

	w := NewWizard(nil, "user-1")
	w.SetField("fullName", "stale")
	w.SelectTemplate(tpl)

	if got := w.Value("extraNotes"); got != "n/a" {
		t.Errorf("extraNotes = %q, want default", got)
	}
	if got := w.Value("fullName"); got != "" {
		t.Errorf("fullName = %q, want reset to empty", got)
	}
	if w.CurrentStep() != 1 {
		t.Errorf("CurrentStep = %d, want 1", w.CurrentStep())
	}
}

func TestWizardSubmitDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/csrf-token":
			json.NewEncoder(w).Encode(map[string]string{"csrfToken": "tok-1"})
		case "/api/documents/generate/test-contract":
			w.Header().Set("Content-Type", docxContentType)
			w.Header().Set("Content-Disposition", `attachment; filename="Test_Contract_Ana_Petrova.docx"`)
			w.Write([]byte("PK-docx-bytes"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "bearer-token")
	wiz := NewWizard(client, "user-1")
	wiz.SelectTemplate(contractTemplate())
	wiz.SetField("fullName", "Ana Petrova")
	wiz.NextStep()
	wiz.SetField("effectiveDate", "2026-04-01")

	downloads := 0
	var gotFilename string
	sink := func(filename string, data []byte) error {
		downloads++
		gotFilename = filename
		return nil
	}

	result, err := wiz.Submit(context.Background(), sink)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if downloads != 1 {
		t.Errorf("download side effect fired %d times, want exactly 1", downloads)
	}
	if !strings.HasSuffix(gotFilename, ".docx") {
		t.Errorf("filename %q does not end in .docx", gotFilename)
	}
	if result != gotFilename {
		t.Errorf("Submit result %q, want the filename %q", result, gotFilename)
	}
}

func TestWizardSubmitValidationFailureKeepsState(t *testing.T) {
	wiz := NewWizard(nil, "user-1")
	wiz.SelectTemplate(contractTemplate())
	wiz.SetField("fullName", "Ana Petrova")

	_, err := wiz.Submit(context.Background(), nil)
	if err != ErrValidationFailed {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}

	// Form state survives the failure so the user can retry
	if got := wiz.Value("fullName"); got != "Ana Petrova" {
		t.Errorf("fullName = %q, want preserved value", got)
	}
}

func TestWizardSubmitServerErrorSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/csrf-token" {
			json.NewEncoder(w).Encode(map[string]string{"csrfToken": "tok-1"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Failed to generate document"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "bearer-token")
	wiz := NewWizard(client, "user-1")
	wiz.SelectTemplate(contractTemplate())
	wiz.SetField("fullName", "Ana Petrova")
	wiz.NextStep()
	wiz.SetField("effectiveDate", "2026-04-01")

	_, err := wiz.Submit(context.Background(), nil)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "Failed to generate document") {
		t.Errorf("err = %v, want the server message surfaced", err)
	}
	if got := wiz.Value("effectiveDate"); got != "2026-04-01" {
		t.Errorf("effectiveDate = %q, want preserved for retry", got)
	}
}

func TestWizardSubmitJSONConfirmation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/csrf-token" {
			json.NewEncoder(w).Encode(map[string]string{"csrfToken": "tok-1"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Document queued"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "bearer-token")
	wiz := NewWizard(client, "user-1")
	wiz.SelectTemplate(contractTemplate())
	wiz.SetField("fullName", "Ana Petrova")
	wiz.NextStep()
	wiz.SetField("effectiveDate", "2026-04-01")

	downloads := 0
	msg, err := wiz.Submit(context.Background(), func(string, []byte) error {
		downloads++
		return nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if msg != "Document queued" {
		t.Errorf("message = %q, want server confirmation", msg)
	}
	if downloads != 0 {
		t.Errorf("download fired %d times for a JSON response, want 0", downloads)
	}
}
