package nexa

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/schema"
)

// ErrValidationFailed is returned by Submit when the final step does not
// pass validation; the per-field messages are available via Errors.
var ErrValidationFailed = errors.New("form validation failed")

// ErrNoTemplate is returned when the wizard is used before SelectTemplate
var ErrNoTemplate = errors.New("no template selected")

// DownloadSink receives the generated document exactly once per successful
// binary response. UI frontends wire this to a file save or browser
// download.
type DownloadSink func(filename string, data []byte) error

// Wizard drives a document template's fields through validated steps and
// submits the assembled payload. It is pure state between renders: every
// method is synchronous, and only Submit touches the network.
type Wizard struct {
	client *Client
	userID string

	template *schema.Template
	plan     schema.StepPlan
	current  int // 1-based position within plan.Steps
	values   map[string]string
	errors   map[string]string
	now      func() time.Time
}

// NewWizard creates a wizard bound to a client and the acting user
func NewWizard(client *Client, userID string) *Wizard {
	return &Wizard{
		client: client,
		userID: userID,
		values: make(map[string]string),
		errors: make(map[string]string),
		now:    time.Now,
	}
}

// SelectTemplate resets the wizard onto a template: form state is seeded
// from field defaults, the step plan is rebuilt and the wizard returns to
// the first step. Any previous state is discarded.
func (w *Wizard) SelectTemplate(template schema.Template) {
	w.template = &template
	w.plan = schema.BuildStepPlan(template.Fields)
	w.current = 1
	w.errors = make(map[string]string)

	w.values = make(map[string]string, len(template.Fields))
	for _, f := range template.Fields {
		w.values[f.Name] = f.DefaultValue
	}
}

// SetField updates one field's value and optimistically clears its error;
// the field is not re-validated until the next step attempt
func (w *Wizard) SetField(name, value string) {
	if w.template == nil || w.template.FieldByName(name) == nil {
		return
	}
	w.values[name] = value
	delete(w.errors, name)
}

// Value returns a field's current value
func (w *Wizard) Value(name string) string {
	return w.values[name]
}

// FormData returns a copy of the current form state
func (w *Wizard) FormData() map[string]string {
	out := make(map[string]string, len(w.values))
	for k, v := range w.values {
		out[k] = v
	}
	return out
}

// Errors returns the per-field validation messages from the last failed
// step attempt
func (w *Wizard) Errors() map[string]string {
	return w.errors
}

// StepCount returns the number of steps in the current plan
func (w *Wizard) StepCount() int {
	return len(w.plan.Steps)
}

// CurrentStep returns the 1-based position of the active step
func (w *Wizard) CurrentStep() int {
	return w.current
}

// CurrentFields returns the field specs of the active step
func (w *Wizard) CurrentFields() []schema.FieldSpec {
	if w.current < 1 || w.current > len(w.plan.Steps) {
		return nil
	}
	return w.plan.Steps[w.current-1].Fields
}

// ValidateStep validates every field of the given step at once and records
// all failures. It returns true when the step passes.
func (w *Wizard) ValidateStep(step int) bool {
	if step < 1 || step > len(w.plan.Steps) {
		return true
	}

	stepErrs := schema.ValidateFields(w.plan.Steps[step-1].Fields, w.values)
	for field, msg := range stepErrs {
		w.errors[field] = msg
	}

	return len(stepErrs) == 0
}

// NextStep advances to the following step if the current one validates,
// clamping at the last step. It reports whether the wizard advanced.
func (w *Wizard) NextStep() bool {
	if !w.ValidateStep(w.current) {
		return false
	}
	if w.current < len(w.plan.Steps) {
		w.current++
		return true
	}
	return false
}

// PrevStep goes back one step without re-validating, clamping at the first
func (w *Wizard) PrevStep() {
	if w.current > 1 {
		w.current--
	}
}

// Submit re-validates the final step and issues the single generation call.
// A binary response is handed to sink exactly once; a JSON confirmation
// comes back as the returned message. On any failure the form state is
// kept so the user can retry without re-entering data.
func (w *Wizard) Submit(ctx context.Context, sink DownloadSink) (string, error) {
	if w.template == nil {
		return "", ErrNoTemplate
	}

	if !w.ValidateStep(w.current) {
		return "", ErrValidationFailed
	}

	result, err := w.client.GenerateDocument(ctx, w.template.APIEndpoint, w.userID, w.FormData())
	if err != nil {
		return "", err
	}

	if result.IsDocument() {
		filename := result.Filename
		if filename == "" {
			filename = fmt.Sprintf("%s_%s.docx", w.template.Name, w.now().Format("2006-01-02"))
		}
		if sink != nil {
			if err := sink(filename, result.Data); err != nil {
				return "", fmt.Errorf("failed to save document: %w", err)
			}
		}
		return filename, nil
	}

	return result.Message, nil
}
