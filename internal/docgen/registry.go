package docgen

import (
	"sort"
	"time"

	"github.com/martinboshkoski/nexa.v1-sub001/internal/domain"
)

// Renderer produces one finished document from submitted form data and the
// requesting user's company profile
type Renderer func(formData map[string]string, profile domain.CompanyProfile, now time.Time) (*domain.GeneratedDocument, error)

// Registry maps document-type keys to their renderers. Adding a document
// type is a single Register call; nothing else in the generation path
// switches on the key.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry returns a registry with every built-in document type
func NewRegistry() *Registry {
	r := &Registry{renderers: make(map[string]Renderer)}

	r.Register("employment-contract", renderEmploymentContract)
	r.Register("employment-annex", renderEmploymentAnnex)
	r.Register("termination-decision", renderTerminationDecision)
	r.Register("annual-leave-decision", renderAnnualLeaveDecision)
	r.Register("confidentiality-agreement", renderConfidentialityAgreement)
	r.Register("bonus-payment-decision", renderBonusPaymentDecision)

	return r
}

// Register adds or replaces the renderer for a document-type key
func (r *Registry) Register(key string, renderer Renderer) {
	r.renderers[key] = renderer
}

// Get returns the renderer for a document-type key
func (r *Registry) Get(key string) (Renderer, bool) {
	renderer, ok := r.renderers[key]
	return renderer, ok
}

// Keys returns all registered document-type keys, sorted
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.renderers))
	for k := range r.renderers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
