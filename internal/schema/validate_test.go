package schema

import "testing"

func TestValidateFields(t *testing.T) {
	fields := []FieldSpec{
		{Name: "employeeName", Type: FieldText, Required: true},
		{Name: "contactEmail", Type: FieldEmail, Required: false},
		{Name: "salary", Type: FieldNumber, Required: true},
		{Name: "notes", Type: FieldTextarea, Required: false},
	}

	tests := []struct {
		name     string
		values   map[string]string
		wantErrs map[string]string
	}{
		{
			name: "all valid",
			values: map[string]string{
				"employeeName": "Ана Петрова",
				"contactEmail": "ana@firma.mk",
				"salary":       "42000",
			},
			wantErrs: map[string]string{},
		},
		{
			name:   "missing required fields reported together",
			values: map[string]string{},
			wantErrs: map[string]string{
				"employeeName": MsgRequired,
				"salary":       MsgRequired,
			},
		},
		{
			name: "whitespace only counts as empty",
			values: map[string]string{
				"employeeName": "   ",
				"salary":       "42000",
			},
			wantErrs: map[string]string{"employeeName": MsgRequired},
		},
		{
			name: "malformed email",
			values: map[string]string{
				"employeeName": "Ана Петрова",
				"contactEmail": "not-an-email",
				"salary":       "42000",
			},
			wantErrs: map[string]string{"contactEmail": MsgInvalidEmail},
		},
		{
			name: "unparseable number",
			values: map[string]string{
				"employeeName": "Ана Петрова",
				"salary":       "many",
			},
			wantErrs: map[string]string{"salary": MsgInvalidNumber},
		},
		{
			name: "optional empty typed fields are skipped",
			values: map[string]string{
				"employeeName": "Ана Петрова",
				"salary":       "42000",
				"contactEmail": "",
			},
			wantErrs: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateFields(fields, tt.values)

			if len(errs) != len(tt.wantErrs) {
				t.Fatalf("got %d errors %v, want %d %v", len(errs), errs, len(tt.wantErrs), tt.wantErrs)
			}
			for field, want := range tt.wantErrs {
				if errs[field] != want {
					t.Errorf("error for %q = %q, want %q", field, errs[field], want)
				}
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if len(catalog.Categories) == 0 {
		t.Fatal("catalog has no categories")
	}

	tpl := catalog.TemplateByID("employment-contract")
	if tpl == nil {
		t.Fatal("employment-contract template missing from catalog")
	}
	if tpl.APIEndpoint == "" {
		t.Error("employment-contract has no API endpoint")
	}
	if f := tpl.FieldByName("employeeName"); f == nil || !f.Required {
		t.Error("employeeName should exist and be required")
	}

	if catalog.TemplateByID("no-such-template") != nil {
		t.Error("unknown template id should resolve to nil")
	}
}
