package mailer

import (
	"strings"
	"testing"
)

func TestRenderPartnerTemplates(t *testing.T) {
	data := struct {
		Username            string
		BusinessName        string
		LoginURL            string
		ListingsUnpublished bool
	}{"Sari", "Warung <Sari>", "https://kuliner.example/login", true}

	for _, tmpl := range []string{PartnerApprovedTemplate, PartnerRejectedTemplate} {
		subject, body, err := render(tmpl, data)
		if err != nil {
			t.Fatalf("%s: %v", tmpl, err)
		}
		if !strings.Contains(subject, "Warung") {
			t.Errorf("%s: subject %q does not name the business", tmpl, subject)
		}
		if !strings.Contains(body, "Hi Sari") {
			t.Errorf("%s: body does not greet the partner", tmpl)
		}
		if strings.Contains(body, "<Sari>") {
			t.Errorf("%s: business name was not escaped", tmpl)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, _, err := render("missing.tmpl", nil); err == nil {
		t.Fatal("expected an error for a missing template")
	}
}
