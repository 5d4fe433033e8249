package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

const (
	FromName                = "Kuliner Nusantara"
	maxRetires              = 3
	PartnerApprovedTemplate = "partner_approved.tmpl"
	PartnerRejectedTemplate = "partner_rejected.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) (int, error)
}

// render executes the "subject" and "body" blocks of templateFile.
func render(templateFile string, data any) (subject, body string, err error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return "", "", fmt.Errorf("parse template %s: %w", templateFile, err)
	}

	s := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(s, "subject", data); err != nil {
		return "", "", err
	}

	b := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(b, "body", data); err != nil {
		return "", "", err
	}

	return s.String(), b.String(), nil
}
