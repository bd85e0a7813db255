package mailer

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"

	"rugboost-api/internal/pkg/errs"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

type ContactData struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type InspectionReadyData struct {
	BusinessName string
	ClientName   string
	JobNumber    string
	PortalURL    string
	RugCount     int
	TotalAmount  string
}

// RugLabel is "1 rug" or "N rugs".
func (d InspectionReadyData) RugLabel() string {
	if d.RugCount == 1 {
		return "1 rug"
	}
	return strconv.Itoa(d.RugCount) + " rugs"
}

func RenderContact(d ContactData) (string, error) {
	return render("contact.html.tmpl", d)
}

func RenderInspectionReady(d InspectionReadyData) (string, error) {
	return render("inspection_ready.html.tmpl", d)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errs.Wrapf(err, "render %s", name)
	}
	return buf.String(), nil
}
