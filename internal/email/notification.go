package email

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

//go:embed solicitud_notification.html
var solicitudNotificationHtml string

var solicitudNotificationTemplate = template.Must(
	template.New("solicitud_notification").Parse(solicitudNotificationHtml),
)

// SolicitudNotification carries everything the new-request notification
// email needs to render.
type SolicitudNotification struct {
	AnimalId      int64
	AnimalNombre  string
	AnimalEspecie string

	SolicitudId            int64
	NombreCompleto         string
	Edad                   int
	Email                  string
	TelefonoWhatsapp       string
	Instagram              string
	CiudadZona             string
	TipoVivienda           string
	ViveSoloAcompanado     string
	TodosDeAcuerdo         bool
	TieneOtrosAnimales     bool
	OtrosAnimalesCastrados string
	ExperienciaPrevia      string
	PuedeCubrirGastos      bool
	VeterinariaQueUsa      string
	Motivacion             string
	CompromisoCastracion   bool
	FechaSolicitud         string
}

func (n SolicitudNotification) Title() string {
	return fmt.Sprintf("Nueva solicitud de adopción para %s", n.AnimalNombre)
}

func (n SolicitudNotification) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := solicitudNotificationTemplate.Execute(&buf, n); err != nil {
		return nil, fmt.Errorf("failed to render notification template: %w", err)
	}
	return buf.Bytes(), nil
}
