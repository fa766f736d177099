package models

import (
	"database/sql"
	"time"
)

type DatabaseConnection struct {
	Db *sql.DB
}

type DatabaseFunction string

// AnimalStatus is the publication state of an animal.
type AnimalStatus string

const (
	AnimalStatusDisponible AnimalStatus = "Disponible"
	AnimalStatusEnProceso  AnimalStatus = "En proceso"
	AnimalStatusEnTransito AnimalStatus = "En transito"
	AnimalStatusAdoptado   AnimalStatus = "Adoptado"
)

var AnimalStatuses = []AnimalStatus{
	AnimalStatusDisponible,
	AnimalStatusEnProceso,
	AnimalStatusEnTransito,
	AnimalStatusAdoptado,
}

func (s AnimalStatus) IsValid() bool {
	for _, status := range AnimalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsRequestable reports whether adoption requests may be created
// against an animal in this state.
func (s AnimalStatus) IsRequestable() bool {
	switch s {
	case AnimalStatusDisponible, AnimalStatusEnProceso, AnimalStatusEnTransito:
		return true
	}
	return false
}

// RequestStatus tracks the review state of an adoption request.
type RequestStatus string

const (
	RequestStatusNueva        RequestStatus = "Nueva"
	RequestStatusRevisada     RequestStatus = "Revisada"
	RequestStatusEnEvaluacion RequestStatus = "En evaluación"
	RequestStatusAprobada     RequestStatus = "Aprobada"
	RequestStatusRechazada    RequestStatus = "Rechazada"
)

var RequestStatuses = []RequestStatus{
	RequestStatusNueva,
	RequestStatusRevisada,
	RequestStatusEnEvaluacion,
	RequestStatusAprobada,
	RequestStatusRechazada,
}

func (s RequestStatus) IsValid() bool {
	for _, status := range RequestStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ContactStatus tracks the review state of a shelter onboarding request.
type ContactStatus string

const (
	ContactStatusPendiente ContactStatus = "Pendiente"
	ContactStatusAprobada  ContactStatus = "Aprobada"
	ContactStatusRechazada ContactStatus = "Rechazada"
)

var ContactStatuses = []ContactStatus{
	ContactStatusPendiente,
	ContactStatusAprobada,
	ContactStatusRechazada,
}

func (s ContactStatus) IsValid() bool {
	for _, status := range ContactStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Species, sexes, sizes and housing types accepted on input. Wire values
// stay in Spanish since the frontends render them as-is.
var (
	AnimalSpecies = []string{"Perro", "Gato"}
	AnimalSexes   = []string{"Macho", "Hembra"}
	AnimalSizes   = []string{"Pequeño", "Mediano", "Grande"}
	HousingTypes  = []string{"Casa con patio", "Casa sin patio", "Departamento", "Otro"}
)

type Organization struct {
	Id            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Slug          string    `json:"slug"`
	Email         *string   `json:"email"`
	Telefono      *string   `json:"telefono"`
	Whatsapp      *string   `json:"whatsapp"`
	Direccion     *string   `json:"direccion"`
	LogoUrl       *string   `json:"logo_url"`
	Descripcion   *string   `json:"descripcion"`
	Instagram     *string   `json:"instagram"`
	Facebook      *string   `json:"facebook"`
	DonacionAlias *string   `json:"donacion_alias"`
	DonacionCbu   *string   `json:"donacion_cbu"`
	DonacionInfo  *string   `json:"donacion_info"`
	Activa        bool      `json:"activa"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// PublicView strips fields that must not appear on anonymous reads.
func (o Organization) PublicView() map[string]any {
	return map[string]any{
		"id":             o.Id,
		"nombre":         o.Nombre,
		"slug":           o.Slug,
		"telefono":       o.Telefono,
		"whatsapp":       o.Whatsapp,
		"direccion":      o.Direccion,
		"logo_url":       o.LogoUrl,
		"descripcion":    o.Descripcion,
		"instagram":      o.Instagram,
		"facebook":       o.Facebook,
		"donacion_alias": o.DonacionAlias,
		"donacion_info":  o.DonacionInfo,
	}
}

type Administrator struct {
	Id             int64      `json:"id"`
	OrganizacionId int64      `json:"organizacion_id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	EsSuperAdmin   bool       `json:"es_super_admin"`
	UltimoAcceso   *time.Time `json:"ultimo_acceso"`
	FechaCreacion  time.Time  `json:"fecha_creacion"`

	// Organizacion is populated by reads that join the owning row
	Organizacion *Organization `json:"organizacion,omitempty"`
}

type Animal struct {
	Id                    int64        `json:"id"`
	OrganizacionId        int64        `json:"organizacion_id"`
	AdministradorId       int64        `json:"administrador_id"`
	Nombre                string       `json:"nombre"`
	Especie               string       `json:"especie"`
	Sexo                  string       `json:"sexo"`
	EdadAproximada        string       `json:"edad_aproximada"`
	Tamanio               string       `json:"tamanio"`
	RazaMezcla            *string      `json:"raza_mezcla"`
	DescripcionHistoria   string       `json:"descripcion_historia"`
	EstadoCastracion      bool         `json:"estado_castracion"`
	EstadoVacunacion      *string      `json:"estado_vacunacion"`
	EstadoDesparasitacion bool         `json:"estado_desparasitacion"`
	SocializaPerros       bool         `json:"socializa_perros"`
	SocializaGatos        bool         `json:"socializa_gatos"`
	SocializaNinos        bool         `json:"socializa_ninos"`
	NecesidadesEspeciales *string      `json:"necesidades_especiales"`
	TipoHogarIdeal        *string      `json:"tipo_hogar_ideal"`
	Estado                AnimalStatus `json:"estado"`
	PublicadoPor          string       `json:"publicado_por"`
	ContactoRescatista    string       `json:"contacto_rescatista"`
	FotoPrincipal         string       `json:"foto_principal"`
	Foto2                 *string      `json:"foto_2"`
	Foto3                 *string      `json:"foto_3"`
	Foto4                 *string      `json:"foto_4"`
	Foto5                 *string      `json:"foto_5"`
	FechaPublicacion      time.Time    `json:"fecha_publicacion"`
	FechaActualizacion    time.Time    `json:"fecha_actualizacion"`

	// Organizacion is populated by reads that join the owning row
	Organizacion *Organization `json:"organizacion,omitempty"`
}

type AdoptionRequest struct {
	Id                     int64         `json:"id"`
	AnimalId               int64         `json:"animal_id"`
	NombreCompleto         string        `json:"nombre_completo"`
	Edad                   int           `json:"edad"`
	Email                  string        `json:"email"`
	TelefonoWhatsapp       string        `json:"telefono_whatsapp"`
	Instagram              *string       `json:"instagram"`
	CiudadZona             string        `json:"ciudad_zona"`
	TipoVivienda           string        `json:"tipo_vivienda"`
	ViveSoloAcompanado     string        `json:"vive_solo_acompanado"`
	TodosDeAcuerdo         bool          `json:"todos_de_acuerdo"`
	TieneOtrosAnimales     bool          `json:"tiene_otros_animales"`
	OtrosAnimalesCastrados *string       `json:"otros_animales_castrados"`
	ExperienciaPrevia      *string       `json:"experiencia_previa"`
	PuedeCubrirGastos      bool          `json:"puede_cubrir_gastos"`
	VeterinariaQueUsa      *string       `json:"veterinaria_que_usa"`
	Motivacion             string        `json:"motivacion"`
	CompromisoCastracion   bool          `json:"compromiso_castracion"`
	AceptaContacto         bool          `json:"acepta_contacto"`
	EstadoSolicitud        RequestStatus `json:"estado_solicitud"`
	FechaSolicitud         time.Time     `json:"fecha_solicitud"`

	// Animal is populated by reads that join the referenced row
	Animal *Animal `json:"animal,omitempty"`
}

type SuccessStory struct {
	Id               int64     `json:"id"`
	AnimalId         int64     `json:"animal_id"`
	OrganizacionId   int64     `json:"organizacion_id"`
	Titulo           string    `json:"titulo"`
	Historia         string    `json:"historia"`
	FotoActual1      *string   `json:"foto_actual_1"`
	FotoActual2      *string   `json:"foto_actual_2"`
	FotoActual3      *string   `json:"foto_actual_3"`
	FechaAdopcion    time.Time `json:"fecha_adopcion"`
	FechaPublicacion time.Time `json:"fecha_publicacion"`

	// Animal is populated by reads that join the referenced row
	Animal *Animal `json:"animal,omitempty"`
}

type ContactRequest struct {
	Id               int64         `json:"id"`
	NombreRefugio    string        `json:"nombre_refugio"`
	NombreContacto   string        `json:"nombre_contacto"`
	Email            string        `json:"email"`
	Telefono         string        `json:"telefono"`
	Ciudad           string        `json:"ciudad"`
	Descripcion      string        `json:"descripcion"`
	Instagram        *string       `json:"instagram"`
	Facebook         *string       `json:"facebook"`
	CantidadAnimales *string       `json:"cantidad_animales"`
	Estado           ContactStatus `json:"estado"`
	NotasAdmin       *string       `json:"notas_admin"`
	FechaSolicitud   time.Time     `json:"fecha_solicitud"`
	FechaRespuesta   *time.Time    `json:"fecha_respuesta"`
}
