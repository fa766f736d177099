package models

import (
	"errors"
	"strings"
	"testing"
)

func validAdoptionOpts() CreateAdoptionRequestV1Opts {
	return CreateAdoptionRequestV1Opts{
		AnimalId:             1,
		NombreCompleto:       "Julia Acosta",
		Edad:                 29,
		Email:                "julia@example.com",
		TelefonoWhatsapp:     "+5491155551234",
		CiudadZona:           "La Plata",
		TipoVivienda:         "Casa con patio",
		ViveSoloAcompanado:   "Con mi pareja",
		TodosDeAcuerdo:       true,
		PuedeCubrirGastos:    true,
		Motivacion:           "Queremos darle un hogar definitivo a un perro adulto",
		CompromisoCastracion: true,
		AceptaContacto:       true,
	}
}

func TestCreateAdoptionRequestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateAdoptionRequestV1Opts)
		expected string
	}{
		{
			name:   "valid input passes",
			mutate: func(o *CreateAdoptionRequestV1Opts) {},
		},
		{
			name:     "underage adopter",
			mutate:   func(o *CreateAdoptionRequestV1Opts) { o.Edad = 17 },
			expected: "edad",
		},
		{
			name:     "short motivation",
			mutate:   func(o *CreateAdoptionRequestV1Opts) { o.Motivacion = "Quiero un perro" },
			expected: "motivacion",
		},
		{
			name:     "whitespace-padded motivation",
			mutate:   func(o *CreateAdoptionRequestV1Opts) { o.Motivacion = "   corta   " + strings.Repeat(" ", 20) },
			expected: "motivacion",
		},
		{
			name:     "household not in agreement",
			mutate:   func(o *CreateAdoptionRequestV1Opts) { o.TodosDeAcuerdo = false },
			expected: "todos_de_acuerdo",
		},
		{
			name:     "no neutering commitment",
			mutate:   func(o *CreateAdoptionRequestV1Opts) { o.CompromisoCastracion = false },
			expected: "compromiso_castracion",
		},
		{
			name:     "unknown housing type",
			mutate:   func(o *CreateAdoptionRequestV1Opts) { o.TipoVivienda = "Castillo" },
			expected: "tipo_vivienda",
		},
		{
			name:     "missing contact details",
			mutate:   func(o *CreateAdoptionRequestV1Opts) { o.TelefonoWhatsapp = "" },
			expected: "telefono_whatsapp",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validAdoptionOpts()
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.expected == "" {
				if err != nil {
					t.Errorf("expected no error but got: %s", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected an error but got none")
			}
			if !errors.Is(err, ErrorValidationFailed) {
				t.Errorf("expected error to wrap ErrorValidationFailed but got: %s", err)
			}
			if !strings.Contains(err.Error(), tt.expected) {
				t.Errorf("expected error to mention %s but got: %s", tt.expected, err)
			}
		})
	}
}
