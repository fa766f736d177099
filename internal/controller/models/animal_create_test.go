package models

import (
	"errors"
	"strings"
	"testing"
)

func validAnimalOpts() CreateAnimalV1Opts {
	return CreateAnimalV1Opts{
		OrganizacionId:      1,
		AdministradorId:     1,
		Nombre:              "Rocco",
		Especie:             "Perro",
		Sexo:                "Macho",
		EdadAproximada:      "3 años",
		Tamanio:             "Mediano",
		DescripcionHistoria: "Rescatado de la calle, muy sociable",
		PublicadoPor:        "Refugio Esperanza",
		ContactoRescatista:  "+5491155551234",
		FotoPrincipal:       "https://example.com/rocco.jpg",
	}
}

func TestCreateAnimalValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*CreateAnimalV1Opts)
		expected string
	}{
		{
			name:   "valid input passes",
			mutate: func(o *CreateAnimalV1Opts) {},
		},
		{
			name:     "unknown species",
			mutate:   func(o *CreateAnimalV1Opts) { o.Especie = "Conejo" },
			expected: "especie",
		},
		{
			name:     "unknown sex",
			mutate:   func(o *CreateAnimalV1Opts) { o.Sexo = "Desconocido" },
			expected: "sexo",
		},
		{
			name:     "unknown size",
			mutate:   func(o *CreateAnimalV1Opts) { o.Tamanio = "Gigante" },
			expected: "tamanio",
		},
		{
			name:     "missing name",
			mutate:   func(o *CreateAnimalV1Opts) { o.Nombre = "" },
			expected: "nombre",
		},
		{
			name:     "missing main photo",
			mutate:   func(o *CreateAnimalV1Opts) { o.FotoPrincipal = "" },
			expected: "foto_principal",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validAnimalOpts()
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

func TestContactRequestValidate(t *testing.T) {
	valid := CreateContactRequestV1Opts{
		NombreRefugio:  "Patitas del Sur",
		NombreContacto: "Marcos Díaz",
		Email:          "patitas@example.com",
		Telefono:       "+5492215550000",
		Ciudad:         "Bahía Blanca",
		Descripcion:    "Refugio con 40 animales buscando difusión",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected no error but got: %s", err)
	}

	missing := valid
	missing.Ciudad = ""
	err := missing.Validate()
	if err == nil {
		t.Fatal("expected an error but got none")
	}
	if !errors.Is(err, ErrorValidationFailed) {
		t.Errorf("expected error to wrap ErrorValidationFailed but got: %s", err)
	}
	if !strings.Contains(err.Error(), "ciudad") {
		t.Errorf("expected error to mention ciudad but got: %s", err)
	}
}
