package models

import "testing"

func TestAnimalStatusIsValid(t *testing.T) {
	for _, status := range AnimalStatuses {
		if !status.IsValid() {
			t.Errorf("expected status[%s] to be valid", status)
		}
	}
	for _, status := range []AnimalStatus{"", "disponible", "Perdido"} {
		if status.IsValid() {
			t.Errorf("expected status[%s] to be invalid", status)
		}
	}
}

func TestAnimalStatusIsRequestable(t *testing.T) {
	tests := []struct {
		status   AnimalStatus
		expected bool
	}{
		{AnimalStatusDisponible, true},
		{AnimalStatusEnProceso, true},
		{AnimalStatusEnTransito, true},
		{AnimalStatusAdoptado, false},
		{AnimalStatus("Perdido"), false},
	}
	for _, tt := range tests {
		if observed := tt.status.IsRequestable(); observed != tt.expected {
			t.Errorf("status[%s]: expected IsRequestable to be %v but got %v", tt.status, tt.expected, observed)
		}
	}
}

func TestRequestStatusIsValid(t *testing.T) {
	for _, status := range RequestStatuses {
		if !status.IsValid() {
			t.Errorf("expected status[%s] to be valid", status)
		}
	}
	for _, status := range []RequestStatus{"", "nueva", "Cerrada"} {
		if status.IsValid() {
			t.Errorf("expected status[%s] to be invalid", status)
		}
	}
}

func TestContactStatusIsValid(t *testing.T) {
	for _, status := range ContactStatuses {
		if !status.IsValid() {
			t.Errorf("expected status[%s] to be valid", status)
		}
	}
	if ContactStatus("En revision").IsValid() {
		t.Error("expected unknown contact status to be invalid")
	}
}

func TestOrganizationPublicView(t *testing.T) {
	email := "contacto@refugio.test"
	cbu := "0000003100010000000001"
	org := Organization{
		Id:          1,
		Nombre:      "Refugio Esperanza",
		Slug:        "refugio-esperanza",
		Email:       &email,
		DonacionCbu: &cbu,
	}
	view := org.PublicView()
	if _, ok := view["email"]; ok {
		t.Error("expected email to be hidden from the public view")
	}
	if _, ok := view["donacion_cbu"]; ok {
		t.Error("expected donacion_cbu to be hidden from the public view")
	}
	if view["slug"] != "refugio-esperanza" {
		t.Errorf("expected slug to survive, got %v", view["slug"])
	}
}
