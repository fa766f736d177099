package assets

import (
	"errors"
	"testing"
)

func TestIsAllowedFormat(t *testing.T) {
	valids := []string{"foto.jpg", "foto.JPEG", "mi.perro.png", "gato.webp"}
	for _, filename := range valids {
		if !IsAllowedFormat(filename) {
			t.Errorf("expected filename[%s] to be allowed", filename)
		}
	}
	invalids := []string{"foto", "foto.gif", "foto.pdf", "foto.svg", ""}
	for _, filename := range invalids {
		if IsAllowedFormat(filename) {
			t.Errorf("expected filename[%s] to be rejected", filename)
		}
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	client, err := NewClient(Config{CloudName: "demo", ApiKey: "key", ApiSecret: "secret"})
	if err != nil {
		t.Fatalf("expected client creation to succeed: %v", err)
	}
	_, err = client.Upload(UploadOpts{
		Data:     make([]byte, MaxFileSizeBytes+1),
		Filename: "grande.jpg",
	})
	if !errors.Is(err, ErrorFileTooLarge) {
		t.Errorf("expected error[%v] but got error[%v]", ErrorFileTooLarge, err)
	}
}

func TestUploadRejectsBadFormat(t *testing.T) {
	client, err := NewClient(Config{CloudName: "demo", ApiKey: "key", ApiSecret: "secret"})
	if err != nil {
		t.Fatalf("expected client creation to succeed: %v", err)
	}
	_, err = client.Upload(UploadOpts{
		Data:     []byte("not-an-image"),
		Filename: "archivo.exe",
	})
	if !errors.Is(err, ErrorInvalidFileFormat) {
		t.Errorf("expected error[%v] but got error[%v]", ErrorInvalidFileFormat, err)
	}
}

func TestPublicIdFromPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"adopcion-abc123", "adopcion/abc123"},
		{"adopcion-abc-123", "adopcion/abc-123"},
		{"sinfolder", "sinfolder"},
	}
	for _, tt := range tests {
		if got := PublicIdFromPath(tt.input); got != tt.expected {
			t.Errorf("expected [%s] for input[%s] but got [%s]", tt.expected, tt.input, got)
		}
	}
}

func TestSignIsDeterministicAndSorted(t *testing.T) {
	client, err := NewClient(Config{CloudName: "demo", ApiKey: "key", ApiSecret: "secret"})
	if err != nil {
		t.Fatalf("expected client creation to succeed: %v", err)
	}
	a := client.sign(map[string]string{"timestamp": "100", "folder": "adopcion"})
	b := client.sign(map[string]string{"folder": "adopcion", "timestamp": "100"})
	if a != b {
		t.Errorf("expected signatures to match regardless of map order: [%s] != [%s]", a, b)
	}
	if len(a) != 40 {
		t.Errorf("expected a 40-char hex sha1 but got [%s]", a)
	}
}
