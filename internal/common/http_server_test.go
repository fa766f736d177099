package common

import (
	"net/http"
	"testing"
	"time"
)

func TestHttpServerStopsOnDoneSignal(t *testing.T) {
	done := make(chan Done)
	server, err := NewHttpServer(NewHttpServerOpts{
		Addr: "127.0.0.1:0",
		Done: done,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
		ServiceLogs: GetNoopServiceLog(),
	})
	if err != nil {
		t.Fatalf("expected no error but got: %s", err)
	}

	result := make(chan error, 1)
	go func() {
		result <- server.Start()
	}()
	time.Sleep(50 * time.Millisecond)
	done <- Done{}

	select {
	case err := <-result:
		if err != nil {
			t.Errorf("expected a clean stop but got: %s", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected the server to stop after the done signal")
	}
}

func TestNewHttpServerRequiresHandler(t *testing.T) {
	if _, err := NewHttpServer(NewHttpServerOpts{
		Addr:        "127.0.0.1:0",
		Done:        make(chan Done),
		ServiceLogs: GetNoopServiceLog(),
	}); err == nil {
		t.Error("expected an error when no handler is provided")
	}
}
