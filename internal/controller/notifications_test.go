package controller

import (
	"fmt"
	"testing"
	"time"

	"adoptar/internal/common"
	"adoptar/internal/email"
	"adoptar/internal/queue"
)

// stalledQueue blocks every push until released, simulating a
// connected-but-degraded queue server.
type stalledQueue struct {
	release chan struct{}
}

func (q *stalledQueue) Push(queue.PushOpts) (*queue.PushOutput, error) {
	<-q.release
	return nil, fmt.Errorf("queue is degraded")
}

func (q *stalledQueue) Subscribe(queue.SubscribeOpts) error {
	return nil
}

func (q *stalledQueue) Close() error {
	return nil
}

func TestDispatchSolicitudNotificationNeverBlocksCaller(t *testing.T) {
	noopLogs := (chan<- common.ServiceLog)(common.GetNoopServiceLog())
	serviceLogs = &noopLogs
	stalled := &stalledQueue{release: make(chan struct{})}
	queueInstance = stalled
	defer close(stalled.release)

	returned := make(chan struct{})
	go func() {
		dispatchSolicitudNotification(solicitudNotificationMessage{
			Recipient: email.User{Address: "refugio@example.com"},
			Notification: email.SolicitudNotification{
				SolicitudId: 1,
			},
		})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected dispatch to return while the queue push is stalled")
	}
}
