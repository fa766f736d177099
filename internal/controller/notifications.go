package controller

import (
	"context"
	"encoding/json"
	"fmt"

	"adoptar/internal/common"
	"adoptar/internal/email"
	"adoptar/internal/queue"
)

const (
	notificationStream  = "adoptar"
	notificationSubject = "solicitudes"
)

// solicitudNotificationMessage is the queue payload for a new adoption
// request: the rendered-template data plus where to deliver it.
type solicitudNotificationMessage struct {
	Recipient    email.User                  `json:"recipient"`
	Notification email.SolicitudNotification `json:"notification"`
}

// dispatchSolicitudNotification hands the notification off to a
// goroutine and returns immediately so a slow or degraded queue never
// delays the caller's response; the adoption request has already been
// persisted by this point.
func dispatchSolicitudNotification(message solicitudNotificationMessage) {
	go deliverSolicitudNotification(message)
}

// deliverSolicitudNotification queues the notification, degrading to a
// direct send when the queue is unavailable. Failures are logged and
// absorbed.
func deliverSolicitudNotification(message solicitudNotificationMessage) {
	if queueInstance != nil {
		data, err := json.Marshal(message)
		if err == nil {
			if _, err := queueInstance.Push(queue.PushOpts{
				Data: data,
				Queue: queue.QueueOpts{
					Stream:  notificationStream,
					Subject: notificationSubject,
				},
			}); err == nil {
				return
			} else {
				*serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "failed to queue notification for solicitud[%v], falling back to direct send: %s", message.Notification.SolicitudId, err)
			}
		}
	}
	sendSolicitudNotification(message)
}

func sendSolicitudNotification(message solicitudNotificationMessage) {
	if !smtpConfig.IsSet() {
		*serviceLogs <- common.ServiceLogf(common.LogLevelDebug, "skipping notification for solicitud[%v]: email is not enabled", message.Notification.SolicitudId)
		return
	}
	if message.Recipient.Address == "" {
		*serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "skipping notification for solicitud[%v]: organization has no email address", message.Notification.SolicitudId)
		return
	}
	body, err := message.Notification.Render()
	if err != nil {
		*serviceLogs <- common.ServiceLogf(common.LogLevelError, "failed to render notification for solicitud[%v]: %s", message.Notification.SolicitudId, err)
		return
	}
	if err := email.SendSmtp(email.SendSmtpOpts{
		To:     []email.User{message.Recipient},
		Sender: smtpConfig.Sender,
		Smtp:   smtpConfig.Config,
		Message: email.Message{
			Body:  body,
			Title: message.Notification.Title(),
		},
		ServiceLogs: *serviceLogs,
	}); err != nil {
		*serviceLogs <- common.ServiceLogf(common.LogLevelError, "failed to send notification for solicitud[%v]: %s", message.Notification.SolicitudId, err)
		return
	}
	*serviceLogs <- common.ServiceLogf(common.LogLevelInfo, "sent notification for solicitud[%v] to address[%s]", message.Notification.SolicitudId, message.Recipient.Address)
}

type StartNotificationWorkerOpts struct {
	ConsumerId string
	Context    context.Context
}

// StartNotificationWorker consumes queued notifications and delivers
// them over SMTP. Delivery is at-most-once: a failed send is logged
// and acknowledged rather than redelivered.
func StartNotificationWorker(opts StartNotificationWorkerOpts) error {
	if queueInstance == nil {
		return fmt.Errorf("failed to receive a queue connection")
	}
	return queueInstance.Subscribe(queue.SubscribeOpts{
		ConsumerId: opts.ConsumerId,
		Context:    opts.Context,
		Queue: queue.QueueOpts{
			Stream:  notificationStream,
			Subject: notificationSubject,
		},
		Handler: func(ctx context.Context, message queue.Message) error {
			var payload solicitudNotificationMessage
			if err := json.Unmarshal(message.Data, &payload); err != nil {
				*serviceLogs <- common.ServiceLogf(common.LogLevelError, "failed to parse notification payload: %s", err)
				return nil
			}
			sendSolicitudNotification(payload)
			return nil
		},
	})
}
