package queue

import (
	"context"
	"time"
)

var instance Instance

func Get() Instance {
	return instance
}

type Instance interface {
	Push(PushOpts) (*PushOutput, error)
	Subscribe(SubscribeOpts) error
	Close() error
}

type Message struct {
	Data    []byte `json:"data"`
	Subject string `json:"subject"`
}

type MessageHandler func(context.Context, Message) error

type PushOpts struct {
	Data  []byte
	Queue QueueOpts
}

type PushOutput struct {
	MessageSizeBytes int
	Queue            QueueOpts
}

type QueueOpts struct {
	Stream  string
	Subject string
}

type SubscribeOpts struct {
	ConsumerId string
	Context    context.Context
	Handler    MessageHandler
	Queue      QueueOpts
	NakBackoff time.Duration
}
