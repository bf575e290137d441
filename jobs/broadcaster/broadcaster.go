// Package broadcaster publishes executed fills to Kafka so downstream
// consumers (trade tape, risk, analytics) see every match result. The engine
// core never publishes; callers hand it MatchResults after submission.
package broadcaster

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"matchbook/domain/book"
)

// Event is one executed fill, versioned for downstream schema evolution.
type Event struct {
	V       int    `json:"v"`
	ExecID  string `json:"exec_id"`
	Symbol  string `json:"symbol"`
	Price   string `json:"price"` // decimal string, exact
	Qty     int64  `json:"qty"`
	MakerID uint64 `json:"maker_id"`
	TakerID uint64 `json:"taker_id"`
	TS      int64  `json:"ts"` // unix nanos
}

const eventVersion = 1

type Broadcaster struct {
	producer sarama.SyncProducer
	topic    string
}

// New connects a synchronous producer. Fills are small and ordering per
// symbol matters, so sync + WaitForAll is the right trade.
func New(brokers []string, topic string) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}
	return &Broadcaster{producer: producer, topic: topic}, nil
}

// PublishFills emits one event per fill, keyed by symbol so a partition
// preserves per-symbol execution order.
func (b *Broadcaster) PublishFills(symbol string, fills []book.Fill) error {
	for _, f := range fills {
		payload, err := json.Marshal(newEvent(symbol, f))
		if err != nil {
			return err
		}
		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(symbol),
			Value: sarama.ByteEncoder(payload),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			return err
		}
	}
	return nil
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}

func newEvent(symbol string, f book.Fill) Event {
	return Event{
		V:       eventVersion,
		ExecID:  uuid.NewString(),
		Symbol:  symbol,
		Price:   book.FormatTicks(f.Price),
		Qty:     f.Qty,
		MakerID: f.MakerID,
		TakerID: f.TakerID,
		TS:      time.Now().UnixNano(),
	}
}
