package producer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

const KindEmployeeCreated = "employee_created"

type HRProducer struct {
	sp     sarama.SyncProducer
	topic  string
	source string
	now    func() time.Time
	log    zerolog.Logger
}

type Config struct {
	Topic  string
	Source string
}

func NewHRProducer(sp sarama.SyncProducer, cfg Config, log zerolog.Logger) *HRProducer {
	return &HRProducer{
		sp:     sp,
		topic:  cfg.Topic,
		source: cfg.Source,
		now:    time.Now,
		log:    log.With().Str("component", "HRProducer").Logger(),
	}
}

// NewSyncProducer настраивает идемпотентного синхронного продюсера.
func NewSyncProducer(bootstrap string) (sarama.SyncProducer, error) {
	sCfg := sarama.NewConfig()
	sCfg.Version = sarama.V3_3_2_0
	sCfg.Producer.Return.Successes = true
	sCfg.Producer.RequiredAcks = sarama.WaitForAll
	sCfg.Producer.Idempotent = true
	sCfg.Net.MaxOpenRequests = 1
	sCfg.Producer.Retry.Max = 5
	sCfg.Producer.Retry.Backoff = 200 * time.Millisecond

	return sarama.NewSyncProducer([]string{bootstrap}, sCfg)
}

func (p *HRProducer) Close() error {
	if p == nil || p.sp == nil {
		return nil
	}
	return p.sp.Close()
}

// ProduceEmployeeCreated публикует событие о созданном сотруднике, ключ — employee_id.
func (p *HRProducer) ProduceEmployeeCreated(ctx context.Context, e dto.Employee) error {
	if p == nil || p.sp == nil {
		return errors.New("sync producer is not initialized")
	}

	var payload EmployeePayload

	payload.EmployeeID = e.ID
	payload.FirstName = e.FirstName
	payload.LastName = e.LastName
	payload.DateOfBirth = e.DateOfBirth
	payload.StartDate = e.StartDate
	payload.Department = e.Department
	payload.Address.Street = e.Street
	payload.Address.City = e.City
	payload.Address.State = e.State
	payload.Address.ZipCode = e.ZipCode

	env := Envelope[EmployeePayload]{
		Kind:       KindEmployeeCreated,
		MessageID:  uuid.New(),
		EmployeeID: e.ID,
		Payload:    payload,
		Timestamp:  p.now().UTC(),
		Source:     p.source,
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	return p.send(ctx, e.ID, body, map[string]string{
		"event-kind":   KindEmployeeCreated,
		"message-id":   env.MessageID.String(),
		"source":       p.source,
		"content-type": "application/json",
	})
}

func (p *HRProducer) send(_ context.Context, key string, value []byte, headers map[string]string) error {
	if p == nil || p.sp == nil {
		return errors.New("sync producer is not initialized")
	}

	var hs []sarama.RecordHeader
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: hs,
	}

	part, off, err := p.sp.SendMessage(msg)
	if err != nil {
		p.log.Error().
			Err(err).
			Str("topic", p.topic).
			Str("key", key).
			Int("bytes", len(value)).
			Msg("failed to send kafka message")
		return fmt.Errorf("send kafka message: %w", err)
	}

	p.log.Info().
		Str("topic", p.topic).
		Str("key", key).
		Int32("partition", part).
		Int64("offset", off).
		Msg("kafka message sent")
	return nil
}
