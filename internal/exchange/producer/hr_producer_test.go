package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artexxx/HR-Employees/internal/dto"
)

func employee() dto.Employee {
	return dto.Employee{
		ID:          "e-1",
		FirstName:   "Ann",
		LastName:    "Smith",
		DateOfBirth: "1990-05-10",
		StartDate:   "2015-09-01",
		Street:      "12 Main St",
		City:        "Springfield",
		State:       "IL",
		ZipCode:     "62701",
		Department:  "Sales",
	}
}

func TestProduceEmployeeCreated(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	defer func() { _ = sp.Close() }()

	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "hr.employees" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "e-1" {
			return errors.New("unexpected key " + string(key))
		}
		return nil
	})

	p := NewHRProducer(sp, Config{Topic: "hr.employees", Source: "test"}, zerolog.Nop())
	p.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }

	require.NoError(t, p.ProduceEmployeeCreated(context.Background(), employee()))
}

func TestProduceEmployeeCreated_Envelope(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	defer func() { _ = sp.Close() }()

	var got Envelope[EmployeePayload]
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		return json.Unmarshal(val, &got)
	})

	p := NewHRProducer(sp, Config{Topic: "hr.employees", Source: "hr-employees"}, zerolog.Nop())
	require.NoError(t, p.ProduceEmployeeCreated(context.Background(), employee()))

	assert.Equal(t, KindEmployeeCreated, got.Kind)
	assert.Equal(t, "e-1", got.EmployeeID)
	assert.Equal(t, "hr-employees", got.Source)
	assert.Equal(t, "Springfield", got.Payload.Address.City)
	assert.Equal(t, "Sales", got.Payload.Department)
	assert.NotEmpty(t, got.MessageID)
}

func TestProduceEmployeeCreated_SendError(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	defer func() { _ = sp.Close() }()

	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewHRProducer(sp, Config{Topic: "hr.employees"}, zerolog.Nop())
	err := p.ProduceEmployeeCreated(context.Background(), employee())

	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestHRProducer_NilSafe(t *testing.T) {
	var p *HRProducer

	assert.NoError(t, p.Close())
	assert.Error(t, p.ProduceEmployeeCreated(context.Background(), employee()))
}
