package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rentique/rental-service/internal/entities"
	mocks "github.com/rentique/rental-service/internal/handler/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestKafkaHandler_HandleConfirmation(t *testing.T) {
	newHandler := func(t *testing.T) (*kafkaHandler, *mocks.MockPaymentConfirmer) {
		confirmer := mocks.NewMockPaymentConfirmer(t)
		h := &kafkaHandler{
			logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
			validate:  validator.New(),
			confirmer: confirmer,
		}
		return h, confirmer
	}

	message := func(value string) kafka.Message {
		return kafka.Message{Topic: "payments", Value: []byte(value)}
	}

	valid := `{"order_uid":"123","transaction":"tx-1","amount":18000,"paid_at":1700000000}`

	t.Run("valid confirmation is applied", func(t *testing.T) {
		h, confirmer := newHandler(t)
		confirmer.EXPECT().ConfirmPayment(mock.Anything, "123").Return(nil).Once()

		require.NoError(t, h.handleConfirmation(context.Background(), message(valid)))
	})

	t.Run("garbage payload is poison", func(t *testing.T) {
		h, _ := newHandler(t)

		err := h.handleConfirmation(context.Background(), message("not json"))
		assert.ErrorIs(t, err, errPoisonMessage)
	})

	t.Run("missing order uid is poison", func(t *testing.T) {
		h, _ := newHandler(t)

		err := h.handleConfirmation(context.Background(), message(`{"transaction":"tx-1"}`))
		assert.ErrorIs(t, err, errPoisonMessage)
	})

	t.Run("unknown order is poison and not retried", func(t *testing.T) {
		h, confirmer := newHandler(t)
		confirmer.EXPECT().ConfirmPayment(mock.Anything, "123").
			Return(entities.ErrOrderNotFound).Once()

		err := h.handleConfirmation(context.Background(), message(valid))
		assert.ErrorIs(t, err, errPoisonMessage)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("closed order is poison and not retried", func(t *testing.T) {
		h, confirmer := newHandler(t)
		confirmer.EXPECT().ConfirmPayment(mock.Anything, "123").
			Return(entities.ErrOrderClosed).Once()

		err := h.handleConfirmation(context.Background(), message(valid))
		assert.ErrorIs(t, err, errPoisonMessage)
	})

	t.Run("transient failure is retried and never poison", func(t *testing.T) {
		h, confirmer := newHandler(t)
		dbDown := errors.New("connection refused")
		confirmer.EXPECT().ConfirmPayment(mock.Anything, "123").Return(dbDown).Times(3)

		err := h.handleConfirmation(context.Background(), message(valid))
		require.Error(t, err)
		assert.NotErrorIs(t, err, errPoisonMessage)
	})

	t.Run("transient failure succeeding on retry", func(t *testing.T) {
		h, confirmer := newHandler(t)
		confirmer.EXPECT().ConfirmPayment(mock.Anything, "123").
			Return(errors.New("connection refused")).Once()
		confirmer.EXPECT().ConfirmPayment(mock.Anything, "123").Return(nil).Once()

		require.NoError(t, h.handleConfirmation(context.Background(), message(valid)))
	})
}
