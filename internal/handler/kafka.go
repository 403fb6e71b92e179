package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rentique/rental-service/internal/config"
	"github.com/rentique/rental-service/internal/entities"
	"github.com/rentique/rental-service/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

// errPoisonMessage marks confirmations that can never succeed no matter how
// often they are retried. Only those are routed to the DLQ.
var errPoisonMessage = errors.New("poison message")

type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, orderUID string) error
}

// PaymentConfirmation is the payment-gateway message for a settled rental.
type PaymentConfirmation struct {
	OrderUID    string `json:"order_uid" validate:"required"`
	Transaction string `json:"transaction" validate:"required"`
	Amount      int    `json:"amount" validate:"gte=0"`
	PaidAt      int64  `json:"paid_at"`
}

type kafkaHandler struct {
	dlq       *kafka.Writer
	reader    *kafka.Reader
	logger    *slog.Logger
	validate  *validator.Validate
	confirmer PaymentConfirmer
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, confirmer PaymentConfirmer) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate:  validator.New(),
		confirmer: confirmer,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		start := time.Now()
		if err := h.handleConfirmation(ctx, m); err != nil {
			paymentsFailed.Inc()
			h.logger.Error("failed to handle payment confirmation", slog.Any("error", err))

			// A transient failure stays uncommitted so the group redelivers
			// the confirmation instead of losing it to the DLQ.
			if !errors.Is(err, errPoisonMessage) {
				continue
			}

			// Poison messages go to the DLQ, the writer retries internally.
			if err := h.writeToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			paymentsDLQ.Inc()
		} else {
			paymentsProcessed.Inc()
			paymentProcessingDuration.Observe(time.Since(start).Seconds())
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleConfirmation(ctx context.Context, m kafka.Message) error {
	var confirmation PaymentConfirmation
	if err := json.Unmarshal(m.Value, &confirmation); err != nil {
		return fmt.Errorf("failed to unmarshal payment confirmation: %w: %w", errPoisonMessage, err)
	}

	if err := h.validate.Struct(confirmation); err != nil {
		return fmt.Errorf("invalid payment confirmation: %w: %w", errPoisonMessage, err)
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	err := utils.Retry(cfg, func() error {
		return h.confirmer.ConfirmPayment(ctx, confirmation.OrderUID)
	}, entities.ErrOrderNotFound, entities.ErrOrderClosed)

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		return fmt.Errorf("payment for unknown order %s: %w: %w", confirmation.OrderUID, errPoisonMessage, err)
	case errors.Is(err, entities.ErrOrderClosed):
		return fmt.Errorf("payment for closed order %s: %w: %w", confirmation.OrderUID, errPoisonMessage, err)
	}
	return err
}

func (h *kafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
