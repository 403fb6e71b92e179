package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type PaymentConfirmation struct {
	OrderUID    string `json:"order_uid"`
	Transaction string `json:"transaction"`
	Amount      int    `json:"amount"`
	PaidAt      int64  `json:"paid_at"`
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateConfirmation(orderUID string) PaymentConfirmation {
	return PaymentConfirmation{
		OrderUID:    orderUID,
		Transaction: "txn_" + randomString(16),
		Amount:      rand.Intn(50000) + 1000,
		PaidAt:      time.Now().Unix(),
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "payments",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			// A known UID sometimes, so a few messages actually hit an order.
			orderUID := randomString(36)
			if rand.Intn(3) == 0 {
				orderUID = fmt.Sprintf("order-%d", rand.Intn(10))
			}
			confirmation := generateConfirmation(orderUID)
			data, _ := json.Marshal(confirmation)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("payment confirmation generated", confirmation.OrderUID)
		case <-ctx.Done():
			return
		}
	}
}
