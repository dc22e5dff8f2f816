package services

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentService simulates a payment gateway. Processing waits out a fixed
// delay and then succeeds; there is no failure path and no cancellation
// surface, matching the storefront's checkout contract.
type PaymentService struct {
	delay time.Duration
	sleep func(time.Duration)
}

// NewPaymentService creates a gateway with the given processing delay.
func NewPaymentService(delay time.Duration) *PaymentService {
	return &PaymentService{delay: delay, sleep: time.Sleep}
}

// NewPaymentServiceWithSleeper injects the sleep function, so tests run
// without real timers.
func NewPaymentServiceWithSleeper(delay time.Duration, sleep func(time.Duration)) *PaymentService {
	return &PaymentService{delay: delay, sleep: sleep}
}

// Process settles the given amount. It always succeeds after the delay.
func (s *PaymentService) Process(ctx context.Context, amount decimal.Decimal) error {
	s.sleep(s.delay)
	log.Printf("[Payment] Processed simulated payment of %s", amount.StringFixed(2))
	return nil
}
