package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/essencia/internal/models"
)

func TestPaymentAlwaysSucceedsAfterDelay(t *testing.T) {
	var slept time.Duration
	svc := NewPaymentServiceWithSleeper(2*time.Second, func(d time.Duration) { slept = d })

	err := svc.Process(context.Background(), decimal.RequireFromString("278.64"))

	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, slept)
}

func validMessage() models.ContactMessage {
	return models.ContactMessage{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Order question",
		Message: "Where is my perfume?",
	}
}

func TestContactValidateAcceptsCompleteMessage(t *testing.T) {
	svc := NewContactServiceWithSleeper(0, func(time.Duration) {})
	assert.Empty(t, svc.Validate(validMessage()))
}

func TestContactValidateRequiredFields(t *testing.T) {
	svc := NewContactServiceWithSleeper(0, func(time.Duration) {})

	errs := svc.Validate(models.ContactMessage{})
	assert.Equal(t, "Name is required", errs["name"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Subject is required", errs["subject"])
	assert.Equal(t, "Message is required", errs["message"])
}

func TestContactValidateRejectsMalformedEmail(t *testing.T) {
	svc := NewContactServiceWithSleeper(0, func(time.Duration) {})

	msg := validMessage()
	msg.Email = "not-an-address"
	errs := svc.Validate(msg)
	assert.Equal(t, "Email is invalid", errs["email"])
}

func TestContactSubmitStoresMessage(t *testing.T) {
	var slept time.Duration
	svc := NewContactServiceWithSleeper(2*time.Second, func(d time.Duration) { slept = d })

	received := svc.Submit(validMessage())

	assert.Equal(t, 2*time.Second, slept)
	assert.False(t, received.ReceivedAt.IsZero())
	require.Len(t, svc.Messages(), 1)
	assert.Equal(t, "Order question", svc.Messages()[0].Subject)
}
