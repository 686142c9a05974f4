package email

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jordanlanch/squadscore/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "SquadScore", "https://app.squadscore.io", "")
	assert.False(t, svc.useSendGrid)
	assert.Equal(t, "from@example.com", svc.fromEmail)
	assert.Equal(t, "SquadScore", svc.fromName)
	assert.Equal(t, "https://app.squadscore.io", svc.baseURL)
}

func TestNewService_SendGridMode(t *testing.T) {
	svc := NewService("from@example.com", "SquadScore", "https://app.squadscore.io", "SG.test-key")
	assert.True(t, svc.useSendGrid)
	assert.Equal(t, "SG.test-key", svc.sendGridKey)
}

func TestSendVerificationEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "SquadScore", "https://app.squadscore.io", "")

	err := svc.SendVerificationEmail("user@example.com", "Test User", "abc123token")
	assert.NoError(t, err, "Console mode should not error")
}

func TestSendWelcomeEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "SquadScore", "https://app.squadscore.io", "")

	err := svc.SendWelcomeEmail("user@example.com", "Test User")
	assert.NoError(t, err, "Console mode should not error")
}

func TestSendPaymentReceiptEmail_ConsoleMode(t *testing.T) {
	svc := NewService("from@example.com", "SquadScore", "https://app.squadscore.io", "")

	err := svc.SendPaymentReceiptEmail("user@example.com", "Test User", "pro", 2900, "usd")
	assert.NoError(t, err, "Console mode should not error")
}

func TestCheckResendCooldown_NoCache(t *testing.T) {
	svc := NewService("from@example.com", "SquadScore", "https://app.squadscore.io", "")

	allowed, err := svc.CheckResendCooldown(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.True(t, allowed, "Without a cache the cooldown never blocks")
}

func TestCheckResendCooldown_Blocks(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	defer client.Close()

	svc := NewService("from@example.com", "SquadScore", "https://app.squadscore.io", "")
	svc.SetResendCooldown(client, time.Minute)

	ctx := context.Background()

	allowed, err := svc.CheckResendCooldown(ctx, "user@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)

	// Second attempt inside the window is blocked
	allowed, err = svc.CheckResendCooldown(ctx, "user@example.com")
	require.NoError(t, err)
	assert.False(t, allowed)

	// A different address has its own window
	allowed, err = svc.CheckResendCooldown(ctx, "other@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)

	mr.FastForward(2 * time.Minute)

	allowed, err = svc.CheckResendCooldown(ctx, "user@example.com")
	require.NoError(t, err)
	assert.True(t, allowed)
}
