package ntptime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNowFallsBackOnUnreachableServer(t *testing.T) {
	// "invalid." is a reserved TLD that never resolves, so the query fails
	// fast and the client must fall back to the local clock.
	client := NewClient(500*time.Millisecond, nil, nil)

	before := time.Now().UTC()
	result := client.Now(context.Background(), "ntp.invalid")
	after := time.Now().UTC()

	assert.False(t, result.FromNTP)
	assert.Equal(t, time.UTC, result.Time.Location())
	assert.False(t, result.Time.Before(before))
	assert.False(t, result.Time.After(after.Add(time.Second)))
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(0, nil, nil)
	assert.Equal(t, DefaultTimeout, client.timeout)
	assert.NotNil(t, client.logger)
}
