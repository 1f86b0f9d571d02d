package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Without a Redis address every operation is a silent no-op, so handlers
// can call the cache unconditionally.
func TestDisabledCache(t *testing.T) {
	c := New("", "", time.Minute)
	ctx := context.Background()

	assert.False(t, c.Enabled())

	c.Set(ctx, "projects:visible", []byte(`{"success":true}`))

	body, ok := c.Get(ctx, "projects:visible")
	assert.False(t, ok)
	assert.Nil(t, body)

	c.Invalidate(ctx, "projects:")
}

func TestEnabledFlag(t *testing.T) {
	c := New("localhost:6379", "", time.Minute)
	assert.True(t, c.Enabled())
}
