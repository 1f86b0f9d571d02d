package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	for _, s := range []Status{StatusNew, StatusContacted, StatusBooked, StatusArchived} {
		assert.True(t, IsValid(s), string(s))
	}

	for _, s := range []Status{"", "done", "NEW", "pending"} {
		assert.False(t, IsValid(s), string(s))
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusNew, InitialStatus())
}
