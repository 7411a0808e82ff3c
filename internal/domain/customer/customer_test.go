package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCustomer_DefaultsName(t *testing.T) {
	c := NewCustomer("  ", "a@b.co", "", false, time.Now())
	assert.Equal(t, "Unknown", c.Name())
	assert.Equal(t, "a@b.co", c.Email())
}

func TestRefresh(t *testing.T) {
	c := NewCustomer("Ann", "a@b.co", "", true, time.Now())

	c.Refresh("", false)
	assert.Equal(t, "Ann", c.Name(), "blank hint keeps the name")
	assert.False(t, c.IsVIP(), "VIP flag always follows the hint")

	c.Refresh("Ann Lee", true)
	assert.Equal(t, "Ann Lee", c.Name())
	assert.True(t, c.IsVIP())
}

func TestAdoptEmail(t *testing.T) {
	c := NewCustomer("", "", "+15550001", false, time.Now())

	c.AdoptEmail(" ann@example.com ")
	assert.Equal(t, "ann@example.com", c.Email())

	c.AdoptEmail("other@example.com")
	assert.Equal(t, "ann@example.com", c.Email(), "existing address wins")
}
