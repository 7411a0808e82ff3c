package customer

import (
	"fmt"
	"strings"
	"time"

	"github.com/supporthub/supporthub/internal/shared/constants"
)

// Customer is a contact deduplicated by email, else by phone.
type Customer struct {
	id        uint
	name      string
	email     string
	phone     string
	isVIP     bool
	createdAt time.Time
}

// NewCustomer creates a customer from inbound hints. A blank name becomes
// "Unknown".
func NewCustomer(name, email, phone string, isVIP bool, now time.Time) *Customer {
	name = strings.TrimSpace(name)
	if name == "" {
		name = constants.DefaultCustomerName
	}
	return &Customer{
		name:      name,
		email:     strings.TrimSpace(email),
		phone:     strings.TrimSpace(phone),
		isVIP:     isVIP,
		createdAt: now,
	}
}

func ReconstructCustomer(id uint, name, email, phone string, isVIP bool, createdAt time.Time) *Customer {
	return &Customer{id: id, name: name, email: email, phone: phone, isVIP: isVIP, createdAt: createdAt}
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) IsVIP() bool          { return c.isVIP }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	c.id = id
	return nil
}

// Refresh applies the hints of a new contact: the name only when one was
// given, the VIP flag always.
func (c *Customer) Refresh(name string, isVIP bool) {
	if name = strings.TrimSpace(name); name != "" {
		c.name = name
	}
	c.isVIP = isVIP
}

// AdoptEmail records email on a customer known only by phone. An address
// already on file is kept.
func (c *Customer) AdoptEmail(email string) {
	if c.email == "" {
		c.email = strings.TrimSpace(email)
	}
}
