package customer

import (
	"strings"
	"time"
	"unicode/utf8"

	"vidly/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidName  = errs.NewMarked("customer name must be between 5 and 50 characters", errs.ErrInvalidInput)
	ErrInvalidPhone = errs.NewMarked("customer phone must be between 5 and 50 characters", errs.ErrInvalidInput)
)

type Customer struct {
	id        uuid.UUID
	name      string
	phone     string
	isGold    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(name, phone string, isGold bool, now time.Time) (*Customer, error) {
	c := &Customer{id: uuid.New(), createdAt: now}
	if err := c.Update(name, phone, isGold, now); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCustomer(id uuid.UUID, name, phone string, isGold bool, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		phone:     phone,
		isGold:    isGold,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) Update(name, phone string, isGold bool, now time.Time) error {
	name = strings.TrimSpace(name)
	if !within(name, 5, 50) {
		return ErrInvalidName
	}
	phone = strings.TrimSpace(phone)
	if !within(phone, 5, 50) {
		return ErrInvalidPhone
	}
	c.name = name
	c.phone = phone
	c.isGold = isGold
	c.updatedAt = now
	return nil
}

// Snapshot is the copy embedded into rental documents.
func (c *Customer) Snapshot() Snapshot {
	return Snapshot{ID: c.id, Name: c.name, Phone: c.phone, IsGold: c.isGold}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) IsGold() bool         { return c.isGold }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

type Snapshot struct {
	ID     uuid.UUID
	Name   string
	Phone  string
	IsGold bool
}

func within(s string, lo, hi int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}
