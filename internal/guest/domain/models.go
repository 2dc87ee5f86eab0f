// Package domain contains persistence models for wedding guests.
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
)

// RSVPStatus is the guest's reply state.
type RSVPStatus string

const (
	RSVPPending  RSVPStatus = "pending"
	RSVPAccepted RSVPStatus = "accepted"
	RSVPDeclined RSVPStatus = "declined"
)

var ErrInvalidRSVP = errors.New("invalid_rsvp")

// ParseRSVPStatus accepts only the closed reply set.
func ParseRSVPStatus(value string) (RSVPStatus, error) {
	switch RSVPStatus(strings.ToLower(strings.TrimSpace(value))) {
	case RSVPPending:
		return RSVPPending, nil
	case RSVPAccepted:
		return RSVPAccepted, nil
	case RSVPDeclined:
		return RSVPDeclined, nil
	}
	return "", ErrInvalidRSVP
}

// Guest is one invitation party. Adults and Kids count the people the
// invitation covers; seat math sums both. TableID is a weak reference
// into seating_tables and is nulled when the table goes away.
type Guest struct {
	ID          snowflake.ID  `gorm:"primaryKey" json:"id"`
	WeddingID   snowflake.ID  `gorm:"not null;index" json:"wedding_id"`
	FirstName   string        `gorm:"type:text;not null" json:"first_name"`
	LastName    string        `gorm:"type:text" json:"last_name,omitempty"`
	Adults      int           `gorm:"not null;default:1" json:"adults"`
	Kids        int           `gorm:"not null;default:0" json:"kids"`
	RSVP        string        `gorm:"type:text;not null;default:'pending'" json:"rsvp"`
	DietaryNote string        `gorm:"type:text" json:"dietary_note,omitempty"`
	TableID     *snowflake.ID `gorm:"index" json:"table_id,omitempty"`
	CreatedAt   time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Guest) TableName() string { return "guests" }

// Seats is the number of chairs this party occupies.
func (g Guest) Seats() int { return g.Adults + g.Kids }
