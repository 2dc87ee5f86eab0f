package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	guestdomain "github.com/vowsuite/vowsuite/internal/guest/domain"
	"gorm.io/gorm"
)

// ErrStaleAssignment means the guest's table reference changed between
// reading it and writing the new one. The caller should re-read and
// retry.
var ErrStaleAssignment = errors.New("stale_assignment")

// AssignmentTransition moves one guest between tables in two phases.
// Begin captures the prior reference from a freshly read guest row;
// Confirm performs the single conditional write; Rollback undoes a
// confirmed write when a later step of the caller's flow fails. The
// write is optimistic: Confirm only succeeds if the row still carries
// the prior reference it was begun with.
type AssignmentTransition struct {
	weddingID snowflake.ID
	guestID   snowflake.ID
	prior     *snowflake.ID
	next      *snowflake.ID
	confirmed bool
}

// BeginTransition captures the guest's current table reference. When
// the target equals the current reference the transition is a no-op and
// Confirm writes nothing.
func BeginTransition(guest *guestdomain.Guest, next *snowflake.ID) *AssignmentTransition {
	return &AssignmentTransition{
		weddingID: guest.WeddingID,
		guestID:   guest.ID,
		prior:     guest.TableID,
		next:      next,
	}
}

// NoOp reports whether the target equals the captured prior reference.
func (t *AssignmentTransition) NoOp() bool {
	return sameRef(t.prior, t.next)
}

// Prior returns the table reference captured at Begin.
func (t *AssignmentTransition) Prior() *snowflake.ID { return t.prior }

// Confirm applies the write. It fails with ErrStaleAssignment when the
// guest row no longer carries the prior reference.
func (t *AssignmentTransition) Confirm(ctx context.Context, db *gorm.DB, guests guestdomain.Repository) error {
	if t.NoOp() || t.confirmed {
		return nil
	}
	ok, err := guests.SetTable(ctx, db, t.weddingID, t.guestID, t.prior, t.next)
	if err != nil {
		return err
	}
	if !ok {
		return ErrStaleAssignment
	}
	t.confirmed = true
	return nil
}

// Rollback restores the prior reference after a confirmed write. It is
// safe to call unconditionally; an unconfirmed transition rolls back to
// nothing.
func (t *AssignmentTransition) Rollback(ctx context.Context, db *gorm.DB, guests guestdomain.Repository) error {
	if !t.confirmed {
		return nil
	}
	ok, err := guests.SetTable(ctx, db, t.weddingID, t.guestID, t.next, t.prior)
	if err != nil {
		return err
	}
	if !ok {
		return ErrStaleAssignment
	}
	t.confirmed = false
	return nil
}

func sameRef(a, b *snowflake.ID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
