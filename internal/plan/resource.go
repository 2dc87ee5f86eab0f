package plan

import (
	"errors"
	"fmt"
	"strings"
)

// ResourceKind enumerates the wedding resource collections subject to
// plan ceilings. The set is closed: an unrecognized kind is a
// programming error, never a silently unlimited resource.
type ResourceKind string

const (
	ResourceTasks         ResourceKind = "tasks"
	ResourceBudgetLines   ResourceKind = "budget_lines"
	ResourceVendors       ResourceKind = "vendors"
	ResourceGuests        ResourceKind = "guests"
	ResourceVenues        ResourceKind = "venues"
	ResourceSeatingTables ResourceKind = "seating_tables"
)

// ErrUnknownResourceKind reports a resource kind outside the closed set.
var ErrUnknownResourceKind = errors.New("unknown_resource_kind")

// ResourceKinds lists every known kind, in catalog order.
func ResourceKinds() []ResourceKind {
	return []ResourceKind{
		ResourceTasks,
		ResourceBudgetLines,
		ResourceVendors,
		ResourceGuests,
		ResourceVenues,
		ResourceSeatingTables,
	}
}

// ParseResourceKind validates a raw kind string against the closed set.
func ParseResourceKind(raw string) (ResourceKind, error) {
	kind := ResourceKind(strings.ToLower(strings.TrimSpace(raw)))
	switch kind {
	case ResourceTasks, ResourceBudgetLines, ResourceVendors,
		ResourceGuests, ResourceVenues, ResourceSeatingTables:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownResourceKind, raw)
	}
}
