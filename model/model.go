package model

import (
	"fmt"
	"time"
)

type ItemID string

// String satisfies [fmt.Stringer].
func (i ItemID) String() string {
	return string(i)
}

var _ fmt.Stringer = ItemID("")

// Item is a single entry in the paginated item listing.
type Item struct {
	ID      ItemID
	Name    string
	Created time.Time
}

// ItemFilter narrows down the items in a listing.
type ItemFilter struct {
	// Query matches item names containing it, case-insensitively. Empty matches everything.
	Query string
}
