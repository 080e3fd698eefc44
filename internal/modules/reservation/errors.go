package reservation

import "errors"

var (
	// ErrSlotTaken maps the unique (table_layout_id, date, time) index to a
	// conflict the caller can act on.
	ErrSlotTaken = errors.New("table already reserved for this slot")
)
