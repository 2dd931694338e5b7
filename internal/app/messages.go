package app

import "time"

// TickMsg drives one pass of the device's cooperative schedule.
type TickMsg time.Time
