// File: utils/constants.go
package utils

import "time"

// AvailabilityCachePrefix is the prefix used for Redis availability-calendar cache keys.
const AvailabilityCachePrefix = "availability:calendar:"

// AvailabilityCacheTTL is the time-to-live for availability-calendar cache entries.
const AvailabilityCacheTTL = 5 * time.Minute
