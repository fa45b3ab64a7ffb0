// File: utils/constants.go
package utils

import "time"

// AvailabilityCachePrefix is the prefix used for Redis availability cache keys.
const AvailabilityCachePrefix = "availability:"

// AvailabilityCacheTTL is the time-to-live for availability cache entries.
const AvailabilityCacheTTL = time.Minute
