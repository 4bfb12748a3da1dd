// File: utils/constants.go
package utils

import "time"

// MemberSessionPrefix is the prefix used for Redis member session keys.
const MemberSessionPrefix = "memberSession:"

// TermSessionPrefix is the prefix used for Redis term-booking wizard keys.
const TermSessionPrefix = "termSession:"

// TermSessionTTL is the time-to-live for a term-booking wizard session.
// Braincore holds the underlying seat reservations for the same window.
const TermSessionTTL = 30 * time.Minute

// ScheduleCacheTTL is the time-to-live for cached schedule snapshots.
const ScheduleCacheTTL = 2 * time.Minute

// ContentCacheTTL is the time-to-live for cached content lists.
const ContentCacheTTL = 10 * time.Minute
