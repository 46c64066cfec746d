package underboss

import "time"

// Float64Ptr is a convenience helper for optional numeric filter fields.
func Float64Ptr(v float64) *float64 { return &v }

// IntPtr is a convenience helper for optional integer fields.
func IntPtr(v int) *int { return &v }

// TimePtr is a convenience helper for optional schedule fields.
func TimePtr(t time.Time) *time.Time { return &t }
