package models

import "time"

// AuditLogEntry represents a single administrative or mutating action
type AuditLogEntry struct {
	ID        int64
	Timestamp time.Time
	Actor     string
	Action    string
	Detail    string
}
