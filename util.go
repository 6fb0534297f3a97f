package querit

// StringPtr is a convenience helper for comparing optional string fields.
func StringPtr(s string) *string { return &s }

// Int64Ptr is a convenience helper for comparing optional int64 fields.
func Int64Ptr(v int64) *int64 { return &v }
