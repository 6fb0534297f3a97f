package querit

// Version is the published SDK version.
// 0.2.0: Add SearchRequestBuilder, MockDoer, and telemetry hooks.
// 0.1.0: Initial client with request filters, typed response accessors,
// and the status-to-error mapping.
const Version = "0.2.0"
