package log

// Field keys shared by the packages that log.
const (
	FieldKeyQuery  = "query"
	FieldKeyOrigin = "origin"
	FieldKeyItem   = "item"
	FieldKeyCount  = "count"
)

// Fields type, used to pass to `WithFields`.
type Fields map[string]any
