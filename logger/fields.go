package logger

// Standard field names for consistent structured logging across autodoc.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRunID = "run_id"

	// Components
	FieldComponent = "component"

	// Operations
	FieldOperation = "operation"

	// Errors
	FieldError = "error"

	// Files and source positions
	FieldFile      = "file"
	FieldLanguage  = "language"
	FieldNodeType  = "node_type"
	FieldStartByte = "start_byte"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"

	// Generation
	FieldModel    = "model"
	FieldProvider = "provider"
	FieldTokens   = "tokens"
)
