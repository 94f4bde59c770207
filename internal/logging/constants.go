package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldSource     = "source"
	FieldRow        = "row"
	FieldReason     = "reason"
	FieldStatus     = "status"
	FieldCount      = "count"
	FieldSkipped    = "skipped"
	FieldTotal      = "total"
	FieldDelimiter  = "delimiter"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldDuration   = "duration_ms"
)
