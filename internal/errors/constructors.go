package errors

// Convenience constructors for the converter's recurring error shapes.

// Config errors

func ConfigNotFound(path string) *ConvertError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigInvalid(path string, cause error) *ConvertError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

// Input errors (non-fatal: the offending file is skipped)

func ParseFailed(file string, cause error) *ConvertError {
	return Wrap(cause, CategoryParse, SeverityError, "page failed to parse").
		WithContext("file", file)
}

// Output errors

func OutputDirError(dir string, cause error) *ConvertError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output directory unavailable").
		WithContext("directory", dir)
}

func InputDirError(dir string, cause error) *ConvertError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "input directory unreadable").
		WithContext("directory", dir)
}

// WriteFailed is non-fatal: the offending record is skipped.
func WriteFailed(path string, cause error) *ConvertError {
	return Wrap(cause, CategoryFileSystem, SeverityError, "document write failed").
		WithContext("path", path)
}

// MalformedDocument is non-fatal: reported by the verify/check paths.
func MalformedDocument(file, reason string) *ConvertError {
	return New(CategoryRender, SeverityError, "generated document malformed").
		WithContext("file", file).
		WithContext("reason", reason)
}
