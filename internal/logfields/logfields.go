package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID     = "run_id"
	KeyFile      = "file"
	KeyPath      = "path"
	KeyDirectory = "directory"
	KeyUID       = "uid"
	KeyDocID     = "doc_id"
	KeyCount     = "count"
	KeyError     = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr     { return slog.String(KeyRunID, id) }
func File(name string) slog.Attr    { return slog.String(KeyFile, name) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Directory(d string) slog.Attr  { return slog.String(KeyDirectory, d) }
func UID(uid string) slog.Attr      { return slog.String(KeyUID, uid) }
func DocID(id string) slog.Attr     { return slog.String(KeyDocID, id) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
