package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertError_Error_IncludesCategorySeverityAndCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(cause, CategoryParse, SeverityError, "page failed to parse")

	require.Equal(t, "parse (error): page failed to parse: boom", err.Error())
	require.True(t, stderrors.Is(err, cause))
}

func TestConvertError_WithoutCause_OmitsCauseSuffix(t *testing.T) {
	err := New(CategoryConfig, SeverityFatal, "configuration file not found")
	require.Equal(t, "config (fatal): configuration file not found", err.Error())
	require.NoError(t, err.Unwrap())
}

func TestConvertError_WithContext_AccumulatesFields(t *testing.T) {
	err := New(CategoryFileSystem, SeverityError, "document write failed").
		WithContext("path", "/out/x.md").
		WithContext("attempt", 1)

	require.Equal(t, "/out/x.md", err.Context["path"])
	require.Equal(t, 1, err.Context["attempt"])
}

func TestConvertError_IsFatal_TracksSeverity(t *testing.T) {
	require.True(t, ConfigNotFound("config.yaml").IsFatal())
	require.False(t, WriteFailed("/out/x.md", stderrors.New("eperm")).IsFatal())
	require.False(t, ParseFailed("bad.yml", stderrors.New("yaml")).IsFatal())
}
