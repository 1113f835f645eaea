package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesAppErrorCode(t *testing.T) {
	err := Wrap(LoadFailed("bad file", nil), "loading dataset")
	require.Error(t, err)
	assert.Equal(t, CodeLoadFailed, GetCode(err))
	assert.Contains(t, err.Error(), "loading dataset")
}

func TestWrap_ForeignErrorGetsInternalCode(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), "chart rendering failed")
	require.Error(t, err)
	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestWrap_NilPassesThrough(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
}

func TestGetCode_NonAppError(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(fmt.Errorf("boom")))
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, CodeConfigInvalid, GetCode(ConfigInvalid("bad window size")))
	assert.Equal(t, CodeLoadFailed, GetCode(LoadFailed("file not found", nil)))
	assert.Equal(t, CodeNoDataset, GetCode(NoDataset()))
	assert.Equal(t, CodeUnknownColumn, GetCode(UnknownColumn("age")))
	assert.Equal(t, CodeChartInvalid, GetCode(ChartInvalid("no values")))
	assert.Equal(t, CodeExportFailed, GetCode(ExportFailed(fmt.Errorf("disk full"))))

	assert.Contains(t, UnknownColumn("age").Error(), `"age"`)
}

func TestUnwrap_ExposesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := ExportFailed(cause)
	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "disk full")
}
