package logx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagehq/travelmcp/logx"
	"github.com/voyagehq/travelmcp/types"
)

func TestLoggersSatisfyInterface(t *testing.T) {
	var _ types.Logger = logx.NewDefaultLogger()

	zl, err := logx.NewZapLogger(false)
	require.NoError(t, err)
	var _ types.Logger = zl

	prod, err := logx.NewZapLogger(true)
	require.NoError(t, err)
	assert.NotNil(t, prod)
}
