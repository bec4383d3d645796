package logging

import (
	"testing"

	"selector/internal/core/domain/logging"

	"github.com/stretchr/testify/require"
)

func TestPrepareArgs(t *testing.T) {
	args := prepareArgs(logging.Entry("accountId", 1), logging.Entry("username", "ada"))

	require.Equal(t, []interface{}{"accountId", 1, "username", "ada"}, args)
}

func TestNewZapLoggerFallsBackOnUnknownLevel(t *testing.T) {
	log := NewZapLogger("not-a-level")
	require.NotNil(t, log)
}
