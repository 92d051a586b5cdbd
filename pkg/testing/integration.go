package testing

import (
	"os"
	"testing"
)

// IntegrationEnv enables tests that start containers.
const IntegrationEnv = "TSPERF_INTEGRATION"

// SkipUnlessIntegration skips tb in -short mode and when IntegrationEnv is
// unset.
func SkipUnlessIntegration(tb testing.TB) {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping integration test in short mode")
	}
	if os.Getenv(IntegrationEnv) == "" {
		tb.Skipf("skipping integration test, set %s=1 to run", IntegrationEnv)
	}
}
