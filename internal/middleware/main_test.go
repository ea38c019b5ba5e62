package middleware

import (
	"os"
	"testing"

	"karondoran-server/internal/testutils"
)

func TestMain(m *testing.M) {
	cleanup, err := testutils.InitTestConfig("middleware", "middleware_test_secret", nil)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	cleanup()
	os.Exit(code)
}
