package service

import (
	"os"
	"testing"

	"bankist/logger"
)

// TestMain runs setup before any tests in this package are executed.
func TestMain(m *testing.M) {
	logger.Init()
	logger.SetLevel("error")
	os.Exit(m.Run())
}
