package strategy

import (
	"os"
	"testing"

	"github.com/iWorld-y/trendify/app/trendify/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}
