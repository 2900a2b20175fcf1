package testutil

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func init() {
	var isVerbose bool
	for _, arg := range os.Args {
		if arg == "-test.v=true" {
			isVerbose = true
		}
	}

	logrus.SetLevel(logrus.TraceLevel)

	if !isVerbose {
		logrus.StandardLogger().Out = io.Discard
	}
}

// DisableLogging silences the standard logger until reset is called, even
// when tests run verbose.
func DisableLogging() (reset func()) {
	logger := logrus.StandardLogger()
	out, level := logger.Out, logger.GetLevel()

	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return func() {
		logger.SetOutput(out)
		logger.SetLevel(level)
	}
}
