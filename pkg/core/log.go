package core

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide log entry. Commands add fields to it rather than
// creating their own loggers.
var Log = logrus.NewEntry(logrus.StandardLogger())

// ConfigureLogging points the standard logger at stderr and sets its level.
// Logs never go to the command output stream, so quiet mode does not touch them.
func ConfigureLogging(debug bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	Log = logrus.NewEntry(logrus.StandardLogger())
	Log.Debug("Logging at debug level.")
}
