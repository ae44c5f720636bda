// Package logflags routes component debug logging for the antidebug tool.
// Logging is off by default; Setup enables it for the components named in a
// comma separated list.
package logflags

import (
	"errors"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var check = false
var deny = false
var harness = false

var logOut io.WriteCloser

func makeLogger(flag bool, fields logrus.Fields) *logrus.Entry {
	logger := logrus.New().WithFields(fields)
	logger.Logger.Level = logrus.DebugLevel
	if !flag {
		logger.Logger.Level = logrus.PanicLevel
	}
	if logOut != nil {
		logger.Logger.Out = logOut
	}
	return logger
}

// Check returns true if the presence-check layer should log.
func Check() bool {
	return check
}

// CheckLogger returns a logger for the presence-check layer.
func CheckLogger() *logrus.Entry {
	return makeLogger(check, logrus.Fields{"layer": "check"})
}

// Deny returns true if the attach-denial layer should log.
func Deny() bool {
	return deny
}

// DenyLogger returns a logger for the attach-denial layer.
func DenyLogger() *logrus.Entry {
	return makeLogger(deny, logrus.Fields{"layer": "deny"})
}

// Harness returns true if the debugger harness should log.
func Harness() bool {
	return harness
}

// HarnessLogger returns a logger for the debugger harness.
func HarnessLogger() *logrus.Entry {
	return makeLogger(harness, logrus.Fields{"layer": "harness"})
}

var errLogstrWithoutLog = errors.New("--log-output specified without --log")

// Setup sets component logging flags based on the contents of logstr. When
// logDest is non-empty logs go to the named file, or to the file descriptor
// it numbers.
func Setup(logFlag bool, logstr, logDest string) error {
	if logDest != "" {
		n, err := strconv.Atoi(logDest)
		if err == nil {
			logOut = os.NewFile(uintptr(n), "antidebug-logs")
		} else {
			fh, err := os.Create(logDest)
			if err != nil {
				return err
			}
			logOut = fh
		}
		log.SetOutput(logOut)
	}
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if !logFlag {
		log.SetOutput(io.Discard)
		if logstr != "" {
			return errLogstrWithoutLog
		}
		return nil
	}
	if logstr == "" {
		logstr = "check"
	}
	for _, logcmd := range strings.Split(logstr, ",") {
		switch logcmd {
		case "check":
			check = true
		case "deny":
			deny = true
		case "harness":
			harness = true
		}
	}
	return nil
}

// Close closes the file output of the logs, if any.
func Close() {
	if logOut != nil {
		logOut.Close()
	}
}
