package logflags

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func resetFlags() {
	check = false
	deny = false
	harness = false
}

func TestSetupParsesComponents(t *testing.T) {
	defer resetFlags()
	if err := Setup(true, "check,harness", ""); err != nil {
		t.Fatal(err)
	}
	if !Check() || !Harness() {
		t.Errorf("expected check and harness enabled, got check=%v harness=%v", Check(), Harness())
	}
	if Deny() {
		t.Error("deny should not be enabled")
	}
}

func TestSetupDefaultComponent(t *testing.T) {
	defer resetFlags()
	if err := Setup(true, "", ""); err != nil {
		t.Fatal(err)
	}
	if !Check() {
		t.Error("expected the check component to be the default")
	}
}

func TestSetupLogOutputWithoutLog(t *testing.T) {
	defer resetFlags()
	if err := Setup(false, "deny", ""); err == nil {
		t.Fatal("expected an error when --log-output is given without --log")
	}
}

func TestDisabledLoggerLevel(t *testing.T) {
	resetFlags()
	logger := CheckLogger()
	if logger.Logger.Level != logrus.PanicLevel {
		t.Errorf("disabled logger should be at panic level, got %v", logger.Logger.Level)
	}
	check = true
	defer resetFlags()
	logger = CheckLogger()
	if logger.Logger.Level != logrus.DebugLevel {
		t.Errorf("enabled logger should be at debug level, got %v", logger.Logger.Level)
	}
}
