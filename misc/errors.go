package misc

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	Fatal Severity = iota
	Error
	Warning
	Info
	Debug
)

// Severity is the logger level an error is reported at.
type Severity int

func (s Severity) String() string {
	names := []string{"Fatal", "Error", "Warning", "Info", "Debug"}
	if s < Fatal || int(s) >= len(names) {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return names[s]
}

// Nothing is the empty argument or reply of an rpc call.
type Nothing struct{}

// CheckError reports a non-nil err through logger and returns whether there was one. Fatal (and
// any unknown severity) exits the process.
func CheckError(err error, logger *bslogger.Logger, severity Severity) bool {
	if err == nil {
		return false
	}
	report(err.Error(), logger, severity)
	return true
}

// CheckErrorf is CheckError with a formatted description of what was being attempted.
func CheckErrorf(err error, logger *bslogger.Logger, severity Severity, format string, values ...interface{}) bool {
	if err == nil {
		return false
	}
	report(fmt.Sprintf("%s: %s", fmt.Sprintf(format, values...), err), logger, severity)
	return true
}

func report(message string, logger *bslogger.Logger, severity Severity) {
	switch severity {
	case Error:
		logger.Error(message)
	case Warning:
		logger.Warning(message)
	case Info:
		logger.Info(message)
	case Debug:
		logger.Debug(message)
	default:
		logger.Fatal(message)
	}
}
