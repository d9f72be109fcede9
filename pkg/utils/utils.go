package utils

import (
	"github.com/sirupsen/logrus"
)

// IsInterfaceName accepts the names the kernel allows for network
// interfaces: at most 15 bytes of letters, digits, '-', '_' and '.'.
func IsInterfaceName(s string) bool {
	if s == "" || len(s) > 15 || s == "." || s == ".." {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '-' && r != '_' && r != '.' {
			return false
		}
	}
	return true
}

// OrStandardLogger lets components take an optional logger.
func OrStandardLogger(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		return logrus.StandardLogger()
	}
	return log
}
