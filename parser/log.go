package parser

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
)

type traceFrame string

// enterf logs entry into a parse routine at trace level and returns a frame
// whose exitf logs the outcome. Pointer args to exitf are dereferenced at
// exit time so deferred calls see final values.
func enterf(format string, args ...interface{}) traceFrame {
	if !logrus.IsLevelEnabled(logrus.TraceLevel) {
		return ""
	}
	f := traceFrame(fmt.Sprintf(format, args...))
	logrus.Tracef("--> %s", string(f))
	return f
}

func (f traceFrame) exitf(format string, args ...interface{}) {
	if !logrus.IsLevelEnabled(logrus.TraceLevel) {
		return
	}
	for i, a := range args {
		if v := reflect.ValueOf(a); v.Kind() == reflect.Ptr && !v.IsNil() {
			args[i] = v.Elem().Interface()
		}
	}
	logrus.Tracef("<-- %s: %s", string(f), fmt.Sprintf(format, args...))
}
