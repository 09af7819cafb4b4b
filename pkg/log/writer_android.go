//go:build android

package log

/*
#cgo LDFLAGS: -llog

#include <android/log.h>
#include <stdlib.h>

static void ember_log_write(const char* tag, const char* msg) {
	__android_log_write(ANDROID_LOG_INFO, tag, msg);
}
*/
import "C"

import (
	"io"
	"unsafe"
)

// logcatWriter forwards each log line to the Android log buffer. Process
// stderr is discarded by the platform, so this is the only way output
// becomes visible in logcat.
type logcatWriter struct {
	tag *C.char
}

func platformWriter(tag string) io.Writer {
	// The tag is retained for the process lifetime; logging outlives any
	// single activity instance.
	return &logcatWriter{tag: C.CString(tag)}
}

func (w *logcatWriter) Write(p []byte) (int, error) {
	msg := C.CString(string(p))
	defer C.free(unsafe.Pointer(msg))
	C.ember_log_write(w.tag, msg)
	return len(p), nil
}
