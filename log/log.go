// Package log holds the shared logger of the ppolicyx tool.
package log

import (
	"io"
	"log"
	"os"
)

var Log *log.Logger

// InitLog points Log at stderr, teeing into outFile when given. The file
// handle stays open for the lifetime of the process.
func InitLog(outFile string) {
	Log = log.New(os.Stderr, "ppolicyx: ", log.LstdFlags)

	if outFile != "" {
		logFile, err := os.OpenFile(outFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			Log.Fatalf("[-] Error opening log file: %v", err)
		}

		Log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	}
}
