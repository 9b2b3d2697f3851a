package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func init() {
	InitLoggers()
}

// InitLoggers sets up the shared info and error loggers. Output goes to a
// rotating file and to stdout so container logs stay usable.
func InitLoggers() {
	if InfoLogger != nil && ErrorLogger != nil {
		return
	}

	fileWriter := &lumberjack.Logger{
		Filename:   "logs/app.log",
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	InfoLogger = logrus.New()
	InfoLogger.SetOutput(io.MultiWriter(os.Stdout, fileWriter))
	InfoLogger.SetLevel(logrus.InfoLevel)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	ErrorLogger = logrus.New()
	ErrorLogger.SetOutput(io.MultiWriter(os.Stderr, fileWriter))
	ErrorLogger.SetLevel(logrus.WarnLevel)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}
