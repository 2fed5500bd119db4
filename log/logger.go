package log

import (
	"io"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02T15:04:05.000"

var (
	// JSONFormat whether logs are printed in json format
	JSONFormat bool

	// stdout is reserved for derived results
	console io.Writer = os.Stderr
)

// SetLogger set log level and format. Logs go to stderr.
func SetLogger(logLevel uint32, jsonFormat, colorFormat bool) {
	JSONFormat = jsonFormat
	logrus.SetOutput(console)
	logrus.SetLevel(logrus.Level(logLevel))
	if jsonFormat {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:     colorFormat,
			DisableColors:   !colorFormat,
			ForceQuote:      true,
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
			DisableSorting:  true,
		})
	}
}

// SetLogFile write logs to rotated files as well as stderr.
// rotation and maxAge are in hours, zero means default (24h, 30 days).
// Colors are disabled since the file shares the formatter with stderr.
func SetLogFile(logFile string, rotation, maxAge uint64) error {
	if logFile == "" {
		return nil
	}
	if rotation == 0 {
		rotation = 24
	}
	if maxAge == 0 {
		maxAge = 720
	}
	writer, err := rotatelogs.New(
		logFile+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logFile),
		rotatelogs.WithRotationTime(time.Duration(rotation)*time.Hour),
		rotatelogs.WithMaxAge(time.Duration(maxAge)*time.Hour),
	)
	if err != nil {
		return err
	}
	if formatter, ok := logrus.StandardLogger().Formatter.(*logrus.TextFormatter); ok {
		formatter.ForceColors = false
		formatter.DisableColors = true
	}
	logrus.SetOutput(io.MultiWriter(console, writer))
	return nil
}

// WithFields build log entry from key value pairs
func WithFields(ctx ...interface{}) *logrus.Entry {
	length := len(ctx)
	if length%2 != 0 {
		Debugf("log fileds number %v is not even", length)
	}
	fields := make(logrus.Fields)
	for k := 0; k+2 <= length; k += 2 {
		key, ok := ctx[k].(string)
		if ok {
			fields[key] = ctx[k+1]
		} else {
			Debugf("log field key '%v' is not string", ctx[k])
		}
	}
	return logrus.WithFields(fields)
}

func Trace(msg string, ctx ...interface{}) {
	WithFields(ctx...).Trace(msg)
}

func Tracef(format string, args ...interface{}) {
	logrus.Tracef(format, args...)
}

func Debug(msg string, ctx ...interface{}) {
	WithFields(ctx...).Debug(msg)
}

func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}

func Info(msg string, ctx ...interface{}) {
	WithFields(ctx...).Info(msg)
}

func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}

func Println(msg ...interface{}) {
	logrus.Println(msg...)
}

func Warn(msg string, ctx ...interface{}) {
	WithFields(ctx...).Warn(msg)
}

func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}

func Error(msg string, ctx ...interface{}) {
	WithFields(ctx...).Error(msg)
}

func Errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}

func Fatal(msg string, ctx ...interface{}) {
	WithFields(ctx...).Fatal(msg)
}

func Fatalf(format string, args ...interface{}) {
	logrus.Fatalf(format, args...)
}

func Panic(msg string, ctx ...interface{}) {
	WithFields(ctx...).Panic(msg)
}

func Panicf(format string, args ...interface{}) {
	logrus.Panicf(format, args...)
}
