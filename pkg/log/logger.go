/**
 *
 * (c) Copyright Ascensio System SIA 2023
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package log

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/woocommerce/checkout-events/pkg/config"
)

// Logger is a generic logger interface.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
}

// EmptyLogger discards everything.
type EmptyLogger struct{}

// NewEmptyLogger is an empty logger constructor.
func NewEmptyLogger() Logger {
	return EmptyLogger{}
}

func (l EmptyLogger) Debugf(format string, args ...interface{}) {}
func (l EmptyLogger) Infof(format string, args ...interface{})  {}
func (l EmptyLogger) Warnf(format string, args ...interface{})  {}
func (l EmptyLogger) Errorf(format string, args ...interface{}) {}
func (l EmptyLogger) Fatalf(format string, args ...interface{}) {}
func (l EmptyLogger) Debug(args ...interface{})                 {}
func (l EmptyLogger) Info(args ...interface{})                  {}
func (l EmptyLogger) Warn(args ...interface{})                  {}
func (l EmptyLogger) Error(args ...interface{})                 {}
func (l EmptyLogger) Fatal(args ...interface{})                 {}

// DefaultLogger is a golang log package Logger implementation.
// It is used before the logrus logger can be configured.
type DefaultLogger struct {
	out   *log.Logger
	fatal *log.Logger
	name  string
	level LogLevel
}

// NewDefaultLogger is a golang log package Logger constructor.
func NewDefaultLogger(config *config.LoggerConfig) Logger {
	return newDefaultLogger(os.Stdout, os.Stderr, config)
}

func newDefaultLogger(out, fatal io.Writer, config *config.LoggerConfig) DefaultLogger {
	level := LogLevel(config.Logger.Level)
	if level == 0 {
		level = LEVEL_WARNING
	}

	return DefaultLogger{
		out:   log.New(out, "", log.Ldate|log.Ltime|log.Lshortfile),
		fatal: log.New(fatal, "", log.Ldate|log.Ltime|log.Llongfile),
		name:  config.Logger.Name,
		level: level,
	}
}

func (l DefaultLogger) print(level LogLevel, tag, msg string) {
	if l.level > level {
		return
	}

	l.out.Output(3, fmt.Sprintf("[%s - %s]: %s", tag, l.name, msg))
}

func (l DefaultLogger) Debugf(format string, args ...interface{}) {
	l.print(LEVEL_DEBUG, "DEBUG", fmt.Sprintf(format, args...))
}

func (l DefaultLogger) Infof(format string, args ...interface{}) {
	l.print(LEVEL_INFO, "INFO", fmt.Sprintf(format, args...))
}

func (l DefaultLogger) Warnf(format string, args ...interface{}) {
	l.print(LEVEL_WARNING, "WARN", fmt.Sprintf(format, args...))
}

func (l DefaultLogger) Errorf(format string, args ...interface{}) {
	l.print(LEVEL_ERROR, "ERROR", fmt.Sprintf(format, args...))
}

func (l DefaultLogger) Fatalf(format string, args ...interface{}) {
	l.fatal.Fatalf("[FATAL - %s]: "+format, append([]interface{}{l.name}, args...)...)
}

func (l DefaultLogger) Debug(args ...interface{}) {
	l.print(LEVEL_DEBUG, "DEBUG", fmt.Sprint(args...))
}

func (l DefaultLogger) Info(args ...interface{}) {
	l.print(LEVEL_INFO, "INFO", fmt.Sprint(args...))
}

func (l DefaultLogger) Warn(args ...interface{}) {
	l.print(LEVEL_WARNING, "WARN", fmt.Sprint(args...))
}

func (l DefaultLogger) Error(args ...interface{}) {
	l.print(LEVEL_ERROR, "ERROR", fmt.Sprint(args...))
}

func (l DefaultLogger) Fatal(args ...interface{}) {
	l.fatal.Fatalf("[FATAL - %s]: %s", l.name, fmt.Sprint(args...))
}
