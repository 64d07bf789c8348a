// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"io"
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger set up according to LogLevel, LogFormat and LogFile
//  Note: the returned closer must be called to release a log file; it is never nil
func (o *Config) NewLogger() (log *logrus.Logger, closer func() error, err error) {
	closer = func() error { return nil }
	log = logrus.New()

	// level
	level, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return nil, closer, chk.Err("log level %q is invalid:\n%v", o.LogLevel, err)
	}
	log.SetLevel(level)

	// format
	switch strings.ToLower(o.LogFormat) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, closer, chk.Err("log format %q is invalid", o.LogFormat)
	}

	// output
	var output io.Writer
	switch strings.ToLower(o.LogFile) {
	case "stderr", "":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	default:
		file, e := os.OpenFile(o.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if e != nil {
			return nil, closer, chk.Err("cannot open log file %q:\n%v", o.LogFile, e)
		}
		output = file
		closer = file.Close
	}
	log.SetOutput(output)
	return
}
