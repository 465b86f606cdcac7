// Copyright 2021 weiplanet. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package util

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestCreateLogger(t *testing.T) {
	var buf bytes.Buffer
	Logger.CreateLogger(&buf, false, LevelTrace)
	defer Logger.CreateLogger(&buf, false, slog.LevelInfo)

	msg1 := "trace message"
	Logger.Trace(msg1) // level with a name

	// a level without a name keeps the slog spelling
	levelDebug2 := slog.Level(-6)
	msg2 := "no name debug message"
	Logger.Log(context.Background(), levelDebug2, msg2)

	expect := []string{"level=TRACE", "level=DEBUG-2", msg1, msg2}
	result := buf.String()
	for _, want := range expect {
		if !strings.Contains(result, want) {
			t.Errorf("#test log output expect %q in %q\n", want, result)
		}
	}
}

func TestCreateLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	Logger.CreateLogger(&buf, false, slog.LevelInfo)

	Logger.Debug("should be filtered")
	Logger.Info("should appear")

	result := buf.String()
	if strings.Contains(result, "should be filtered") {
		t.Errorf("#test debug output should be filtered, got %q\n", result)
	}
	if !strings.Contains(result, "should appear") {
		t.Errorf("#test info output missing, got %q\n", result)
	}
}
