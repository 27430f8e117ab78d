// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knutkj/onenote-debug-add-in/src/logger"
)

func TestCLILogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	log.Printf("simulated %d events", 7)
	log.Println("done")

	assert.Equal(t, "simulated 7 events\ndone\n", buf.String())
}

func TestQuietLogger(t *testing.T) {
	log := logger.NewQuietLogger()

	assert.NotPanics(t, func() {
		log.Printf("dropped %s", "message")
		log.Println("dropped")
		log.SetOutput(&bytes.Buffer{})
	})
}

func TestLoggerInterface(t *testing.T) {
	var _ logger.Logger = logger.NewCLILogger()
	var _ logger.Logger = logger.NewQuietLogger()
}
