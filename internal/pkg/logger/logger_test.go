package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"storefront/internal/pkg/logger"
)

func TestZapLogger_WritesFieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := logger.FromZap(zap.New(core))

	log.Info("gate decidiu", map[string]interface{}{"user_id": "u1", "destination": "/home"})
	log.Error("falha remota", errors.New("timeout"))

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "gate decidiu", entries[0].Message)
	assert.Equal(t, "u1", entries[0].ContextMap()["user_id"])
	assert.Equal(t, "timeout", entries[1].ContextMap()["error"])
}

func TestZapLogger_RespectsLevel(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := logger.FromZap(zap.New(core))

	log.Debug("não deve aparecer", nil)
	log.Warn("aparece", nil)

	assert.Equal(t, 1, logs.Len())
}
