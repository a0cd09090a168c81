package logx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskingCore_RedactsSensitiveFields(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(newMaskingCore(obs)).Sugar()

	logger.Infow("config saved",
		"mnemonic", "bottom drive obey lake curtain smoke basket hold race lonely fit walk",
		"Filebase_Secret", "s3cr3t",
		"bucket", "my-nft-bucket",
	)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, redacted, fields["mnemonic"])
	assert.Equal(t, redacted, fields["Filebase_Secret"])
	assert.Equal(t, "my-nft-bucket", fields["bucket"])
}

func TestMaskingCore_RedactsFieldsAttachedWithWith(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(newMaskingCore(obs)).Sugar().With("secret", "s3cr3t")

	logger.Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, redacted, logs.All()[0].ContextMap()["secret"])
}

func TestMaskingCore_MasksBareHexInMessage(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(newMaskingCore(obs))

	seed := strings.Repeat("ab", 32)
	hash := "0x" + strings.Repeat("cd", 32)
	logger.Info("seed " + seed + " included in " + hash)

	require.Equal(t, 1, logs.Len())
	msg := logs.All()[0].Message
	assert.NotContains(t, msg, seed)
	assert.Contains(t, msg, redacted)
	assert.Contains(t, msg, hash)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"", zapcore.InfoLevel},
		{" WARN ", zapcore.WarnLevel},
		{"err", zapcore.ErrorLevel},
		{"nonsense", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}
