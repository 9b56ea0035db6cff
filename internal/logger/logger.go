package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New は環境に合わせたzapロガーを返す。グローバルには置かず呼び出し側が持ち回る。
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProductionConfig().Build()
	}

	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return config.Build()
}
