package logger

import (
	"bbt-connect/internal/config"
	"bbt-connect/internal/database"

	"go.uber.org/zap"
)

// NewLogger builds the application logger. Console output is always on; a
// secondary async writer mirrors entries into the "logs" collection.
func NewLogger(cfg *config.Config, db *database.MongodbDB) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	// Important: Enable Caller to get Function Name
	zapConfig.EncoderConfig.FunctionKey = "func"

	baseLogger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	dbWriter := NewDBLogWriter(db, cfg)

	// Replace the logger's core with our "Tee" core (sends to both console and DB)
	finalCore := NewDBCore(baseLogger.Core(), dbWriter)

	return zap.New(finalCore, zap.AddCaller()), nil
}
