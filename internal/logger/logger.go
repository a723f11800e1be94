package logger

import (
	"os"

	"go.uber.org/zap"
)

var Log = zap.NewNop()

func Init() {
	var err error
	if os.Getenv("DEV_LOG") != "" {
		Log, err = zap.NewDevelopment()
	} else {
		Log, err = zap.NewProduction()
	}
	if err != nil {
		Log = zap.NewNop()
	}
}

func Sync() {
	Log.Sync()
}
