package main

import (
	"chukchukgo/config"
	"chukchukgo/di"
	"chukchukgo/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
