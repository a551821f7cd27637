package main

import (
	"github.com/Gayatri-ch/UniPay/config"
	"github.com/Gayatri-ch/UniPay/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
