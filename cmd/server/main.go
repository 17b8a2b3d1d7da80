package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"goltobridge/bridge"
	"goltobridge/cache"
	"goltobridge/config"
	"goltobridge/resolver"
	"goltobridge/workers"
	"goltobridge/workers/handlers"
)

func main() {
	log.Print("Starting LTO bridge facade")

	f, err := os.OpenFile(fmt.Sprintf("logs/log_%s.txt", time.Now().Format("2006-01-02")), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file for writing: %v", err)
	}
	defer f.Close()

	log.SetOutput(f)

	config.Init()

	// the process owns exactly one address cache; pick its backing store
	var store cache.Store
	switch config.Config.Cache.Backend {
	case "file":
		store = cache.NewFileStore(config.Config.Cache.Path)
	case "redis":
		store = cache.NewRedisStore(config.Config.Cache.RedisHost, config.Config.Cache.RedisPort)
	default:
		log.Fatalf("unknown cache backend %q", config.Config.Cache.Backend)
	}

	addressCache, err := cache.Load(store)
	if err != nil {
		log.Fatalf("cannot load address cache: %v", err)
	}

	bridgeClient := bridge.NewClient(bridge.Config{
		BaseURL: config.Config.Bridge.URL,
		Timeout: time.Duration(config.Config.Bridge.TimeoutSec) * time.Second,
	})

	handlers.Setup(resolver.New(addressCache, bridgeClient), bridgeClient)

	// there are 2 worker threads:
	// * poll bridge burn statistics
	// * API serving HTTP server (serves as main worker thread)
	go workers.Worker_stats(bridgeClient)

	workers.Worker_HTTP()
}
