package workers

import (
	"context"
	"log"
	"time"

	"goltobridge/bridge"
	"goltobridge/config"
	"goltobridge/stats"
)

func Worker_stats(client *bridge.Client) {
	for !WorkerShutdown {
		// poll before the first interval elapses so /stats is usable soon
		// after boot
		resp, err := client.Stats(context.Background())
		if err != nil {
			log.Printf("Error fetching bridge stats: %s", err.Error())
		} else {
			stats.Record(resp.Derive())
		}

		time.Sleep(time.Duration(config.Config.Stats.PollIntervalSec) * time.Second)
	}
}
