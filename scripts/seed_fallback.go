//go:build ignore

// Manual test helper: writes a sample place collection into the redis
// fallback slot, so the recovery path (stop the backend, restart the
// service) and the legacy-migration path can be exercised by hand.
//
// Usage:
//
//	go run scripts/seed_fallback.go -addr localhost:6379 -slot places:fallback
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type calendarDate string

type place struct {
	LocalID          string       `json:"id,omitempty"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Coordinates      [2]float64   `json:"coordinates"`
	Status           string       `json:"status"`
	PlannedDate      calendarDate `json:"plannedDate,omitempty"`
	VisitDate        calendarDate `json:"visitDate,omitempty"`
	VisitDescription string       `json:"visitDescription,omitempty"`
}

func main() {
	addr := flag.String("addr", "localhost:6379", "redis address")
	db := flag.Int("db", 0, "redis database")
	slot := flag.String("slot", "places:fallback", "fallback slot key")
	flag.Parse()

	places := []place{
		{
			LocalID:          "legacy-natal",
			Name:             "Natal",
			Description:      "Beaches and dunes on the northeastern coast.",
			Coordinates:      [2]float64{-5.7945, -35.211},
			Status:           "visited",
			VisitDate:        "2023-12-15",
			VisitDescription: "Buggy ride through the dunes, unforgettable.",
		},
		{
			LocalID:     "legacy-gramado",
			Name:        "Gramado",
			Description: "Mountain town in the Serra Gaúcha.",
			Coordinates: [2]float64{-29.3747, -50.8764},
			Status:      "planned",
			PlannedDate: "2024-07-20",
		},
		{
			LocalID:     "legacy-bonito",
			Name:        "Bonito",
			Description: "Crystal-clear rivers and caves.",
			Coordinates: [2]float64{-21.1261, -56.4836},
			Status:      "planned",
			PlannedDate: "2025-03-01",
		},
	}

	payload, err := json.Marshal(places)
	if err != nil {
		log.Fatalf("marshal places: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: *addr, DB: *db})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("connect to redis at %s: %v", *addr, err)
	}

	if err := client.Set(ctx, *slot, payload, 0).Err(); err != nil {
		log.Fatalf("write fallback slot: %v", err)
	}

	fmt.Printf("Wrote %d places to %s\n", len(places), *slot)
}
