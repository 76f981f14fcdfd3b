//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Публикует тестовое событие в ленту изменений и ждёт, пока воркер его подтвердит.
//
//	go run scripts/test_publish.go -redis localhost:6379
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	stream := flag.String("stream", domain.StreamPropertyChanges, "Change stream")
	group := flag.String("group", "property-change-audit", "Worker consumer group")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	now := time.Now()
	id := uuid.NewString()
	event := domain.PropertyEvent{
		Type:       domain.PropertyCreated,
		PropertyID: id,
		Property: &domain.Property{
			ID: id,
			PropertyData: domain.PropertyData{
				Title:       "테스트 매물",
				Address:     "서울시 중구 세종대로 110",
				Description: "스크립트로 발행한 이벤트",
				Type:        domain.PropertyTypeApartment,
				Deal:        domain.SaleDeal{Price: 15000},
				Area:        84,
				Coordinates: domain.Coordinates{Lat: 37.5665, Lng: 126.978},
			},
			CreatedAt: now,
		},
		OccurredAt: now,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	messageID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: *stream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", *stream)
	fmt.Printf("   Message ID: %s\n", messageID)
	fmt.Printf("   Property ID: %s\n", id)

	fmt.Printf("\nWaiting for %s to acknowledge...\n", *group)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout: is the worker running with WORKER_ENABLED=true?")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, *stream).Result()
			if err != nil {
				continue
			}
			for _, g := range groups {
				if g.Name != *group {
					continue
				}
				// группа дочитала поток и ничего не висит в pending
				if g.Lag == 0 && g.Pending == 0 {
					fmt.Println("Event acknowledged by worker")
					return
				}
			}
		}
	}
}
