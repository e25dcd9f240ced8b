package configs

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

func OpenRedis() (*redis.Client, error) {

	dbIndex, err := strconv.Atoi(LoadENV.RedisDB)
	if err != nil {
		dbIndex = 0
	}

	client := redis.NewClient(&redis.Options{
		Addr:     LoadENV.RedisAddr,
		Password: LoadENV.RedisPassword,
		DB:       dbIndex,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", LoadENV.RedisAddr, err)
	}

	log.Println("✅ Redis connection successful!")
	return client, nil
}
