package redis

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var Client *goredis.Client

const cacheTTL = 30 * time.Minute

/*
* Connect to redis with the address from env
* Cache is best effort,a failed ping only logs
 */
func Connect() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Client = goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Ping(ctx).Err(); err != nil {
		log.Println("Redis not reachable, continuing without cache:", err)
	}
}

func SetCache(ctx context.Context, key string, value interface{}) error {
	if Client == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Client.Set(ctx, key, payload, cacheTTL).Err()
}

/*
* Returns false when the key is missing or redis is down
 */
func GetCache(ctx context.Context, key string, dest interface{}) bool {
	if Client == nil {
		return false
	}
	payload, err := Client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		log.Println("Error while unmarshalling cached value:", err)
		return false
	}
	return true
}

func DeleteCache(ctx context.Context, key string) error {
	if Client == nil {
		return nil
	}
	return Client.Del(ctx, key).Err()
}
