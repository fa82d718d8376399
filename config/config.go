package config

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

const OrdersTopic = "orders"

// DashboardKey is the Redis key holding a restaurant's cached dashboard.
func DashboardKey(restaurantID string) string {
	return "dashboard:" + restaurantID
}

// DashboardGenerationKey counts invalidations of a restaurant's dashboard.
// A dashboard computed under an older generation must not be cached.
func DashboardGenerationKey(restaurantID string) string {
	return DashboardKey(restaurantID) + ":gen"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetDuration accepts Go duration strings ("30s") or plain seconds.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	log.WithField("key", key).Warnf("invalid duration %q, using %s", value, defaultValue)
	return defaultValue
}

func PostgresDSN() string {
	return "host=" + os.Getenv("DB_HOST") + " port=" + os.Getenv("DB_PORT") +
		" user=" + os.Getenv("DB_USER") + " password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + os.Getenv("DB_NAME") + " sslmode=" + GetEnv("DB_SSLMODE", "disable")
}

func MustInitPostgres() *sqlx.DB {
	db, err := sqlx.Open("postgres", PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database: ", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: GetEnv("REDIS_HOST", "localhost") + ":" + GetEnv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis: ", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{GetEnv("KAFKA_BROKER", "localhost:9092")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(GetEnv("KAFKA_BROKER", "localhost:9092")),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		MaxAttempts:  3,
	}
}
