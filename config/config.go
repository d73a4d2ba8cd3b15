package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeeSettings mirrors the delivery fee constants so services can convert it
// directly into their own fee type.
type FeeSettings struct {
	Base               float64
	RouteCorrection    float64
	PerKmRate          float64
	FallbackPercentage float64
	FallbackFlat       float64
}

type Settings struct {
	Port string

	BackendURL     string
	BackendRPS     float64
	BackendBurst   int
	BackendTimeout time.Duration

	SessionTTL  time.Duration
	CheckoutTTL time.Duration

	PollProducts    time.Duration
	PollRestaurants time.Duration

	OrdersTopic string

	MongoDatabase  string
	ChatCollection string
	ProofBucket    string
	ProofPublicURL string
	WeekdayLocale  string
	TimeZone       string
	Fees           FeeSettings
}

// Load reads .env when present and falls back to the process environment.
func Load() Settings {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	return Settings{
		Port: getEnv("PORT", "8080"),

		BackendURL:     getEnv("BACKEND_URL", "https://rikoapi.onrender.com/api"),
		BackendRPS:     getEnvFloat("BACKEND_RPS", 20),
		BackendBurst:   getEnvInt("BACKEND_BURST", 10),
		BackendTimeout: getEnvDuration("BACKEND_TIMEOUT", 15*time.Second),

		SessionTTL:  getEnvDuration("SESSION_TTL", 30*24*time.Hour),
		CheckoutTTL: getEnvDuration("CHECKOUT_TTL", 15*time.Minute),

		PollProducts:    getEnvDuration("POLL_PRODUCTS", time.Second),
		PollRestaurants: getEnvDuration("POLL_RESTAURANTS", 2*time.Second),

		OrdersTopic: getEnv("ORDERS_TOPIC", "orders"),

		MongoDatabase:  getEnv("MONGO_DB", "riko"),
		ChatCollection: getEnv("CHAT_COLLECTION", "RikoChat"),
		ProofBucket:    getEnv("MINIO_BUCKET", "riko"),
		ProofPublicURL: getEnv("MINIO_PUBLIC_URL", "http://"+getEnv("MINIO_ENDPOINT", "localhost:9000")),
		WeekdayLocale:  getEnv("WEEKDAY_LOCALE", "es"),
		TimeZone:       getEnv("TZ_NAME", "America/Caracas"),

		Fees: FeeSettings{
			Base:               getEnvFloat("FEE_BASE", 1.5),
			RouteCorrection:    getEnvFloat("FEE_ROUTE_CORRECTION", 1.3),
			PerKmRate:          getEnvFloat("FEE_PER_KM", 0.5),
			FallbackPercentage: getEnvFloat("FEE_FALLBACK_PCT", 0.05),
			FallbackFlat:       getEnvFloat("FEE_FALLBACK_FLAT", 1.5),
		},
	}
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func MustInitMongo(ctx context.Context) *mongo.Client {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(getEnv("MONGO_URI", "mongodb://localhost:27017")))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	return client
}

func MustInitMinio() *minio.Client {
	client, err := minio.New(getEnv("MINIO_ENDPOINT", "localhost:9000"), &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: getEnvBool("MINIO_USE_SSL", false),
	})
	if err != nil {
		log.Fatal("Failed to configure MinIO:", err)
	}

	return client
}

const kafkaBatchTimeout = 10 * time.Millisecond

// NewKafkaWriter writes synchronously; a short batch timeout keeps a single
// order event from waiting for the default one second batch window.
func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: kafkaBatchTimeout,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
