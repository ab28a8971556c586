package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultCassandraHost     = "cassandra"
	defaultCassandraPort     = "9042"
	defaultCassandraKeyspace = "estdb"
	defaultCassandraUser     = "cassandra"
	defaultCassandraPassword = "cassandra"

	defaultMinioEndpoint = "minio-server"
	defaultMinioPort     = "9000"
	defaultMinioAccess   = "minioadmin"
	defaultMinioSecret   = "minioadmin"
	defaultMinioBucket   = "uploads"

	defaultUserServiceURL = "http://user-service:5003/api"
)

type Config struct {
	Cassandra CassandraConfig
	Minio     MinioConfig
	Services  ServicesConfig
}

type CassandraConfig struct {
	Host     string
	Port     int
	Keyspace string
	Username string
	Password string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// PublicURL is the address baked into stored file_url values.
func (m MinioConfig) PublicURL() string {
	scheme := "http"
	if m.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, m.Endpoint)
}

type ServicesConfig struct {
	UserServiceURL string
}

// Load reads configuration from the environment. A .env file is applied
// when present, same as the deployment compose files expect.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Cassandra: CassandraConfig{
			Host:     getEnv("CASSANDRA_HOST", defaultCassandraHost),
			Port:     getEnvInt("CASSANDRA_PORT", defaultCassandraPort),
			Keyspace: getEnv("CASSANDRA_KEYSPACE", defaultCassandraKeyspace),
			Username: getEnv("CASSANDRA_USER", defaultCassandraUser),
			Password: getEnv("CASSANDRA_PASSWORD", defaultCassandraPassword),
		},
		Minio: MinioConfig{
			Endpoint: getEnv("MINIO_ENDPOINT", defaultMinioEndpoint) + ":" +
				getEnv("MINIO_PORT", defaultMinioPort),
			AccessKey: getEnv("MINIO_ACCESS_KEY", defaultMinioAccess),
			SecretKey: getEnv("MINIO_SECRET_KEY", defaultMinioSecret),
			Bucket:    getEnv("MINIO_BUCKET", defaultMinioBucket),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Services: ServicesConfig{
			UserServiceURL: getEnv("USER_SERVICE_URL", defaultUserServiceURL),
		},
	}
}

// Port returns the listen port for a service, falling back to the given
// default when PORT is unset.
func Port(def string) string {
	return getEnv("PORT", def)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key, def string) int {
	v := getEnv(key, def)
	n, err := strconv.Atoi(v)
	if err != nil {
		n, _ = strconv.Atoi(def)
	}
	return n
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
