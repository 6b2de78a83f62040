package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	AWS      AWSConfig
	Cognito  CognitoConfig
	S3       S3Config
	SQS      SQSConfig
	DynamoDB DynamoDBConfig
	Upload   UploadConfig
}

type ServerConfig struct {
	Host string
	Port string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

type CognitoConfig struct {
	UserPoolID string
	ClientID   string
}

type S3Config struct {
	BucketName    string
	ZipBucketName string
}

type SQSConfig struct {
	QueueURL string
}

type DynamoDBConfig struct {
	TableName string
	Endpoint  string // set for local DynamoDB, empty in AWS
}

type UploadConfig struct {
	MaxFileSize int64 // bytes
	URLExpiry   time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "3000"),
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			SessionToken:    getEnv("AWS_SESSION_TOKEN", ""),
		},
		Cognito: CognitoConfig{
			UserPoolID: getEnv("COGNITO_USER_POOL_ID", ""),
			ClientID:   getEnv("COGNITO_CLIENT_ID", ""),
		},
		S3: S3Config{
			BucketName:    getEnv("S3_BUCKET_NAME", "fiapx-video-upload-bucket"),
			ZipBucketName: getEnv("S3_ZIP_BUCKET_NAME", "fiapx-video-fps-bucket"),
		},
		SQS: SQSConfig{
			QueueURL: getEnv("SQS_QUEUE_URL", ""),
		},
		DynamoDB: DynamoDBConfig{
			TableName: getEnv("DYNAMODB_TABLE_NAME", "users"),
			Endpoint:  getEnv("DYNAMODB_ENDPOINT", ""),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 10*1024*1024*1024), // 10GB
			URLExpiry:   getEnvAsDuration("UPLOAD_URL_EXPIRY", time.Hour),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
