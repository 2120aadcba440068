package constants

import "os"

func getEnv(name string, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func GetOutDir() string {
	return getEnv("OUT_PATH", "./out")
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

func GetDynamoEndpoint() string {
	return getEnv("DYNAMO_ENDPOINT", "http://localhost:8000")
}

func GetDynamoRegion() string {
	return getEnv("DYNAMO_REGION", "localhost")
}

const TunesTable = "barscribe-tunes"

const DefaultBPM = 120

// 960 ticks per quarter note in exported midi files
const TicksPerQuarter = 960

// DynamoDB BatchGetItem takes at most 100 keys, keep requests small
const MaxBatchTunes = 10
