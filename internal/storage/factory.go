package storage

import (
	"context"
	"fmt"
	"os"
)

// Open selects a Store implementation using environment variables.
//
//	BLOB_DRIVER: s3|memory (default s3 when BLOB_S3_BUCKET is set, else memory)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("BLOB_DRIVER")
	if driver == "" {
		if os.Getenv("BLOB_S3_BUCKET") != "" {
			driver = string(DriverS3)
		} else {
			driver = string(DriverMemory)
		}
	}
	switch Driver(driver) {
	case DriverS3:
		return OpenS3FromEnv(ctx)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}
