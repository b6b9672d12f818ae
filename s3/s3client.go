package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"

	"recruiting-dashboard-backend/config"
)

var Client *minio.Client

// MakeResumeBucket creates the resume bucket when it does not exist yet.
func MakeResumeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.ResumeBucket
	location := "us-east-1"
	exists, err := Client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}
