package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"recruiting-dashboard-backend/config"
	s3client "recruiting-dashboard-backend/s3"
)

func InitS3() {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("S3 client init failed")
		return
	}

	s3client.Client = minioClient
	if err := s3client.MakeResumeBucket(context.Background()); err != nil {
		log.WithError(err).Error("S3 resume bucket check failed")
	}
	log.Info("S3 client initialized")
}
