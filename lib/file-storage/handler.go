package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"recruiting-dashboard-backend/config"
	s3client "recruiting-dashboard-backend/s3"
)

type Provider interface {
	UploadResume(ctx context.Context, candidateID string, file []byte, fileName string) error
	GetResume(ctx context.Context, candidateID string) (file []byte, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const fileNameMetaKey = "File-Name"

func resumeObjectName(candidateID string) string {
	return fmt.Sprintf("%v/resume", candidateID)
}

func (i impl) UploadResume(ctx context.Context, candidateID string, file []byte, fileName string) error {
	if s3client.Client == nil {
		return errors.New("object storage is not configured")
	}
	_, err := s3client.Client.PutObject(ctx, config.Conf.S3.ResumeBucket, resumeObjectName(candidateID),
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{
			UserMetadata: map[string]string{fileNameMetaKey: fileName},
		})
	if err != nil {
		return errors.Wrap(err, "resume upload failed")
	}
	return nil
}

func (i impl) GetResume(ctx context.Context, candidateID string) ([]byte, string, error) {
	if s3client.Client == nil {
		return nil, "", errors.New("object storage is not configured")
	}
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.ResumeBucket, resumeObjectName(candidateID), minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "resume download failed")
	}
	defer object.Close()

	stat, err := object.Stat()
	if err != nil {
		return nil, "", errors.Wrap(err, "resume not found")
	}
	file, err := io.ReadAll(object)
	if err != nil {
		return nil, "", errors.Wrap(err, "resume read failed")
	}
	fileName := stat.UserMetadata[fileNameMetaKey]
	if fileName == "" {
		fileName = "resume"
	}
	return file, fileName, nil
}
