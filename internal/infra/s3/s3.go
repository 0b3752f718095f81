package infra_s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/happydoodle/core/internal/model"
)

type S3Storage struct {
	client *s3.Client

	prefix     string
	bucketName string
	publicBase string
}

func New(bucketName string, client *s3.Client, prefix string, publicBase string) (*S3Storage, error) {
	storage := S3Storage{
		bucketName: bucketName,
		client:     client,
		prefix:     prefix,
		publicBase: publicBase,
	}

	_, err := storage.client.HeadBucket(context.TODO(), &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		var apiError smithy.APIError
		if errors.As(err, &apiError) {
			switch apiError.(type) {
			case *types.NotFound:
				log.Printf("Bucket %v is available.\n", bucketName)
				err = nil
			default:
				log.Printf("Either you don't have access to bucket %v or another error occurred. "+
					"Here's what happened: %v\n", bucketName, err)
			}
		}
	}

	return &storage, err
}

func (s *S3Storage) buildKey(paths ...string) string {
	var cleaned []string
	for _, p := range paths {
		clean := strings.ReplaceAll(p, "\\", "")
		clean = strings.ReplaceAll(clean, "/", "")
		cleaned = append(cleaned, clean)
	}
	return path.Join(cleaned...)
}

// Save uploads a battle snapshot and returns its object key. Snapshots
// are shared publicly; there is nothing sensitive in a doodle.
func (s *S3Storage) Save(ctx context.Context, obj model.FileObject) (string, error) {
	key := s.buildKey(s.prefix, obj.GetFilename())
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucketName,
		Key:         &key,
		Body:        bytes.NewReader(obj.GetContent()),
		ContentType: aws.String("image/png"),
		ACL:         types.ObjectCannedACLPublicRead,
	}); err != nil {
		return "", fmt.Errorf("failed to save object to S3: %w", err)
	}
	return key, nil
}

// PublicURL builds the durable link for a stored object. A configured
// base (CDN, bucket website) wins; otherwise the virtual-hosted S3 URL
// is used.
func (s *S3Storage) PublicURL(key string) string {
	if s.publicBase != "" {
		return strings.TrimSuffix(s.publicBase, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucketName, key)
}
