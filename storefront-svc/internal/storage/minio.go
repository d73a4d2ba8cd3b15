package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
)

type MinioProofStore struct {
	Client *minio.Client
	Bucket string
	// PublicURL is the base that object URLs handed to the chat are built from.
	PublicURL string
}

func NewMinioProofStore(client *minio.Client, bucket, publicURL string) *MinioProofStore {
	return &MinioProofStore{Client: client, Bucket: bucket, PublicURL: strings.TrimRight(publicURL, "/")}
}

func ProofObjectName(orderID, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "comprobante"
	}
	return "payment-proofs/" + orderID + "/" + name
}

func (s *MinioProofStore) ObjectURL(object string) string {
	return fmt.Sprintf("%s/%s/%s", s.PublicURL, s.Bucket, object)
}

func (s *MinioProofStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := s.Client.MakeBucket(ctx, s.Bucket, minio.MakeBucketOptions{}); err != nil {
		return err
	}
	log.Printf("created bucket %s", s.Bucket)
	return nil
}

func (s *MinioProofStore) UploadProof(ctx context.Context, orderID, filename, contentType string, r io.Reader, size int64) (string, error) {
	object := ProofObjectName(orderID, filename)
	_, err := s.Client.PutObject(ctx, s.Bucket, object, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", object, err)
	}
	return s.ObjectURL(object), nil
}
