package storage

import (
	"crypto/tls"
	"errors"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/minio/minio-go/v6"

	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
)

// S3Client offloads recordings and screenshots to an S3 compatible
// object store. Uploads are best-effort: a failure is logged and the
// local file is kept.
type S3Client struct {
	client *minio.Client
	bucket string
}

// NewS3Client builds a client from the configuration, or returns nil
// when no object storage is configured.
func NewS3Client(config *models.S3) (*S3Client, error) {
	if config == nil || config.Publickey == "" || config.Secretkey == "" {
		return nil, nil
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = "s3.amazonaws.com"
	}

	s3Client, err := minio.NewWithRegion(endpoint, config.Publickey, config.Secretkey, true, config.Region)
	if err != nil {
		return nil, err
	}

	// Check if we need to use the proxy.
	if config.ProxyURI != "" {
		var transport http.RoundTripper = &http.Transport{
			Proxy: func(*http.Request) (*url.URL, error) {
				return url.Parse(config.ProxyURI)
			},
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
		s3Client.SetCustomTransport(transport)
	}

	if config.Bucket == "" {
		return nil, errors.New("storage.s3.NewS3Client(): no bucket configured")
	}

	return &S3Client{client: s3Client, bucket: config.Bucket}, nil
}

// Upload pushes a single local file to the bucket, keyed by its base
// name.
func (s *S3Client) Upload(path string) {
	file, err := os.Open(path)
	if err != nil {
		log.Log.Error("storage.s3.Upload(): " + err.Error())
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		log.Log.Error("storage.s3.Upload(): " + err.Error())
		return
	}

	key := filepath.Base(path)
	log.Log.Info("storage.s3.Upload(): upload started for " + key)
	_, err = s.client.PutObject(s.bucket, key, file, info.Size(), minio.PutObjectOptions{})
	if err != nil {
		log.Log.Error("storage.s3.Upload(): upload failed for " + key + ": " + err.Error())
		return
	}
	log.Log.Info("storage.s3.Upload(): upload finished for " + key)
}
