// file: internals/helpers/oss/oss_client.go
package oss

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	alioss "github.com/aliyun/aliyun-oss-go-sdk/oss"
)

var (
	once      sync.Once
	bucketRef *alioss.Bucket
	initErr   error
)

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Bucket mengembalikan handle bucket OSS (lazy, sekali init per proses).
func Bucket() (*alioss.Bucket, error) {
	once.Do(func() {
		endpoint := envOr("OSS_ENDPOINT", "")
		accessKey := envOr("OSS_ACCESS_KEY_ID", "")
		secretKey := envOr("OSS_ACCESS_KEY_SECRET", "")
		bucketName := envOr("OSS_BUCKET", "")
		if endpoint == "" || accessKey == "" || secretKey == "" || bucketName == "" {
			initErr = fmt.Errorf("oss: OSS_ENDPOINT/OSS_ACCESS_KEY_ID/OSS_ACCESS_KEY_SECRET/OSS_BUCKET belum lengkap")
			return
		}

		client, err := alioss.New(endpoint, accessKey, secretKey)
		if err != nil {
			initErr = fmt.Errorf("oss: init client: %w", err)
			return
		}
		b, err := client.Bucket(bucketName)
		if err != nil {
			initErr = fmt.Errorf("oss: open bucket: %w", err)
			return
		}
		bucketRef = b
	})
	return bucketRef, initErr
}

// UploadBytes menaruh objek dan mengembalikan public URL-nya.
func UploadBytes(key, contentType string, data []byte) (string, error) {
	b, err := Bucket()
	if err != nil {
		return "", err
	}
	opts := []alioss.Option{
		alioss.ContentType(contentType),
		alioss.ObjectACL(alioss.ACLPublicRead),
	}
	if err := b.PutObject(key, bytes.NewReader(data), opts...); err != nil {
		return "", fmt.Errorf("oss: put %s: %w", key, err)
	}
	return PublicURL(key), nil
}

func DeleteObject(key string) error {
	b, err := Bucket()
	if err != nil {
		return err
	}
	return b.DeleteObject(key)
}

// PublicURL membangun https URL objek (bucket public-read).
func PublicURL(key string) string {
	endpoint := strings.TrimPrefix(envOr("OSS_ENDPOINT", ""), "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return fmt.Sprintf("https://%s.%s/%s", envOr("OSS_BUCKET", ""), endpoint, escapeKey(key))
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
