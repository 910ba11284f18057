package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/shenikar/agency_dispatch_system/internal/config"
)

// ErrObjectNotFound возвращается, когда объекта с таким ключом нет в бакете
var ErrObjectNotFound = errors.New("object not found")

// Client - обертка над S3-совместимым клиентом minio
type Client struct {
	mc              *minio.Client
	transferTimeout time.Duration
}

// NewClient создает клиент объектного хранилища.
// ObjectStoreTimeout ограничивает установку соединения и ожидание заголовков ответа,
// но не чтение тела: медленная, но живая передача не обрывается.
func NewClient(cfg *config.Config) (*Client, error) {
	timeout := cfg.ObjectStoreTimeout
	if timeout <= 0 {
		timeout = 200 * time.Millisecond
	}
	transferTimeout := cfg.ObjectStoreTransferTimeout
	if transferTimeout <= 0 {
		transferTimeout = 30 * time.Second
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ResponseHeaderTimeout: timeout,
		MaxIdleConnsPerHost:   16,
		IdleConnTimeout:       90 * time.Second,
	}

	mc, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure:    cfg.S3UseSSL,
		Region:    cfg.S3Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	return &Client{mc: mc, transferTimeout: transferTimeout}, nil
}

// GetObject читает объект целиком
func (c *Client) GetObject(ctx context.Context, bucket, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.transferTimeout)
	defer cancel()

	obj, err := c.mc.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapError(bucket, key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, mapError(bucket, key, err)
	}
	return data, nil
}

// PutObject загружает объект в бакет
func (c *Client) PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	_, err := c.mc.PutObject(ctx, bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s/%s: %w", bucket, key, err)
	}
	return nil
}

// Ping проверяет доступность бакета
func (c *Client) Ping(ctx context.Context, bucket string) error {
	ok, err := c.mc.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !ok {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}
	return nil
}

func mapError(bucket, key string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s/%s: %w", bucket, key, ErrObjectNotFound)
	}
	return fmt.Errorf("failed to get object %s/%s: %w", bucket, key, err)
}
