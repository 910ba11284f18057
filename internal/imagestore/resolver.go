// Package imagestore превращает ссылки на снимки в встроенные data URI.
//
// Разрешение всегда best effort: при любой ошибке вызывающий получает исходную
// ссылку. Пакетное разрешение ограничивает число одновременных обращений к
// хранилищу и запрашивает каждый ключ не более одного раза.
package imagestore

import (
	"context"
	"encoding/base64"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const dataURIPrefix = "data:image/jpeg;base64,"

// ObjectGetter читает объект из хранилища
type ObjectGetter interface {
	GetObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// Cache - кэш байтов снимков
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Result - итог разрешения одной ссылки
type Result struct {
	URL      string
	Data     []byte
	Resolved bool
}

// Value возвращает data URI или исходную ссылку
func (r Result) Value() string {
	if !r.Resolved {
		return r.URL
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(r.Data)
}

// DataURI возвращает nil, если снимок не удалось получить
func (r Result) DataURI() *string {
	if !r.Resolved {
		return nil
	}
	v := r.Value()
	return &v
}

// Options - параметры резолвера
type Options struct {
	Bucket       string
	CacheTTL     time.Duration
	Concurrency  int
	FetchTimeout time.Duration
}

type Resolver struct {
	store  ObjectGetter
	cache  Cache
	opts   Options
	logger *logrus.Logger
	group  singleflight.Group
}

// NewResolver создает резолвер; cache может быть nil
func NewResolver(store ObjectGetter, cache Cache, opts Options, logger *logrus.Logger) *Resolver {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 8
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 30 * time.Second
	}
	return &Resolver{
		store:  store,
		cache:  cache,
		opts:   opts,
		logger: logger,
	}
}

// Resolve разрешает одну ссылку
func (r *Resolver) Resolve(ctx context.Context, rawURL string) Result {
	return r.ResolveAll(ctx, []string{rawURL})[rawURL]
}

// ResolveAll разрешает набор ссылок. Результат содержит запись для каждой входной ссылки.
func (r *Resolver) ResolveAll(ctx context.Context, urls []string) map[string]Result {
	results := make(map[string]Result, len(urls))
	keyURLs := make(map[string][]string)

	for _, u := range urls {
		if _, ok := results[u]; ok {
			continue
		}
		results[u] = Result{URL: u}
		if u == "" {
			continue
		}
		key, err := ObjectKey(u)
		if err != nil {
			r.logger.WithField("url", u).Debug("Skipping image with malformed url")
			continue
		}
		keyURLs[key] = append(keyURLs[key], u)
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(r.opts.Concurrency)

	for key, owners := range keyURLs {
		key, owners := key, owners
		g.Go(func() error {
			data, err := r.fetch(ctx, key)
			if err != nil {
				r.logger.WithError(err).WithField("key", key).Warn("Image fetch failed")
				return nil
			}
			mu.Lock()
			for _, u := range owners {
				results[u] = Result{URL: u, Data: data, Resolved: true}
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *Resolver) fetch(ctx context.Context, key string) ([]byte, error) {
	if r.cache != nil {
		data, ok, err := r.cache.Get(ctx, key)
		if err != nil {
			r.logger.WithError(err).WithField("key", key).Warn("Image cache read failed")
		} else if ok {
			return data, nil
		}
	}

	// Запрос общий для всех ожидающих этот ключ, поэтому не наследует отмену
	// первого вызвавшего; его длительность ограничена FetchTimeout.
	ch := r.group.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.opts.FetchTimeout)
		defer cancel()

		data, err := r.store.GetObject(fetchCtx, r.opts.Bucket, key)
		if err != nil {
			return nil, err
		}
		if r.cache != nil && r.opts.CacheTTL > 0 {
			if err := r.cache.Set(fetchCtx, key, data, r.opts.CacheTTL); err != nil {
				r.logger.WithError(err).WithField("key", key).Warn("Image cache write failed")
			}
		}
		return data, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}
