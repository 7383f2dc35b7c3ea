package middleware

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rishiboppana/stayhub/internal/idempotency"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	ReplayedHeader    = "Idempotent-Replayed"
	maxKeyLength      = 255
)

type IdempotencyStore interface {
	Get(ctx context.Context, key string) (*idempotency.Response, error)
	Reserve(ctx context.Context, key string) (bool, error)
	Save(ctx context.Context, key string, resp idempotency.Response) error
	Release(ctx context.Context, key string) error
}

// Idempotency replays the stored response for a repeated Idempotency-Key. Keys are scoped per actor.
// Server errors release the key so the client can retry. Store failures let the request through.
func Idempotency(store IdempotencyStore, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		key := strings.TrimSpace(c.GetHeader(IdempotencyHeader))
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, ginext.H{"error": "idempotency key is too long"})
			return
		}
		if actor, ok := ActorFrom(c); ok {
			key = strconv.FormatInt(actor.ID, 10) + ":" + key
		}

		ctx := c.Request.Context()
		cached, err := store.Get(ctx, key)
		if err != nil {
			log.LogAttrs(ctx, logger.WarnLevel, "idempotency store unavailable",
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		}
		if cached != nil {
			c.Header(ReplayedHeader, "true")
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		reserved, err := store.Reserve(ctx, key)
		if err != nil {
			log.LogAttrs(ctx, logger.WarnLevel, "idempotency store unavailable",
				logger.String("error", err.Error()),
			)
			c.Next()
			return
		}
		if !reserved {
			c.AbortWithStatusJSON(http.StatusConflict, ginext.H{"error": "a request with this idempotency key is in progress"})
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec

		// паника в обработчике не должна оставлять ключ занятым до истечения TTL
		completed := false
		defer func() {
			bg := context.WithoutCancel(ctx)
			if !completed || rec.Status() >= http.StatusInternalServerError {
				if err := store.Release(bg, key); err != nil {
					log.LogAttrs(ctx, logger.WarnLevel, "failed to release idempotency key",
						logger.String("error", err.Error()),
					)
				}
				return
			}

			resp := idempotency.Response{
				Status:      rec.Status(),
				ContentType: rec.Header().Get("Content-Type"),
				Body:        rec.body.Bytes(),
			}
			if err := store.Save(bg, key, resp); err != nil {
				log.LogAttrs(ctx, logger.WarnLevel, "failed to save idempotent response",
					logger.String("error", err.Error()),
				)
			}
		}()

		c.Next()
		completed = true
	}
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *bodyRecorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}
