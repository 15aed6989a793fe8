package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

const opIDKey ctxKey = "op_id"

// NewOp tags the context with a fresh operation id. Every interactive
// action gets one so its log lines can be correlated.
func NewOp(ctx context.Context) context.Context {
	return WithOpID(ctx, uuid.NewString())
}

func WithOpID(ctx context.Context, opID string) context.Context {
	return context.WithValue(ctx, opIDKey, opID)
}

func OpIDFrom(ctx context.Context) string {
	if v := ctx.Value(opIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns the logger with op_id automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	opID := OpIDFrom(ctx)
	if opID == "" {
		return L()
	}
	return L().With(zap.String("op_id", opID))
}
