// Package trace tags each shell command with an ID so that every log line
// it produces can be correlated.
package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// ContextKey type for context keys
type ContextKey string

const (
	// CommandIDKey is the context key for the command ID
	CommandIDKey ContextKey = "command_id"
)

// NewCommandID creates a unique command ID.
func NewCommandID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp if random fails
		return fmt.Sprintf("cmd_%d", time.Now().UnixNano())
	}
	return "cmd_" + hex.EncodeToString(bytes)
}

// WithCommandID returns ctx carrying id.
func WithCommandID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CommandIDKey, id)
}

// CommandID extracts the command ID from context
func CommandID(ctx context.Context) string {
	if id, ok := ctx.Value(CommandIDKey).(string); ok {
		return id
	}
	return ""
}
