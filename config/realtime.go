package config

import "time"

// RealtimeConfig contains push-channel configuration.
//
// There is deliberately no reconnect/backoff setting: the runtime never
// retries automatically; the channel reopens only on the next session change.
type RealtimeConfig struct {
	// HandshakeTimeout bounds the websocket dial.
	HandshakeTimeout time.Duration `env:"REALTIME_HANDSHAKE_TIMEOUT" envDefault:"10s"`

	// ReadLimit caps a single inbound frame in bytes.
	ReadLimit int64 `env:"REALTIME_READ_LIMIT" envDefault:"65536"`
}

// Sanitize applies guardrails to realtime configuration values.
func (r *RealtimeConfig) Sanitize() {
	if r.HandshakeTimeout <= 0 {
		r.HandshakeTimeout = 10 * time.Second
	}
	if r.ReadLimit <= 0 {
		r.ReadLimit = 65536
	}
}
