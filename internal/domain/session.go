package domain

import "time"

// Session binds a username to the per-session signing secret and the signed
// token issued with it. One user may hold several concurrent sessions.
type Session struct {
	ID        int64
	Username  string
	SecretKey string
	Token     string
	LastUsed  time.Time
}
