package user

import (
	"context"
	"time"
)

// AuthProvider is the pluggable authentication capability. The default
// implementation is a stub so a real backend can be substituted without
// touching call sites.
type AuthProvider interface {
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, name, email, password string) error
}

// StubAuthProvider waits a fixed delay and always succeeds. The password is
// accepted but never checked or stored anywhere.
type StubAuthProvider struct {
	Delay time.Duration
}

func NewStubAuthProvider(delay time.Duration) *StubAuthProvider {
	return &StubAuthProvider{Delay: delay}
}

func (p *StubAuthProvider) Login(ctx context.Context, email, password string) error {
	time.Sleep(p.Delay) // simulated network round trip
	return nil
}

func (p *StubAuthProvider) Signup(ctx context.Context, name, email, password string) error {
	time.Sleep(p.Delay)
	return nil
}
