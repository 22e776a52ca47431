package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSMTP = errors.New("dial tcp: connection refused")

func newTestCB(openTimeout time.Duration) *CircuitBreaker {
	return NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		OpenTimeout:      openTimeout,
	})
}

func TestCircuitBreaker_AbreAposFalhasConsecutivas(t *testing.T) {
	cb := newTestCB(time.Minute)

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return errSMTP })
		require.ErrorIs(t, err, errSMTP)
	}
	assert.Equal(t, CBOpen, cb.State())

	// Open — fast fail without invoking fn
	called := false
	err := cb.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SucessoZeraContagem(t *testing.T) {
	cb := newTestCB(time.Minute)

	_ = cb.Execute(func() error { return errSMTP })
	_ = cb.Execute(func() error { return errSMTP })
	require.NoError(t, cb.Execute(func() error { return nil }))

	// Two more failures do not reach the threshold after the reset
	_ = cb.Execute(func() error { return errSMTP })
	_ = cb.Execute(func() error { return errSMTP })
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreaker_MeioAbertoFechaComSucessos(t *testing.T) {
	cb := newTestCB(10 * time.Millisecond)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errSMTP })
	}
	require.Equal(t, CBOpen, cb.State())

	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, CBHalfOpen, cb.State())

	require.NoError(t, cb.Execute(func() error { return nil }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreaker_MeioAbertoReabreComFalha(t *testing.T) {
	cb := newTestCB(10 * time.Millisecond)

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errSMTP })
	}
	time.Sleep(15 * time.Millisecond)
	require.Equal(t, CBHalfOpen, cb.State())

	_ = cb.Execute(func() error { return errSMTP })
	assert.Equal(t, CBOpen, cb.State())
}
