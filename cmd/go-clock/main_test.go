package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-clock/internal/config"
)

func TestRecoverHost_TurnsPanicIntoError(t *testing.T) {
	run := func() (err error) {
		defer recoverHost(&err)
		panic("display driver lost")
	}

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrHostPanic)
	assert.Contains(t, err.Error(), "display driver lost")
}

func TestRecoverHost_KeepsReturnedError(t *testing.T) {
	want := errors.New("boom")
	run := func() (err error) {
		defer recoverHost(&err)
		return want
	}

	assert.ErrorIs(t, run(), want)
}
