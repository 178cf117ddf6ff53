package io

import (
	"errors"

	"github.com/ezrec/muxalu/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))
)
