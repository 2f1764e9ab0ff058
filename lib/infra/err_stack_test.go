package infra

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var initPC = caller()

func caller() Frame {
	var PCs [3]uintptr
	n := runtime.Callers(2, PCs[:])
	frames := runtime.CallersFrames(PCs[:n])
	frame, _ := frames.Next()
	return Frame(frame.PC)
}

func TestFrameFormat(t *testing.T) {
	testcases := []struct {
		Frame
		format string
		want   string
	}{
		{initPC, "%s", "err_stack_test.go"},
		{initPC, "%n", "init"},
		{Frame(0), "%s", "unknownFile"},
		{Frame(0), "%n", "unknownFunc"},
		{Frame(0), "%d", "0"},
		{Frame(0), "%v", "unknownFile:0"},
	}

	for _, tc := range testcases {
		require.Equal(t, tc.want, fmt.Sprintf(tc.format, tc.Frame))
	}
	require.True(t, strings.HasPrefix(fmt.Sprintf("%+s", initPC), "github.com/benz9527/xllrb/lib/infra.init\n\t"))
	require.True(t, strings.HasSuffix(fmt.Sprintf("%v", initPC), "err_stack_test.go:"+fmt.Sprintf("%d", initPC)))
}

func TestFrameMarshalText(t *testing.T) {
	text, err := Frame(0).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "unknownFrame", string(text))

	text, err = initPC.MarshalText()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(text), "github.com/benz9527/xllrb/lib/infra.init "))
	require.Contains(t, string(text), "err_stack_test.go:")
}

func TestErrorStack(t *testing.T) {
	sentinel := errors.New("sentinel")

	err := NewErrorStack("plain")
	require.EqualError(t, err, "plain")
	require.Nil(t, errors.Unwrap(err))

	err = WrapErrorStack(sentinel)
	require.EqualError(t, err, "sentinel")
	require.ErrorIs(t, err, sentinel)

	err = WrapErrorStackWithMessage(sentinel, "key 5")
	require.EqualError(t, err, "key 5: sentinel")
	require.ErrorIs(t, err, sentinel)

	var es ErrorStack
	require.True(t, errors.As(err, &es))
	require.NotEmpty(t, es.Frames())
	names := make([]string, 0, len(es.Frames()))
	for _, frame := range es.Frames() {
		names = append(names, fmt.Sprintf("%n", frame))
	}
	require.Contains(t, names, "TestErrorStack")

	require.Nil(t, WrapErrorStack(nil))
	require.Nil(t, WrapErrorStackWithMessage(nil, "ignored"))

	verbose := fmt.Sprintf("%+v", err)
	require.True(t, strings.HasPrefix(verbose, "key 5: sentinel\n"))
	require.Contains(t, verbose, "err_stack_test.go")
	require.Equal(t, "key 5: sentinel", fmt.Sprintf("%s", err))
}

func TestErrorStack_MarshalLogObject(t *testing.T) {
	err := WrapErrorStackWithMessage(errors.New("boom"), "wrapped")
	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, err.(ErrorStack).MarshalLogObject(enc))
	require.Equal(t, "wrapped: boom", enc.Fields["error"])
	frames, ok := enc.Fields["errorStack"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, frames)
}
