package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/magicdawn/finder-sort/internal/domain"
	"github.com/magicdawn/finder-sort/internal/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_WithCodecMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	codec := mock.NewMockPathCodec(ctrl)

	in := strings.NewReader("ignored")
	var out bytes.Buffer

	codec.EXPECT().Decode(in).Return([]string{"x10.txt", "x2.txt", "x1.txt"}, nil)
	codec.EXPECT().Encode(&out, []string{"x1.txt", "x2.txt", "x10.txt"}).Return(nil)

	app := NewApp(Config{}, WithCodec(codec), WithLogger(discardLogger()))
	require.NoError(t, app.Run(context.Background(), in, &out))
}

func TestRun_FolderFirstFromConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	codec := mock.NewMockPathCodec(ctrl)

	codec.EXPECT().Decode(gomock.Any()).Return([]string{"啊.txt", "包青天/1.mp4"}, nil)
	codec.EXPECT().Encode(gomock.Any(), []string{"包青天/1.mp4", "啊.txt"}).Return(nil)

	cfg := Config{Locale: "zh-CN", FolderFirst: true}
	app := NewApp(cfg, WithCodec(codec), WithLogger(discardLogger()))
	require.NoError(t, app.Run(context.Background(), strings.NewReader(""), io.Discard))
}

func TestRun_DecodeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	codec := mock.NewMockPathCodec(ctrl)

	errRead := errors.New("read failed")
	codec.EXPECT().Decode(gomock.Any()).Return(nil, errRead)

	app := NewApp(Config{}, WithCodec(codec), WithLogger(discardLogger()))
	err := app.Run(context.Background(), strings.NewReader(""), io.Discard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errRead))
	assert.Contains(t, err.Error(), "decode input")
}

func TestRun_EncodeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	codec := mock.NewMockPathCodec(ctrl)

	errWrite := errors.New("write failed")
	codec.EXPECT().Decode(gomock.Any()).Return([]string{"a"}, nil)
	codec.EXPECT().Encode(gomock.Any(), []string{"a"}).Return(errWrite)

	app := NewApp(Config{}, WithCodec(codec), WithLogger(discardLogger()))
	err := app.Run(context.Background(), strings.NewReader(""), io.Discard)
	assert.True(t, errors.Is(err, errWrite))
}

func TestRun_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	codec := mock.NewMockPathCodec(ctrl)

	codec.EXPECT().Decode(gomock.Any()).Return([]string{"a"}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	app := NewApp(Config{}, WithCodec(codec), WithLogger(discardLogger()))
	err := app.Run(ctx, strings.NewReader(""), io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidLocale(t *testing.T) {
	ctrl := gomock.NewController(t)
	codec := mock.NewMockPathCodec(ctrl)

	app := NewApp(Config{Locale: "not a locale!"}, WithCodec(codec), WithLogger(discardLogger()))
	err := app.Run(context.Background(), strings.NewReader(""), io.Discard)
	assert.ErrorIs(t, err, domain.ErrInvalidLocale)
}
