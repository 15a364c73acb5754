package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger 创建 Logger 并设为进程默认. output 为日志输出类型, 当前支持
// "stderr", "stdout", "file"; 为 file 时需要通过 filename 指定日志文件位置.
// format 支持 "json", "text". level 为最低输出级别. 返回的 cleanup 负责
// 关闭日志文件, 进程退出前调用.
func NewLogger(output, format, filename, level string) (*slog.Logger, func(), error) {
	lv, err := parseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	w, closer, err := newWriter(output, filename)
	if err != nil {
		return nil, nil, err
	}
	ho := &slog.HandlerOptions{
		AddSource: true,
		Level:     lv,
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, ho)
	case "text":
		handler = slog.NewTextHandler(w, ho)
	default:
		if closer != nil {
			_ = closer.Close()
		}
		return nil, nil, fmt.Errorf("unsupported log format: %s", format)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	cleanup := func() {
		if closer != nil {
			_ = closer.Close()
		}
	}
	return logger, cleanup, nil
}

func newWriter(output, filename string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout, nil, nil
	case "stderr":
		return os.Stderr, nil, nil
	case "file":
		if filename == "" {
			return nil, nil, fmt.Errorf("unable to create log file which name is null(\"\")")
		}
		f, err := os.OpenFile(filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to create log file(%s): %w", filename, err)
		}
		return f, f, nil
	default:
		return nil, nil, fmt.Errorf("unsupported log output: %s", output)
	}
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported log level: %s", level)
	}
}
