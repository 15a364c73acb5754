// Package exec 封装对本机 scontrol 命令的调用. 管理器原生文本视图不经过
// 定制 slurmrestd, 直接透传 scontrol 输出.
package exec

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

type ExecCommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

type Client struct {
	execCommand ExecCommandFunc
	logger      *slog.Logger
}

func (c *Client) Set(exec ExecCommandFunc, logger *slog.Logger) *Client {
	c.execCommand = exec
	c.logger = logger
	return c
}

// ShowNode 执行 scontrol show node 并返回原样文本. name 为空时返回全部节点,
// oneLiner 为真时每个节点压成一行(-o).
func (c *Client) ShowNode(ctx context.Context, name string, oneLiner bool) (string, error) {
	args := make([]string, 0, 4)
	if oneLiner {
		args = append(args, "-o")
	}
	args = append(args, "show", "node")
	if name != "" {
		args = append(args, name)
	}

	cmd := c.execCommand(ctx, "scontrol", args...)
	c.logger.Debug(cmd.String())
	output, err := cmd.CombinedOutput()
	if err != nil {
		c.logger.Error("unable to execute command", "cmd", cmd.String(), "output", string(output), "err", err)
		return "", fmt.Errorf("scontrol: %s", firstLine(output))
	}
	return string(output), nil
}

// firstLine scontrol 出错时把首行错误带回调用方, 如
// "Node cn999 not found" 或 "slurm_load_node error: ...".
func firstLine(output []byte) string {
	s := strings.TrimSpace(string(output))
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		s = "command failed"
	}
	return s
}
