package exec

import (
	"context"
	"io"
	"log/slog"
	osexec "os/exec"
	"reflect"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// captureExec 记录被执行的命令行, 实际运行 echo 以产出固定输出.
func captureExec(output string, argv *[]string) ExecCommandFunc {
	return func(ctx context.Context, name string, args ...string) *osexec.Cmd {
		*argv = append([]string{name}, args...)
		return osexec.CommandContext(ctx, "echo", "-n", output)
	}
}

func failingExec(output string) ExecCommandFunc {
	return func(ctx context.Context, name string, args ...string) *osexec.Cmd {
		return osexec.CommandContext(ctx, "sh", "-c", "echo '"+output+"'; exit 1")
	}
}

func TestShowNodeBuildsCommandLine(t *testing.T) {
	cases := []struct {
		name     string
		node     string
		oneLiner bool
		want     []string
	}{
		{"single node oneliner", "cn001", true, []string{"scontrol", "-o", "show", "node", "cn001"}},
		{"single node", "cn001", false, []string{"scontrol", "show", "node", "cn001"}},
		{"all nodes", "", false, []string{"scontrol", "show", "node"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var argv []string
			c := (&Client{}).Set(captureExec("NodeName=cn001", &argv), testLogger())
			if _, err := c.ShowNode(context.Background(), tc.node, tc.oneLiner); err != nil {
				t.Fatalf("ShowNode: %v", err)
			}
			if !reflect.DeepEqual(argv, tc.want) {
				t.Errorf("argv = %v, want %v", argv, tc.want)
			}
		})
	}
}

func TestShowNodeReturnsRawOutput(t *testing.T) {
	var argv []string
	const out = "NodeName=cn001 Arch=x86_64 CoresPerSocket=16"
	c := (&Client{}).Set(captureExec(out, &argv), testLogger())

	got, err := c.ShowNode(context.Background(), "cn001", true)
	if err != nil {
		t.Fatalf("ShowNode: %v", err)
	}
	if got != out {
		t.Errorf("output = %q, want %q", got, out)
	}
}

func TestShowNodeCommandFailure(t *testing.T) {
	c := (&Client{}).Set(failingExec("Node cn999 not found"), testLogger())

	_, err := c.ShowNode(context.Background(), "cn999", false)
	if err == nil {
		t.Fatal("want error")
	}
	if !strings.Contains(err.Error(), "Node cn999 not found") {
		t.Errorf("error %q should carry the first output line", err)
	}
}
