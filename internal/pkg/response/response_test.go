package response

import (
	"encoding/json"
	"net/url"
	"testing"
)

func TestMarshalRendersLinksAsStrings(t *testing.T) {
	u, _ := url.Parse("http://api.example.com/api/v1/hpc1/slurm/node/list?page=2&page_size=20")
	r := Response{Count: 40, Next: *u, Results: []string{"cn001"}}

	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["next"] != u.String() {
		t.Errorf("next = %v, want %q", m["next"], u.String())
	}
	if m["previous"] != "" {
		t.Errorf("previous = %v, want empty string", m["previous"])
	}
}

func TestBuildPageLinks(t *testing.T) {
	base, _ := url.Parse("http://api.example.com/api/v1/hpc1/slurm/node/list?paging=true&state=IDLE")

	// 中间页: 前后链接都有, 其他查询参数保留
	prev, next := BuildPageLinks(base, 2, 10, 35)
	if got := prev.Query().Get("page"); got != "1" {
		t.Errorf("prev page = %q, want 1", got)
	}
	if got := next.Query().Get("page"); got != "3" {
		t.Errorf("next page = %q, want 3", got)
	}
	if got := next.Query().Get("state"); got != "IDLE" {
		t.Errorf("next should keep other query params, state = %q", got)
	}

	// 首页没有上一页
	prev, _ = BuildPageLinks(base, 1, 10, 35)
	if prev.String() != "" {
		t.Errorf("first page prev = %q, want empty", prev.String())
	}

	// 末页没有下一页
	_, next = BuildPageLinks(base, 4, 10, 35)
	if next.String() != "" {
		t.Errorf("last page next = %q, want empty", next.String())
	}

	// 输入不被修改
	if base.Query().Get("page") != "" {
		t.Error("BuildPageLinks must not mutate the base URL")
	}
}
