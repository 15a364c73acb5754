package inventory

import (
	"context"
	"fmt"
	"os"
	"strings"

	"jdgl-bk/internal/pkg/client/slurmrest/model"
	"jdgl-bk/internal/pkg/common/slurm"
	apierr "jdgl-bk/pkg/errors"
)

// UpdateNodeRequest 为对外的节点更新请求. NodeNames 为主机列表表达式
// (如 cn[001-003]), 其余字段可选; 全空的更新在本地即被拒绝, 不产生流量.
type UpdateNodeRequest struct {
	NodeNames    string  `json:"node_names"`
	State        string  `json:"state,omitempty"`
	Reason       string  `json:"reason,omitempty"`
	Features     string  `json:"features,omitempty"`
	Gres         string  `json:"gres,omitempty"`
	NodeAddr     string  `json:"node_addr,omitempty"`
	NodeHostname string  `json:"node_hostname,omitempty"`
	Weight       *uint32 `json:"weight,omitempty"` // 0 为合法权重, 用指针区分未设置
}

func (r UpdateNodeRequest) isEmpty() bool {
	return r.State == "" && r.Reason == "" && r.Features == "" && r.Gres == "" &&
		r.NodeAddr == "" && r.NodeHostname == "" && r.Weight == nil
}

// toMsg 组装线上更新消息, 未设置的字段一律不上送.
// 设置 reason 时自动带上本进程身份作为记录人.
func (r UpdateNodeRequest) toMsg(uid uint32) (model.UpdateNodeMsg, error) {
	msg := model.UpdateNodeMsg{NodeNames: r.NodeNames}

	if r.State != "" {
		state, err := slurm.ParseNodeStateString(r.State)
		if err != nil {
			return model.UpdateNodeMsg{}, apierr.NewValidation("invalid node state %q", r.State)
		}
		msg.NodeState = &state
	}
	if r.Reason != "" {
		reason := r.Reason
		msg.Reason = &reason
		msg.ReasonUID = &uid
	}
	if r.Features != "" {
		features := r.Features
		msg.Features = &features
	}
	if r.Gres != "" {
		gres := r.Gres
		msg.Gres = &gres
	}
	if r.NodeAddr != "" {
		addr := r.NodeAddr
		msg.NodeAddr = &addr
	}
	if r.NodeHostname != "" {
		hostname := r.NodeHostname
		msg.NodeHostname = &hostname
	}
	if r.Weight != nil {
		weight := *r.Weight
		msg.Weight = &weight
	}

	return msg, nil
}

// Update 校验并提交节点更新. 管理器拒绝时错误携带其数字返回码.
func (s *Service) Update(ctx context.Context, addr string, req UpdateNodeRequest) error {
	if strings.TrimSpace(req.NodeNames) == "" {
		return apierr.NewValidation("node_names must be provided")
	}
	if req.isEmpty() {
		return apierr.NewValidation("update fields must be provided")
	}

	msg, err := req.toMsg(uint32(os.Getuid()))
	if err != nil {
		return err
	}

	if err := s.client.UpdateNode(ctx, addr, msg); err != nil {
		return fmt.Errorf("update node %s: %w", req.NodeNames, err)
	}
	return nil
}
