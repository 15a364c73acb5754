package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"jdgl-bk/internal/pkg/client/slurmrest/model"
	apierr "jdgl-bk/pkg/errors"
)

// RawAPI 为原始节点表客户端需要实现的最小接口, 便于测试注入.
type RawAPI interface {
	GetRawNodes(ctx context.Context, addr string) (model.RawNodeBatch, error)
	GetRawNode(ctx context.Context, addr, name string) (*model.RawNode, error)
	UpdateNode(ctx context.Context, addr string, msg model.UpdateNodeMsg) error
}

// Service 为无状态的节点清单服务: 每次查询重新拉取重新解码, 不持有缓存,
// 也不共享任何可变状态. 集群地址与解码参数由调用方按集群传入.
type Service struct {
	client RawAPI
	logger *slog.Logger
}

func NewService(client RawAPI, logger *slog.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// List 全量拉取并逐条解码.
func (s *Service) List(ctx context.Context, addr string, opts BuildOpts) (NodeRecords, error) {
	batch, err := s.client.GetRawNodes(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}

	records := make(NodeRecords, 0, len(batch.Nodes))
	for _, raw := range batch.Nodes {
		records = append(records, buildNodeRecord(raw, opts))
	}
	return records, nil
}

// ListNames 只取节点名, 不做解码.
func (s *Service) ListNames(ctx context.Context, addr string) ([]string, error) {
	batch, err := s.client.GetRawNodes(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("list node names: %w", err)
	}

	names := make([]string, 0, len(batch.Nodes))
	for _, raw := range batch.Nodes {
		names = append(names, raw.Name)
	}
	return names, nil
}

// Get 拉取并解码单个节点. 管理器查不到时错误为"不存在"形态, 谓词可判.
func (s *Service) Get(ctx context.Context, addr, name string, opts BuildOpts) (*NodeRecord, error) {
	raw, err := s.client.GetRawNode(ctx, addr, name)
	if err != nil {
		return nil, fmt.Errorf("get node %s: %w", name, err)
	}
	return buildNodeRecord(raw, opts), nil
}

// Find 按属性子串过滤. 匹配大小写敏感, 不做任何规范化; attr 必须在可检索
// 枚举内, 否则报 ValidationError; 单条记录上取不到视图则静默跳过.
// 空结果是正常结果.
func (s *Service) Find(ctx context.Context, addr, attr, pattern string, opts BuildOpts) (NodeRecords, error) {
	view, ok := nodeAttributes[attr]
	if !ok {
		return nil, apierr.NewValidation("unknown attribute %q", attr)
	}

	records, err := s.List(ctx, addr, opts)
	if err != nil {
		return nil, err
	}

	matched := make(NodeRecords, 0)
	for _, rec := range records {
		v, ok := view(rec)
		if !ok {
			continue
		}
		if strings.Contains(v, pattern) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// FindNames 同 Find, 只回节点名.
func (s *Service) FindNames(ctx context.Context, addr, attr, pattern string, opts BuildOpts) ([]string, error) {
	records, err := s.Find(ctx, addr, attr, pattern, opts)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(records))
	for _, rec := range records {
		names = append(names, rec.Name)
	}
	return names, nil
}
