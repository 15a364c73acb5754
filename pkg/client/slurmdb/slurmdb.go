package slurmdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// SlurmDB 单个集群 slurmdbd 后端库的连接. slurmdbd 的表名带集群前缀,
// 如 hpc1_event_table.
type SlurmDB struct {
	db     *sql.DB
	prefix string
}

// NewSlurmDB 建立到记账库的连接并验证连通性.
func NewSlurmDB(ctx context.Context, conf Conf) (*SlurmDB, error) {
	db, err := sql.Open("mysql", conf.DSN())
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(time.Hour)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}
	return &SlurmDB{db: db, prefix: conf.Cluster}, nil
}

// Close 关闭底层连接.
func (s *SlurmDB) Close() error { return s.db.Close() }

type NodeEvents []*NodeEvent

// NodeEvent 记账库 event_table 中的一条节点事件.
type NodeEvent struct {
	NodeName  string
	TimeStart int64
	TimeEnd   int64  // 0 表示事件尚未结束
	State     uint32 // 事件发生时的节点状态字
	Reason    string
	ReasonUID uint32
}

// GetNodeEvents 查询某节点的事件记录, 按开始时间倒序, 支持时间窗口过滤与分页.
// 返回分页前的总数.
func (s *SlurmDB) GetNodeEvents(ctx context.Context, node string, from, to time.Time, page, pageSize int) (NodeEvents, int, error) {
	where := " WHERE node_name = ?"
	args := []any{node}
	if !from.IsZero() {
		where += " AND time_start >= ?"
		args = append(args, from.Unix())
	}
	if !to.IsZero() {
		where += " AND time_start <= ?"
		args = append(args, to.Unix())
	}

	// 先查询总数（无分页）
	countStmt := fmt.Sprintf("SELECT COUNT(*) FROM %s_event_table", s.prefix) + where
	var total int64
	if err := s.db.QueryRowContext(ctx, countStmt, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("统计总数失败: %w", err)
	}

	// 再查询列表（带排序与分页）
	listStmt := fmt.Sprintf("SELECT time_start, time_end, node_name, state, reason, reason_uid FROM %s_event_table", s.prefix) +
		where + " ORDER BY time_start DESC"
	listArgs := make([]any, len(args))
	copy(listArgs, args)
	if pageSize > 0 {
		listStmt += " LIMIT ?"
		listArgs = append(listArgs, pageSize)
		if page > 0 {
			listStmt += " OFFSET ?"
			listArgs = append(listArgs, (page-1)*pageSize)
		}
	}

	rows, err := s.db.QueryContext(ctx, listStmt, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("查询数据库失败: %w", err)
	}
	defer rows.Close()

	events := make(NodeEvents, 0)
	for rows.Next() {
		e := &NodeEvent{}
		var reason sql.NullString
		if err := rows.Scan(&e.TimeStart, &e.TimeEnd, &e.NodeName, &e.State, &reason, &e.ReasonUID); err != nil {
			return nil, 0, fmt.Errorf("读取数据失败: %w", err)
		}
		if reason.Valid {
			e.Reason = reason.String
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("读取数据失败: %w", err)
	}
	return events, int(total), nil
}
