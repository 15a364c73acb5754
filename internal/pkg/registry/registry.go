// Package registry 维护集群注册表: 每个集群一条记录, 描述其定制 slurmrestd
// 地址、节点拓扑折算参数以及 slurmdbd 记账库坐标. 解析器有两种实现:
// 静态 YAML 清单(本包)与 Postgres 注册库(internal/pkg/client/postgres).
package registry

import "context"

// Cluster 集群注册信息.
type Cluster struct {
	Name     string `yaml:"name"`      // 集群名, 路由中的 :cluster 段
	RestAddr string `yaml:"rest_addr"` // 定制 slurmrestd 地址, host:port

	// 网格拓扑机型上管理器以板卡为单位记录 CPU 子计数,
	// 读取时需按 node_scaling 折算为核数.
	GridTopology bool   `yaml:"grid_topology"`
	NodeScaling  uint32 `yaml:"node_scaling"`

	// slurmdbd 后端 MySQL 坐标, 供事件查询使用. 未配置 DBHost 的集群
	// 不提供事件查询能力.
	DBHost string `yaml:"db_host"`
	DBPort uint16 `yaml:"db_port"`
	DBName string `yaml:"db_name"`
	DBUser string `yaml:"db_user"`
	DBPass string `yaml:"db_pass"`
}

// HasEventDB 集群是否配置了记账库.
func (c Cluster) HasEventDB() bool { return c.DBHost != "" }

// Resolver 将集群名解析为注册信息.
type Resolver interface {
	GetCluster(ctx context.Context, name string) (Cluster, error)
}
