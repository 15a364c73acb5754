package registry

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	apierr "jdgl-bk/pkg/errors"
)

// Static 基于 YAML 清单的注册表实现, 适合无注册库的小规模部署.
type Static struct {
	clusters map[string]Cluster
}

// LoadStatic 读取集群清单文件, 格式:
//
//	clusters:
//	  - name: hpc1
//	    rest_addr: 192.168.2.35:6820
//	    grid_topology: false
//	    db_host: 192.168.2.40
//	    db_port: 3306
//	    db_name: slurm_acct_db
//	    db_user: slurm
//	    db_pass: "******"
func LoadStatic(path string) (*Static, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read clusters file: %w", err)
	}

	var doc struct {
		Clusters []Cluster `yaml:"clusters"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse clusters file %s: %w", path, err)
	}

	s := &Static{clusters: make(map[string]Cluster, len(doc.Clusters))}
	for i, c := range doc.Clusters {
		if c.Name == "" {
			return nil, fmt.Errorf("clusters file %s: entry %d has no name", path, i)
		}
		if c.RestAddr == "" {
			return nil, fmt.Errorf("clusters file %s: cluster %s has no rest_addr", path, c.Name)
		}
		if _, dup := s.clusters[c.Name]; dup {
			return nil, fmt.Errorf("clusters file %s: duplicate cluster %s", path, c.Name)
		}
		s.clusters[c.Name] = c
	}
	return s, nil
}

// GetCluster 实现 Resolver.
func (s *Static) GetCluster(_ context.Context, name string) (Cluster, error) {
	c, ok := s.clusters[name]
	if !ok {
		return Cluster{}, apierr.NewNotFound(-1, fmt.Sprintf("cluster %s not registered", name))
	}
	return c, nil
}

// Names 返回清单中全部集群名, 供启动日志使用.
func (s *Static) Names() []string {
	names := make([]string, 0, len(s.clusters))
	for name := range s.clusters {
		names = append(names, name)
	}
	return names
}
