package nodes

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"jdgl-bk/internal/inventory"
	"jdgl-bk/internal/pkg/client/exec"
	"jdgl-bk/internal/pkg/client/slurmrest"
	"jdgl-bk/internal/pkg/registry"
	"jdgl-bk/pkg/client/slurmdb"
)

// EventsFunc 查询某集群某节点的历史事件. 默认实现经由 slurmdb 连接池,
// 单元测试可整体替换.
type EventsFunc func(ctx context.Context, cl registry.Cluster, node string, from, to time.Time, page, pageSize int) (slurmdb.NodeEvents, int, error)

type Router struct {
	registry registry.Resolver
	inv      *inventory.Service
	events   EventsFunc
	execc    *exec.Client
	logger   *slog.Logger
}

func NewRouter(reg registry.Resolver, restc *slurmrest.Client, dbpool *slurmdb.SlurmDBPool, execc *exec.Client, logger *slog.Logger) *Router {
	return &Router{
		registry: reg,
		inv:      inventory.NewService(restc, logger),
		events:   poolEvents(dbpool),
		execc:    execc,
		logger:   logger,
	}
}

// poolEvents 把连接池包装成 EventsFunc: 先取该集群的记账库连接再查询.
func poolEvents(pool *slurmdb.SlurmDBPool) EventsFunc {
	return func(ctx context.Context, cl registry.Cluster, node string, from, to time.Time, page, pageSize int) (slurmdb.NodeEvents, int, error) {
		db, err := pool.FetchOrCreate(ctx, slurmdb.Conf{
			Cluster:  cl.Name,
			IP:       cl.DBHost,
			Port:     cl.DBPort,
			Database: cl.DBName,
			User:     cl.DBUser,
			Passwd:   cl.DBPass,
		})
		if err != nil {
			return nil, 0, err
		}
		return db.GetNodeEvents(ctx, node, from, to, page, pageSize)
	}
}

func (rt *Router) Register(r *gin.Engine) {
	v1 := r.Group("/api/v1/")
	{
		g := v1.Group("/:cluster/slurm")
		g.GET("/node/list", rt.HandlerGetNodeList)                // GET /api/v1/{cluster}/slurm/node/list
		g.GET("/node/search", rt.HandlerSearchNodes)              // GET /api/v1/{cluster}/slurm/node/search
		g.GET("/node/native", rt.HandlerGetNodeNative)            // GET /api/v1/{cluster}/slurm/node/native
		g.GET("/node/:node_name/detail", rt.HandlerGetNodeDetail) // GET /api/v1/{cluster}/slurm/node/{node_name}/detail
		g.GET("/node/:node_name/events", rt.HandlerGetNodeEvents) // GET /api/v1/{cluster}/slurm/node/{node_name}/events
		g.POST("/node/update", rt.HandlerUpdateNode)              // POST /api/v1/{cluster}/slurm/node/update
	}
}
