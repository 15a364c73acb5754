package nodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierr "jdgl-bk/pkg/errors"
)

// HandlerGetNodeNative 透传 scontrol show node 的原生文本输出.
// 该接口直接调用本机 scontrol, 要求服务与集群管理器部署在同一管理节点.
// @Summary 获取节点的管理器原生文本视图
// @Description 返回 scontrol show node 的原样输出. node_name 为空时返回全部节点, oneliner=true 时每节点一行.
// @Tags 资源管理, 节点管理
// @Produce plain
// @Param cluster path string true "集群名称" example("test")
// @Param node_name query string false "节点名称, 空为全部" example("cn001")
// @Param oneliner query bool false "每节点压成一行" default(false)
// @Success 200 {string} string
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/{cluster}/slurm/node/native [get]
func (rt *Router) HandlerGetNodeNative(c *gin.Context) {
	cl, ok := rt.resolveCluster(c)
	if !ok {
		return
	}

	oneLiner, ok := boolQuery(c, "oneliner")
	if !ok {
		return
	}
	name := c.Query("node_name")

	out, err := rt.execc.ShowNode(c.Request.Context(), name, oneLiner)
	if err != nil {
		rt.logger.Error("unable to run scontrol", "cluster", cl.Name, "node", name, "err", err)
		apierr.ServeError(c, apierr.NewLoad(-1, err.Error()))
		return
	}
	c.String(http.StatusOK, out)
}
