package nodes

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jdgl-bk/internal/inventory"
	"jdgl-bk/internal/pkg/common/paging"
	"jdgl-bk/internal/pkg/registry"
	"jdgl-bk/internal/pkg/response"
	apierr "jdgl-bk/pkg/errors"
)

// resolveCluster 解析路径中的集群名并查注册表. 失败时响应已写好, 返回 false.
func (rt *Router) resolveCluster(c *gin.Context) (registry.Cluster, bool) {
	name := c.Param("cluster")
	if name == "" {
		c.JSON(http.StatusBadRequest, response.Response{Detail: "missing cluster in path"})
		return registry.Cluster{}, false
	}
	cl, err := rt.registry.GetCluster(c.Request.Context(), name)
	if err != nil {
		rt.logger.Error("unable to resolve cluster", "cluster", name, "err", err)
		apierr.ServeError(c, err)
		return registry.Cluster{}, false
	}
	return cl, true
}

// buildOpts 把注册表中的拓扑参数转为解码选项.
func buildOpts(cl registry.Cluster) inventory.BuildOpts {
	return inventory.BuildOpts{
		GridTopology: cl.GridTopology,
		NodeScaling:  cl.NodeScaling,
	}
}

// writeList 组装列表类接口的标准响应, pq.Paging 开启时附带翻页链接.
func writeList(c *gin.Context, pq paging.PagingQuery, total int, results interface{}) {
	var prev, next url.URL
	if pq.Paging {
		prev, next = response.BuildPageLinks(c.Request.URL, pq.Page, pq.PageSize, total)
	}
	c.JSON(http.StatusOK, response.Response{Count: total, Previous: prev, Next: next, Results: results})
}

// boolQuery 解析布尔查询参数. 解析失败时响应已写好, 返回 false.
func boolQuery(c *gin.Context, key string) (value, ok bool) {
	v, err := strconv.ParseBool(c.DefaultQuery(key, "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{Detail: "invalid query: " + key})
		return false, false
	}
	return v, true
}

// HandlerGetNodeList 获取某集群全部节点的状态快照.
// @Summary 获取某集群节点列表
// @Description 返回全部节点的状态快照, 包括文本化状态、CPU四元组、内存、能耗等; ids_only=true 时仅返回节点名列表.
// @Tags 资源管理, 节点管理
// @Produce json
// @Param cluster path string true "集群名称" example("test")
// @Param ids_only query bool false "仅返回节点名" default(false)
// @Param paging query bool false "是否开启分页" default(false)
// @Param page query int false "页号(从1开始)" example("1") default(1) minimum(1)
// @Param page_size query int false "每页数量" example("20") default(20) minimum(1) maximum(500)
// @Success 200 {object} response.Response{results=inventory.NodeRecords}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/{cluster}/slurm/node/list [get]
func (rt *Router) HandlerGetNodeList(c *gin.Context) {
	cl, ok := rt.resolveCluster(c)
	if !ok {
		return
	}

	idsOnly, ok := boolQuery(c, "ids_only")
	if !ok {
		return
	}

	var pq paging.PagingQuery
	_ = c.ShouldBindQuery(&pq)
	pq.SetDefaults(1, 20, 500)

	ctx := c.Request.Context()
	if idsOnly {
		names, err := rt.inv.ListNames(ctx, cl.RestAddr)
		if err != nil {
			rt.logger.Error("unable to list node names", "cluster", cl.Name, "err", err)
			apierr.ServeError(c, err)
			return
		}
		lo, hi := pq.Window(len(names))
		writeList(c, pq, len(names), names[lo:hi])
		return
	}

	records, err := rt.inv.List(ctx, cl.RestAddr, buildOpts(cl))
	if err != nil {
		rt.logger.Error("unable to list nodes", "cluster", cl.Name, "err", err)
		apierr.ServeError(c, err)
		return
	}
	lo, hi := pq.Window(len(records))
	writeList(c, pq, len(records), records[lo:hi])
}

// HandlerGetNodeDetail 获取某节点的状态快照.
// @Summary 获取某集群中某节点详情
// @Tags 资源管理, 节点管理
// @Produce json
// @Param cluster path string true "集群名称" example("test")
// @Param node_name path string true "节点名称" example("cn001")
// @Success 200 {object} response.Response{results=inventory.NodeRecord}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/{cluster}/slurm/node/{node_name}/detail [get]
func (rt *Router) HandlerGetNodeDetail(c *gin.Context) {
	cl, ok := rt.resolveCluster(c)
	if !ok {
		return
	}
	name := c.Param("node_name")
	if strings.TrimSpace(name) == "" {
		c.JSON(http.StatusBadRequest, response.Response{Detail: "missing node_name in path"})
		return
	}

	record, err := rt.inv.Get(c.Request.Context(), cl.RestAddr, name, buildOpts(cl))
	if err != nil {
		rt.logger.Error("unable to get node", "cluster", cl.Name, "node", name, "err", err)
		apierr.ServeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Response{Results: record})
}

// HandlerSearchNodes 按属性子串筛选节点.
// @Summary 在某集群中按属性筛选节点
// @Description 对指定属性做子串匹配(区分大小写), 列表型属性按逗号拼接后匹配; 不具备该属性的节点直接跳过.
// @Tags 资源管理, 节点管理
// @Produce json
// @Param cluster path string true "集群名称" example("test")
// @Param attr query string true "属性名" example("state")
// @Param pattern query string false "匹配子串, 空串匹配全部" example("DRAIN")
// @Param ids_only query bool false "仅返回节点名" default(false)
// @Param paging query bool false "是否开启分页" default(false)
// @Param page query int false "页号(从1开始)" example("1") default(1) minimum(1)
// @Param page_size query int false "每页数量" example("20") default(20) minimum(1) maximum(500)
// @Success 200 {object} response.Response{results=inventory.NodeRecords}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/{cluster}/slurm/node/search [get]
func (rt *Router) HandlerSearchNodes(c *gin.Context) {
	cl, ok := rt.resolveCluster(c)
	if !ok {
		return
	}

	attr := c.Query("attr")
	if strings.TrimSpace(attr) == "" {
		c.JSON(http.StatusBadRequest, response.Response{Detail: "missing required query: attr"})
		return
	}
	pattern := c.Query("pattern")

	idsOnly, ok := boolQuery(c, "ids_only")
	if !ok {
		return
	}

	var pq paging.PagingQuery
	_ = c.ShouldBindQuery(&pq)
	pq.SetDefaults(1, 20, 500)

	ctx := c.Request.Context()
	if idsOnly {
		names, err := rt.inv.FindNames(ctx, cl.RestAddr, attr, pattern, buildOpts(cl))
		if err != nil {
			rt.logger.Error("unable to search nodes", "cluster", cl.Name, "attr", attr, "err", err)
			apierr.ServeError(c, err)
			return
		}
		lo, hi := pq.Window(len(names))
		writeList(c, pq, len(names), names[lo:hi])
		return
	}

	records, err := rt.inv.Find(ctx, cl.RestAddr, attr, pattern, buildOpts(cl))
	if err != nil {
		rt.logger.Error("unable to search nodes", "cluster", cl.Name, "attr", attr, "err", err)
		apierr.ServeError(c, err)
		return
	}
	lo, hi := pq.Window(len(records))
	writeList(c, pq, len(records), records[lo:hi])
}

// HandlerUpdateNode 更新节点的可写属性.
// @Summary 更新某集群中节点的可写属性
// @Description 按 node_names 批量更新状态/原因/特性等可写字段. 状态名先在本地解析, 非法请求不会下发到管理器.
// @Tags 资源管理, 节点管理
// @Accept json
// @Produce json
// @Param cluster path string true "集群名称" example("test")
// @Param body body inventory.UpdateNodeRequest true "更新内容"
// @Success 200 {object} response.Response{results=string}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/{cluster}/slurm/node/update [post]
func (rt *Router) HandlerUpdateNode(c *gin.Context) {
	cl, ok := rt.resolveCluster(c)
	if !ok {
		return
	}

	var req inventory.UpdateNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Response{Detail: "invalid request body: " + err.Error()})
		return
	}

	if err := rt.inv.Update(c.Request.Context(), cl.RestAddr, req); err != nil {
		rt.logger.Error("unable to update node", "cluster", cl.Name, "nodes", req.NodeNames, "err", err)
		apierr.ServeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Response{Results: "success"})
}
