package nodes

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jdgl-bk/internal/inventory"
	"jdgl-bk/internal/pkg/common/paging"
	"jdgl-bk/internal/pkg/common/slurm"
	ctime "jdgl-bk/internal/pkg/common/time"
	"jdgl-bk/internal/pkg/response"
	apierr "jdgl-bk/pkg/errors"
)

type NodeEvents []*NodeEvent

// NodeEvent 记账库中一条节点事件的展示形态.
// State 为事件发生时的节点状态文本, TimeEnd 为空表示事件仍在持续,
// ReasonUser 为记录人的登录名.
type NodeEvent struct {
	NodeName   string     `json:"node_name"`
	State      string     `json:"state"`
	TimeStart  ctime.Time `json:"time_start" swaggertype:"string"`
	TimeEnd    ctime.Time `json:"time_end" swaggertype:"string"`
	Reason     string     `json:"reason"`
	ReasonUser string     `json:"reason_user"`
}

// HandlerGetNodeEvents 查询某节点在记账库中的事件记录.
// @Summary 获取某集群中某节点的历史事件
// @Description 从记账库查询节点事件, 按开始时间倒序. start/end 为秒级时间戳, 未配置记账库的集群返回 400.
// @Tags 资源管理, 节点管理
// @Produce json
// @Param cluster path string true "集群名称" example("test")
// @Param node_name path string true "节点名称" example("cn001")
// @Param start query int false "窗口起点(秒级时间戳)" example("1700000000")
// @Param end query int false "窗口终点(秒级时间戳)" example("1700600000")
// @Param paging query bool false "是否返回翻页链接" default(false)
// @Param page query int false "页号(从1开始)" example("1") default(1) minimum(1)
// @Param page_size query int false "每页数量" example("20") default(20) minimum(1) maximum(500)
// @Success 200 {object} response.Response{results=NodeEvents}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /api/v1/{cluster}/slurm/node/{node_name}/events [get]
func (rt *Router) HandlerGetNodeEvents(c *gin.Context) {
	cl, ok := rt.resolveCluster(c)
	if !ok {
		return
	}
	name := c.Param("node_name")
	if strings.TrimSpace(name) == "" {
		c.JSON(http.StatusBadRequest, response.Response{Detail: "missing node_name in path"})
		return
	}
	if !cl.HasEventDB() {
		apierr.ServeError(c, apierr.NewValidation("cluster %s has no accounting database configured", cl.Name))
		return
	}

	from, ok := unixQuery(c, "start")
	if !ok {
		return
	}
	to, ok := unixQuery(c, "end")
	if !ok {
		return
	}

	var pq paging.PagingQuery
	_ = c.ShouldBindQuery(&pq)
	pq.SetDefaults(1, 20, 500)

	events, total, err := rt.events(c.Request.Context(), cl, name, from, to, pq.Page, pq.PageSize)
	if err != nil {
		rt.logger.Error("unable to get node events", "cluster", cl.Name, "node", name, "err", err)
		apierr.ServeError(c, err)
		return
	}

	views := make(NodeEvents, 0, len(events))
	for _, e := range events {
		v := &NodeEvent{
			NodeName:  e.NodeName,
			State:     slurm.NodeStateString(e.State),
			TimeStart: ctime.FromUnix(e.TimeStart),
			TimeEnd:   ctime.FromUnix(e.TimeEnd),
			Reason:    e.Reason,
		}
		if e.ReasonUID != slurm.NO_VAL {
			v.ReasonUser = inventory.LoginName(e.ReasonUID)
		}
		views = append(views, v)
	}

	prev, next := response.BuildPageLinks(c.Request.URL, pq.Page, pq.PageSize, total)
	c.JSON(http.StatusOK, response.Response{Count: total, Previous: prev, Next: next, Results: views})
}

// unixQuery 解析秒级时间戳查询参数, 缺省返回零值时间. 解析失败时响应已写好.
func unixQuery(c *gin.Context, key string) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, true
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || sec < 0 {
		c.JSON(http.StatusBadRequest, response.Response{Detail: "invalid query: " + key})
		return time.Time{}, false
	}
	return time.Unix(sec, 0), true
}
