package inventory

import (
	"fmt"
	"os/user"
	"strconv"
	"strings"
	"time"

	"jdgl-bk/internal/pkg/client/slurmrest/model"
	"jdgl-bk/internal/pkg/common/slurm"
	ctime "jdgl-bk/internal/pkg/common/time"
)

// BuildOpts 为按集群的解码参数. 网格拓扑机型按整板调度, 调度插件给出的
// CPU子计数需按每节点CPU数折算; LookupUser 可注入替换系统 passwd 查询.
type BuildOpts struct {
	GridTopology bool
	NodeScaling  uint32
	LookupUser   func(uid uint32) string
}

const reasonTimeLayout = "2006-01-02T15:04:05"

// buildNodeRecord 从原始记录装配快照. CPU三元组的计算顺序是行为约定:
// 先定分配计数(网格拓扑下空计数的已分配节点按整节点计, 否则按每节点CPU数
// 折算), naive 空闲数 = 总数 - 分配数, 折算故障计数后再从空闲数中扣除,
// 状态解码使用调整后的计数.
func buildNodeRecord(raw *model.RawNode, opts BuildOpts) *NodeRecord {
	cpusPerNode := raw.CPUs
	if opts.GridTopology && opts.NodeScaling > 0 {
		cpusPerNode = raw.CPUs / opts.NodeScaling
	}

	alloc := raw.AllocCPUs
	errCPUs := raw.ErrCPUs
	if opts.GridTopology {
		if alloc == 0 && nodeAllocatedOrCompleting(raw.NodeState) {
			alloc = raw.CPUs
		} else {
			alloc *= cpusPerNode
		}
		errCPUs *= cpusPerNode
	}

	idle := raw.CPUs - alloc
	idle -= errCPUs

	base, flags := slurm.DecodeNodeState(raw.NodeState, raw.CPUs, alloc, errCPUs)

	rec := &NodeRecord{
		Name:         raw.Name,
		NodeAddr:     raw.NodeAddr,
		NodeHostname: raw.NodeHostname,
		Arch:         raw.Arch,
		OS:           raw.OS,
		Version:      raw.Version,
		MCSLabel:     raw.MCSLabel,
		Owner:        slurm.U32(raw.Owner, slurm.NotApplicable),
		Partitions:   splitList(raw.Partitions),

		State:      slurm.PrintNodeStateString(base, flags),
		BaseState:  base,
		StateFlags: flags,

		Weight: raw.Weight,

		Boards:         raw.Boards,
		Sockets:        raw.Sockets,
		CoresPerSocket: raw.Cores,
		ThreadsPerCore: raw.Threads,

		CPUs:      raw.CPUs,
		AllocCPUs: alloc,
		ErrCPUs:   errCPUs,
		IdleCPUs:  idle,
		CPULoad:   slurm.U32(raw.CPULoad, slurm.NotApplicable),

		RealMemory:  raw.RealMemory,
		AllocMemory: raw.AllocMem,
		FreeMemory:  slurm.U64(raw.FreeMem, slurm.NotApplicable),
		TmpDisk:     raw.TmpDisk,

		Features:    splitList(raw.Features),
		FeaturesAct: splitList(raw.FeaturesAct),
		Gres:        splitList(raw.Gres),
		GresDrain:   splitList(raw.GresDrain),
		GresUsed:    splitList(raw.GresUsed),

		TRES:      raw.TRES,
		AllocTRES: raw.AllocTRES,

		BootTime:        ctime.FromUnix(raw.BootTime),
		SlurmdStartTime: ctime.FromUnix(raw.SlurmdStartTime),
	}

	if raw.CoreSpecCnt > 0 || raw.CPUSpecList != "" || raw.MemSpecLimit > 0 {
		rec.Specialization = &Specialization{
			CoreSpecCnt:  raw.CoreSpecCnt,
			CPUSpecList:  splitList(raw.CPUSpecList),
			MemSpecLimit: raw.MemSpecLimit,
		}
	}

	rec.CapWatts = slurm.Unavail(slurm.NotApplicable)
	if raw.Power != nil {
		rec.CapWatts = slurm.U32(raw.Power.CapWatts, slurm.NotApplicable)
	}

	// 能耗组整体判定: 采集插件没报当前功率就视为三项都没有.
	rec.CurrentWatts = slurm.Unavail(slurm.NotSupported)
	rec.ConsumedJoules = slurm.Unavail(slurm.NotSupported)
	rec.LowestJoules = slurm.Unavail(slurm.NotSupported)
	if raw.Energy != nil && raw.Energy.CurrentWatts != slurm.NO_VAL {
		rec.CurrentWatts = slurm.U32(raw.Energy.CurrentWatts, slurm.NotSupported)
		rec.ConsumedJoules = slurm.U64(raw.Energy.ConsumedEnergy, slurm.NotSupported)
		rec.LowestJoules = slurm.U64(raw.Energy.BaseConsumedEnergy, slurm.NotSupported)
	}

	rec.ExtSensorsJoules = slurm.Unavail(slurm.NotSupported)
	rec.ExtSensorsWatts = slurm.Unavail(slurm.NotSupported)
	rec.ExtSensorsTemp = slurm.Unavail(slurm.NotSupported)
	if raw.ExtSensors != nil {
		rec.ExtSensorsJoules = slurm.U64(raw.ExtSensors.ConsumedEnergy, slurm.NotSupported)
		rec.ExtSensorsWatts = slurm.U32(raw.ExtSensors.CurrentWatts, slurm.NotSupported)
		rec.ExtSensorsTemp = slurm.U32(raw.ExtSensors.Temperature, slurm.NotSupported)
	}

	if raw.Reason != "" {
		rec.Reason = raw.Reason
		rec.ReasonTime = ctime.FromUnix(raw.ReasonTime)
		if raw.ReasonUID != slurm.NO_VAL {
			rec.ReasonUser = lookupUserName(raw.ReasonUID, opts.LookupUser)
		}
		rec.ReasonFull = buildReasonFull(raw.Reason, raw.ExtraInfo, rec.ReasonUser, raw.ReasonTime)
	}

	return rec
}

func nodeAllocatedOrCompleting(state uint32) bool {
	if state&slurm.NODE_STATE_COMPLETING != 0 {
		return true
	}
	return state&slurm.NODE_STATE_BASE == slurm.NODE_STATE_ALLOCATED
}

// splitList 拆逗号分隔文本, 空串产出空列表而不是 [""].
func splitList(s string) []string {
	list := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			list = append(list, p)
		}
	}
	return list
}

// buildReasonFull 组装完整原因文本: 原因 + 换行接附加说明 + " [记录人@时间]".
func buildReasonFull(reason, extra, user string, sec int64) string {
	var b strings.Builder
	b.WriteString(reason)
	if extra != "" {
		b.WriteString("\n")
		b.WriteString(extra)
	}
	if user != "" && sec > 0 {
		b.WriteString(fmt.Sprintf(" [%s@%s]", user, time.Unix(sec, 0).Format(reasonTimeLayout)))
	}
	return b.String()
}

// LoginName 解析 uid 为登录名, 供事件等历史记录展示使用.
func LoginName(uid uint32) string {
	return lookupUserName(uid, nil)
}

// lookupUserName 解析 uid 为登录名, 查询失败回退为数字文本, 永不报错.
func lookupUserName(uid uint32, custom func(uint32) string) string {
	numeric := strconv.FormatUint(uint64(uid), 10)
	if custom != nil {
		return custom(uid)
	}
	u, err := user.LookupId(numeric)
	if err != nil || u.Username == "" {
		return numeric
	}
	return u.Username
}
