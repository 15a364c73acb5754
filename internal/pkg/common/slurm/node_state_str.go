package slurm

import (
	"fmt"
	"strings"
)

const (
	NODE_STATE_UNKNOWN   uint32 = iota // node's initial state, unknown
	NODE_STATE_DOWN                    // node in non-usable state
	NODE_STATE_IDLE                    // node idle and available for use
	NODE_STATE_ALLOCATED               // node has been allocated to a job
	NODE_STATE_ERROR                   // node is in an error state
	NODE_STATE_MIXED                   // node has mixed allocation
	NODE_STATE_FUTURE                  // node slot reserved for future use
	NODE_STATE_END                     // last entry in table
)

const (
	NODE_STATE_BASE  uint32 = 0x0000000f
	NODE_STATE_FLAGS uint32 = 0xfffffff0
)

var (
	NODE_STATE_NET        = nodeBit(4)  // node in a network reservation
	NODE_STATE_RES        = nodeBit(5)  // node in a reservation
	NODE_STATE_UNDRAIN    = nodeBit(6)  // clear DRAIN flag
	NODE_STATE_CLOUD      = nodeBit(7)  // node comes from cloud
	NODE_RESUME           = nodeBit(8)  // restore a DRAINED/DOWN node to service
	NODE_STATE_DRAIN      = nodeBit(9)  // do not allocate new work
	NODE_STATE_COMPLETING = nodeBit(10) // node completing an allocated job
	NODE_STATE_NO_RESPOND = nodeBit(11) // node is not responding
	NODE_STATE_POWER_SAVE = nodeBit(12) // node powered down by the manager
	NODE_STATE_FAIL       = nodeBit(13) // node failing, do not allocate new work
	NODE_STATE_POWER_UP   = nodeBit(14) // restore power or otherwise configure a node
	NODE_STATE_MAINT      = nodeBit(15) // node in maintenance reservation
)

func nodeBit(offset uint) uint32 {
	return uint32(1) << offset
}

// 剥离顺序即渲染顺序, DRAIN 与 FAIL 共用一个后缀槽位(见 PrintNodeStateString).
var nodeStateModifiers = []struct {
	bit  uint32
	name string
}{
	{NODE_STATE_CLOUD, "CLOUD"},
	{NODE_STATE_COMPLETING, "COMPLETING"},
	{NODE_STATE_DRAIN, "DRAIN"},
	{NODE_STATE_FAIL, "FAIL"},
	{NODE_STATE_POWER_SAVE, "POWER"},
}

// DecodeNodeState 解析节点状态字: 先逐个剥离修饰位, 再判定剩余基础状态.
// allocCPUs/errCPUs 为调度插件统计出的子计数, 三者用于混合状态判定:
// 部分核被占用(或同时存在占用与故障核)的节点强制归为 MIXED.
func DecodeNodeState(istate, cpus, allocCPUs, errCPUs uint32) (string, []string) {
	state := istate
	flags := make([]string, 0)

	for _, m := range nodeStateModifiers {
		if state&m.bit != 0 {
			flags = append(flags, m.name)
			state &^= m.bit
		}
	}

	idle := int64(cpus) - int64(allocCPUs) - int64(errCPUs)
	if (allocCPUs > 0 && errCPUs > 0) || (idle > 0 && idle != int64(cpus)) {
		state = state&NODE_STATE_FLAGS | NODE_STATE_MIXED
	}

	return BaseNodeStateString(state), flags
}

// BaseNodeStateString 只看基础状态位, 修饰位被掩掉.
func BaseNodeStateString(istate uint32) string {
	switch istate & NODE_STATE_BASE {
	case NODE_STATE_UNKNOWN:
		return "UNKNOWN"
	case NODE_STATE_DOWN:
		return "DOWN"
	case NODE_STATE_IDLE:
		return "IDLE"
	case NODE_STATE_ALLOCATED:
		return "ALLOCATED"
	case NODE_STATE_ERROR:
		return "ERROR"
	case NODE_STATE_MIXED:
		return "MIXED"
	case NODE_STATE_FUTURE:
		return "FUTURE"
	default:
		return "UNKNOWN"
	}
}

// PrintNodeStateString 渲染 "基础状态+修饰" 文本. DRAIN 在场时 FAIL 不再重复
// 渲染后缀, 两者共用同一槽位.
func PrintNodeStateString(base string, flags []string) string {
	var b strings.Builder
	b.WriteString(base)

	drained := false
	for _, f := range flags {
		if f == "DRAIN" {
			drained = true
		}
	}

	for _, f := range flags {
		if f == "FAIL" && drained {
			continue
		}
		b.WriteString("+")
		b.WriteString(f)
	}

	return b.String()
}

// NodeStateString 渲染完整状态文本. 无CPU子计数场景(如记账事件表的状态字)
// 使用, 不做混合状态判定.
func NodeStateString(istate uint32) string {
	base, flags := DecodeNodeState(istate, 0, 0, 0)
	return PrintNodeStateString(base, flags)
}

// 更新接口接受的状态名, 含基础状态与仅用于更新的动作名.
var updateNodeStates = map[string]uint32{
	"DOWN":       NODE_STATE_DOWN,
	"IDLE":       NODE_STATE_IDLE,
	"FUTURE":     NODE_STATE_FUTURE,
	"DRAIN":      NODE_STATE_DRAIN,
	"FAIL":       NODE_STATE_FAIL,
	"RESUME":     NODE_RESUME,
	"UNDRAIN":    NODE_STATE_UNDRAIN,
	"NO_RESP":    NODE_STATE_NO_RESPOND,
	"POWER_DOWN": NODE_STATE_POWER_SAVE,
	"POWER_UP":   NODE_STATE_POWER_UP,
}

// ParseNodeStateString 将状态名解析为状态字, 大小写不敏感.
func ParseNodeStateString(s string) (uint32, error) {
	state, ok := updateNodeStates[strings.ToUpper(s)]
	if !ok {
		return 0, fmt.Errorf("unknown node state %q", s)
	}
	return state, nil
}
