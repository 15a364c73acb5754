package inventory

import (
	"strings"

	"jdgl-bk/internal/pkg/common/slurm"
	ctime "jdgl-bk/internal/pkg/common/time"
)

// NodeRecord 为解码后的节点快照: 状态字已展开为文本, 哨兵值已替换为占位文本,
// CPU三元组经过折算, 满足 alloc + err + idle == cpus.
type NodeRecord struct {
	Name         string      `json:"name"`                       // 节点名称
	NodeAddr     string      `json:"node_addr"`                  // 通信地址
	NodeHostname string      `json:"node_hostname"`              // 主机名
	Arch         string      `json:"arch"`                       // 体系结构
	OS           string      `json:"os"`                         // 操作系统
	Version      string      `json:"version"`                    // slurmd 版本
	MCSLabel     string      `json:"mcs_label"`                  // MCS 标签
	Owner        slurm.Value `json:"owner" swaggertype:"string"` // 独占用户 uid
	Partitions   []string    `json:"partitions"`                 // 所属分区

	State      string   `json:"state"`       // 完整状态文本, 基础状态+修饰
	BaseState  string   `json:"base_state"`  // 基础状态
	StateFlags []string `json:"state_flags"` // 修饰标志

	Weight uint32 `json:"weight"` // 调度权重

	Boards         uint16 `json:"boards"`
	Sockets        uint16 `json:"sockets"`
	CoresPerSocket uint16 `json:"cores_per_socket"`
	ThreadsPerCore uint16 `json:"threads_per_core"`

	CPUs      uint32      `json:"cpus"`                          // 逻辑CPU总数
	AllocCPUs uint32      `json:"alloc_cpus"`                    // 已分配(折算后)
	ErrCPUs   uint32      `json:"err_cpus"`                      // 故障(折算后)
	IdleCPUs  uint32      `json:"idle_cpus"`                     // 空闲
	CPULoad   slurm.Value `json:"cpu_load" swaggertype:"string"` // 百分之一负载

	RealMemory  uint64      `json:"real_memory"`                      // 配置内存, MiB
	AllocMemory uint64      `json:"alloc_memory"`                     // 已分配内存, MiB
	FreeMemory  slurm.Value `json:"free_memory" swaggertype:"string"` // 空闲内存, MiB
	TmpDisk     uint32      `json:"tmp_disk"`                         // 临时盘, MiB

	Features    []string `json:"features"`     // 可用特性
	FeaturesAct []string `json:"features_act"` // 生效特性
	Gres        []string `json:"gres"`         // 通用资源配置
	GresDrain   []string `json:"gres_drain"`   // 已排空通用资源
	GresUsed    []string `json:"gres_used"`    // 已占用通用资源

	// 预留资源组, 三项任一非零才填充.
	Specialization *Specialization `json:"specialization,omitempty"`

	CapWatts slurm.Value `json:"cap_watts" swaggertype:"string"` // 功耗上限, W

	// 能耗组: 以 current_watts 是否上报为准, 三项同进退.
	CurrentWatts   slurm.Value `json:"current_watts" swaggertype:"string"`
	ConsumedJoules slurm.Value `json:"consumed_joules" swaggertype:"string"`
	LowestJoules   slurm.Value `json:"lowest_joules" swaggertype:"string"`

	// 外部传感器, 各字段独立判定.
	ExtSensorsJoules slurm.Value `json:"ext_sensors_joules" swaggertype:"string"`
	ExtSensorsWatts  slurm.Value `json:"ext_sensors_watts" swaggertype:"string"`
	ExtSensorsTemp   slurm.Value `json:"ext_sensors_temp" swaggertype:"string"`

	TRES      string `json:"tres"`       // 配置 TRES
	AllocTRES string `json:"alloc_tres"` // 已分配 TRES

	// 原因块: 仅当管理器记录了不可用原因时填充.
	Reason     string     `json:"reason,omitempty"`                 // 原因文本
	ReasonFull string     `json:"reason_full,omitempty"`            // 原因 + 附加说明 + [记录人@时间]
	ReasonUser string     `json:"reason_user,omitempty"`            // 记录人登录名, 解析失败为数字文本
	ReasonTime ctime.Time `json:"reason_time" swaggertype:"string"` // 记录时间

	BootTime        ctime.Time `json:"boot_time" swaggertype:"string"`         // 节点启动时间
	SlurmdStartTime ctime.Time `json:"slurmd_start_time" swaggertype:"string"` // slurmd 启动时间
}

// Specialization 为节点预留资源组.
type Specialization struct {
	CoreSpecCnt  uint16   `json:"core_spec_cnt"`  // 预留核数
	CPUSpecList  []string `json:"cpu_spec_list"`  // 预留CPU编号
	MemSpecLimit uint64   `json:"mem_spec_limit"` // 预留内存, MiB
}

type NodeRecords []*NodeRecord

// 可检索属性的规范字符串视图, 显式枚举. 列表属性按其来源形态(逗号连接)匹配;
// 视图取不到(如预留组未填充)时 ok 为 false, 该记录在检索中被跳过.
var nodeAttributes = map[string]func(*NodeRecord) (string, bool){
	"name":          func(r *NodeRecord) (string, bool) { return r.Name, true },
	"state":         func(r *NodeRecord) (string, bool) { return r.State, true },
	"base_state":    func(r *NodeRecord) (string, bool) { return r.BaseState, true },
	"node_addr":     func(r *NodeRecord) (string, bool) { return r.NodeAddr, true },
	"node_hostname": func(r *NodeRecord) (string, bool) { return r.NodeHostname, true },
	"arch":          func(r *NodeRecord) (string, bool) { return r.Arch, true },
	"os":            func(r *NodeRecord) (string, bool) { return r.OS, true },
	"version":       func(r *NodeRecord) (string, bool) { return r.Version, true },
	"mcs_label":     func(r *NodeRecord) (string, bool) { return r.MCSLabel, true },
	"partitions":    func(r *NodeRecord) (string, bool) { return strings.Join(r.Partitions, ","), true },
	"features":      func(r *NodeRecord) (string, bool) { return strings.Join(r.Features, ","), true },
	"features_act":  func(r *NodeRecord) (string, bool) { return strings.Join(r.FeaturesAct, ","), true },
	"gres":          func(r *NodeRecord) (string, bool) { return strings.Join(r.Gres, ","), true },
	"gres_drain":    func(r *NodeRecord) (string, bool) { return strings.Join(r.GresDrain, ","), true },
	"gres_used":     func(r *NodeRecord) (string, bool) { return strings.Join(r.GresUsed, ","), true },
	"reason":        func(r *NodeRecord) (string, bool) { return r.Reason, true },
	"reason_user":   func(r *NodeRecord) (string, bool) { return r.ReasonUser, true },
	"tres":          func(r *NodeRecord) (string, bool) { return r.TRES, true },
	"alloc_tres":    func(r *NodeRecord) (string, bool) { return r.AllocTRES, true },
	"cpu_spec_list": func(r *NodeRecord) (string, bool) {
		if r.Specialization == nil {
			return "", false
		}
		return strings.Join(r.Specialization.CPUSpecList, ","), true
	},
}
