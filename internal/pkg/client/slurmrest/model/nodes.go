package model

// RawNode 为定制 slurmrestd 原样导出的节点表记录: 状态字与计数保持数值形态,
// 哨兵值(NO_VAL/NO_VAL64)服务端不做改写, 统一由本服务解码.
type RawNode struct {
	Name         string `json:"name"`          // 节点名称
	NodeAddr     string `json:"node_addr"`     // 通信地址
	NodeHostname string `json:"node_hostname"` // 主机名
	Arch         string `json:"arch"`          // 体系结构
	OS           string `json:"os"`            // 操作系统
	Version      string `json:"version"`       // slurmd 版本
	MCSLabel     string `json:"mcs_label"`     // MCS 标签
	Owner        uint32 `json:"owner"`         // 独占用户 uid, NO_VAL 未设置
	Partitions   string `json:"partitions"`    // 所属分区, 逗号分隔

	NodeState uint32 `json:"node_state"` // 原始状态字
	Weight    uint32 `json:"weight"`     // 调度权重

	Boards  uint16 `json:"boards"`  // 板数
	Sockets uint16 `json:"sockets"` // 插槽数
	Cores   uint16 `json:"cores"`   // 每插槽核数
	Threads uint16 `json:"threads"` // 每核线程数
	CPUs    uint32 `json:"cpus"`    // 逻辑CPU总数

	// 调度插件侧统计, 由定制接口在服务端抽取.
	AllocCPUs uint32 `json:"alloc_cpus"` // 已分配CPU子计数
	ErrCPUs   uint32 `json:"err_cpus"`   // 故障CPU子计数
	AllocMem  uint64 `json:"alloc_mem"`  // 已分配内存, MiB
	ExtraInfo string `json:"extra_info"` // 调度插件附加说明文本

	RealMemory uint64 `json:"real_memory"` // 配置内存, MiB
	FreeMem    uint64 `json:"free_mem"`    // 空闲内存, MiB, NO_VAL64 未上报
	TmpDisk    uint32 `json:"tmp_disk"`    // 临时盘, MiB
	CPULoad    uint32 `json:"cpu_load"`    // 百分之一负载, NO_VAL 未上报

	Features    string `json:"features"`     // 可用特性
	FeaturesAct string `json:"features_act"` // 生效特性
	Gres        string `json:"gres"`         // 通用资源配置
	GresDrain   string `json:"gres_drain"`   // 已排空通用资源
	GresUsed    string `json:"gres_used"`    // 已占用通用资源

	CoreSpecCnt  uint16 `json:"core_spec_cnt"`  // 预留核数
	CPUSpecList  string `json:"cpu_spec_list"`  // 预留CPU编号列表
	MemSpecLimit uint64 `json:"mem_spec_limit"` // 预留内存, MiB

	TRES      string `json:"tres"`       // 配置 TRES
	AllocTRES string `json:"alloc_tres"` // 已分配 TRES

	Reason     string `json:"reason"`      // 不可用原因
	ReasonTime int64  `json:"reason_time"` // 原因记录时间
	ReasonUID  uint32 `json:"reason_uid"`  // 记录人 uid

	BootTime        int64 `json:"boot_time"`         // 节点启动时间
	SlurmdStartTime int64 `json:"slurmd_start_time"` // slurmd 启动时间

	Energy     *RawEnergy     `json:"energy"`      // 能耗采集, 插件未启用时缺省
	ExtSensors *RawExtSensors `json:"ext_sensors"` // 外部传感器
	Power      *RawPower      `json:"power"`       // 功耗上限
}

// RawEnergy 对应管理器的能耗采集结构.
type RawEnergy struct {
	BaseConsumedEnergy uint64 `json:"base_consumed_energy"` // 基线累计能耗, J
	ConsumedEnergy     uint64 `json:"consumed_energy"`      // 累计能耗, J
	BaseWatts          uint32 `json:"base_watts"`           // 基线功率, W
	CurrentWatts       uint32 `json:"current_watts"`        // 当前功率, W, NO_VAL 不支持
}

// RawExtSensors 对应外部传感器采集结构, 各字段独立判哨兵值.
type RawExtSensors struct {
	ConsumedEnergy uint64 `json:"consumed_energy"` // 累计能耗, J
	CurrentWatts   uint32 `json:"current_watts"`   // 当前功率, W
	Temperature    uint32 `json:"temperature"`     // 温度
}

// RawPower 对应功耗管理数据.
type RawPower struct {
	CapWatts uint32 `json:"cap_watts"` // 功耗上限, W, NO_VAL 未配置
}

// RawNodeBatch 对应一次节点表拉取, last_update 为 controller 侧快照时间.
type RawNodeBatch struct {
	LastUpdate int64      `json:"last_update"`
	Nodes      []*RawNode `json:"nodes"`
}

// UpdateNodeMsg 对应管理器原生的节点更新消息. 指针字段不设置则不上送,
// 管理器端以 no-op 缺省值初始化, 未提及的属性保持原样.
type UpdateNodeMsg struct {
	NodeNames    string  `json:"node_names"`
	NodeState    *uint32 `json:"node_state,omitempty"`
	Reason       *string `json:"reason,omitempty"`
	ReasonUID    *uint32 `json:"reason_uid,omitempty"`
	Features     *string `json:"features,omitempty"`
	Gres         *string `json:"gres,omitempty"`
	NodeAddr     *string `json:"node_addr,omitempty"`
	NodeHostname *string `json:"node_hostname,omitempty"`
	Weight       *uint32 `json:"weight,omitempty"`
}
