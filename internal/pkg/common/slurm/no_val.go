package slurm

import (
	"strconv"
)

const (
	INFINITE   uint32 = 0xffffffff
	INFINITE64 uint64 = 0xffffffffffffffff
	NO_VAL     uint32 = 0xfffffffe         // field not set, 32-bit
	NO_VAL64   uint64 = 0xfffffffffffffffe // field not set, 64-bit
)

// Marker 为哨兵值字段的占位文本, 与下游消费方约定好的, 不能改.
type Marker string

const (
	NotApplicable Marker = "N/A" // 功能未启用或未配置
	NotSupported  Marker = "n/s" // 节点插件不支持采集
)

// Value 持有可能为哨兵值的计数: 真实数值按数字渲染, 哨兵值渲染为占位文本.
type Value struct {
	val   uint64
	avail bool
	mark  Marker
}

// U32 从32位原始字段构造 Value, 与 NO_VAL 比较.
func U32(v uint32, m Marker) Value {
	if v == NO_VAL {
		return Value{mark: m}
	}
	return Value{val: uint64(v), avail: true, mark: m}
}

// U64 从64位原始字段构造 Value, 与 NO_VAL64 比较.
func U64(v uint64, m Marker) Value {
	if v == NO_VAL64 {
		return Value{mark: m}
	}
	return Value{val: v, avail: true, mark: m}
}

// Unavail 构造一个不可用的 Value, 用于未上报的整组字段.
func Unavail(m Marker) Value {
	return Value{mark: m}
}

func (v Value) Avail() bool {
	return v.avail
}

// Uint64 返回真实数值, 不可用时 ok 为 false.
func (v Value) Uint64() (uint64, bool) {
	return v.val, v.avail
}

func (v Value) String() string {
	if !v.avail {
		return string(v.mark)
	}
	return strconv.FormatUint(v.val, 10)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.avail {
		return strconv.AppendQuote(nil, string(v.mark)), nil
	}
	return strconv.AppendUint(nil, v.val, 10), nil
}
