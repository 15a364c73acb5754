package paging

type PagingQuery struct {
	Paging   bool `form:"paging" json:"paging"`
	Page     int  `form:"page" json:"page" validate:"omitempty,gte=1"`
	PageSize int  `form:"page_size" json:"page_size" validate:"omitempty,gte=1,lte=1000"`
}

// SetDefaults 设置默认分页, 限制每页项目最大数
func (p *PagingQuery) SetDefaults(defaultPage, defaultSize, maxSize int) {
	if p.Page <= 0 {
		p.Page = defaultPage
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultSize
	}
	if maxSize > 0 && p.PageSize > maxSize {
		p.PageSize = maxSize
	}
}

// Window 计算当前页在长度为 total 的列表上的切片区间 [lo, hi).
// 节点快照一次性从管理器取回, 分页在内存切片上完成. Paging 为 false
// 或页参数无效时返回整个区间.
func (p PagingQuery) Window(total int) (lo, hi int) {
	if !p.Paging || p.Page <= 0 || p.PageSize <= 0 {
		return 0, total
	}
	lo = (p.Page - 1) * p.PageSize
	if lo > total {
		lo = total
	}
	hi = lo + p.PageSize
	if hi > total {
		hi = total
	}
	return lo, hi
}
