package router

import "github.com/gin-gonic/gin"

// Registrar 为业务模块的装配接口, 模块在 Register 中挂载自己的路由组.
type Registrar interface{ Register(r *gin.Engine) }

// 全局注册表, main 启动时集中声明要装配的模块.
var registrars []Registrar

// Register 登记待装配的模块.
func Register(rs ...Registrar) { registrars = append(registrars, rs...) }

// Mount 将所有已登记模块的路由挂载到引擎.
func Mount(r *gin.Engine) {
	for _, rg := range registrars {
		rg.Register(r)
	}
}
