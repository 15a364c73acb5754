package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var DefaultHTTPCode = http.StatusInternalServerError

type apiError struct {
	Count    int32       `json:"count"`
	Previous string      `json:"previous"`
	Next     string      `json:"next"`
	Result   interface{} `json:"results"`
	Detail   string      `json:"detail"`
}

func payload(detail string) *apiError {
	return &apiError{Count: -1, Detail: detail}
}

// ServeError 把错误族映射到HTTP状态码, 按标准响应结构返回.
// ValidationError -> 400, 查无此节点/集群 -> 404, 管理器侧失败 -> 502.
func ServeError(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.JSON(DefaultHTTPCode, payload("unknown error"))
	case IsValidation(err):
		c.JSON(http.StatusBadRequest, payload(err.Error()))
	case IsNotFound(err):
		c.JSON(http.StatusNotFound, payload(err.Error()))
	case IsLoad(err), IsUpdate(err):
		c.JSON(http.StatusBadGateway, payload(err.Error()))
	default:
		c.JSON(DefaultHTTPCode, payload(err.Error()))
	}
}
