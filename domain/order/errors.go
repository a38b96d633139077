/*
Package order - 订单领域错误定义

设计原则:
1. 使用哨兵错误(sentinel errors)支持 errors.Is() 类型安全判断
2. 错误构造函数在创建时捕获堆栈，便于定位错误发生点
3. 不包含 HTTP 状态码等非领域概念
*/
package order

import (
	"errors"
	"strconv"

	"bakery/domain/shared"
)

var (
	// ErrOrderNotFound 订单未找到
	// 可用于: errors.Is(err, ErrOrderNotFound)，同时满足 errors.Is(err, shared.ErrNotFound)
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidOrder 订单校验失败（日期、联系人、产品等）
	ErrInvalidOrder = errors.New("invalid order")
)

// NewOrderNotFoundError 创建订单未找到错误（带堆栈）
func NewOrderNotFoundError(id int64) error {
	return shared.NewError(shared.ErrNotFound, ErrOrderNotFound, "order", "",
		"Order with id "+strconv.FormatInt(id, 10)+" not found")
}

// NewInvalidOrderError 创建订单校验错误（带堆栈）
func NewInvalidOrderError(field, message string) error {
	return shared.NewError(shared.ErrInvalidInput, ErrInvalidOrder, "order", field, message)
}
