/*
Package product - 产品领域错误定义
*/
package product

import (
	"errors"
	"strconv"

	"bakery/domain/shared"
)

var (
	// ErrProductNotFound 产品未找到
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProduct 产品字段不满足业务规则
	ErrInvalidProduct = errors.New("invalid product")
)

// NewProductNotFoundError 创建产品未找到错误（带堆栈）
func NewProductNotFoundError(id int64) error {
	return shared.NewError(shared.ErrNotFound, ErrProductNotFound, "product", "",
		"Product with id "+strconv.FormatInt(id, 10)+" not found")
}

// NewInvalidProductError 创建产品校验错误
func NewInvalidProductError(field, message string) error {
	return shared.NewError(shared.ErrInvalidInput, ErrInvalidProduct, "product", field, message)
}
