/*
Package user 定义用户领域错误。
*/
package user

import (
	"errors"

	"bakery/domain/shared"
)

// ErrInvalidUser 调用者无权执行管理员操作
var ErrInvalidUser = errors.New("invalid user")

const invalidUserMessage = "User has to be ADMIN to execute this action"

// NewInvalidUserError 创建无权限错误（带堆栈）
func NewInvalidUserError() error {
	return shared.NewError(shared.ErrUnauthorized, ErrInvalidUser, "user", "", invalidUserMessage)
}
