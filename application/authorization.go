/*
Package application 应用层公共能力。
*/
package application

import (
	"context"

	"bakery/domain/user"
	"bakery/pkg/logger"

	"go.uber.org/zap"
)

// RequireAdmin 拒绝非管理员调用，必须在任何仓储访问之前执行
func RequireAdmin(ctx context.Context, u *user.User, useCase string) error {
	if err := user.RequireAdmin(u); err != nil {
		logger.FromContext(ctx).Warn("Unauthorized action rejected",
			zap.String("use_case", useCase),
			zap.String("username", u.Username()))
		return err
	}
	return nil
}
