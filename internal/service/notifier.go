package service

import (
	"finedu_backend/pkg/logger"

	"go.uber.org/zap"
)

// Notifier 接收进度里程碑事件。学习进度写入路径上的事件
// 全部走这个接口，方便以后接入消息推送
type Notifier interface {
	Notify(event string, payload map[string]interface{})
}

// ZapNotifier 把事件写进结构化日志
type ZapNotifier struct{}

func (ZapNotifier) Notify(event string, payload map[string]interface{}) {
	fields := make([]zap.Field, 0, len(payload)+1)
	fields = append(fields, zap.String("event", event))
	for k, v := range payload {
		fields = append(fields, zap.Any(k, v))
	}
	logger.Log.Info("progress event", fields...)
}
