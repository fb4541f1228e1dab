// Package logger 提供全局日志实例
//
// 基于 logrus，日志级别和格式由环境变量控制：
//   - LOG_LEVEL: debug / info / warn / error（默认 info）
//   - LOG_FORMAT: json / text（默认 text）
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log 全局日志实例
// 必须在 main() 开始时调用 Init()；测试中通过 Get() 延迟初始化
var Log *logrus.Logger

// Init 初始化全局日志实例
func Init() {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(os.Stdout)
}

// Get 返回全局日志实例，未初始化时先初始化
func Get() *logrus.Logger {
	if Log == nil {
		Init()
	}
	return Log
}

// Silence 丢弃所有日志输出（非 verbose 模式使用）
func Silence() {
	Get().SetOutput(io.Discard)
}

// For 返回带 component 字段的日志入口
// 各系统统一使用此函数，便于按组件过滤日志
func For(component string) *logrus.Entry {
	return Get().WithField("component", component)
}
