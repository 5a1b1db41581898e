package defaultzoom

import (
	"github.com/rs/zerolog"

	"github.com/ywcode/DefaultMinimapZoom/agent/go-service/pkg/logging"
)

// dzLog 是 defaultzoom 模块的子日志器，自动携带 module=defaultzoom 字段。
// 每个插件实例在此基础上再附加 session 字段。
//
// dzLog is the package logger. Plugin instances derive their own from it
// with a session id attached.
var dzLog zerolog.Logger = logging.Module("defaultzoom")
