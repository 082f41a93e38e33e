package recording

import (
	"github.com/gogpu/ngx"
	"github.com/gogpu/ngx/backend"
)

// init registers the recording engine on package import:
//
//	import _ "github.com/gogpu/ngx/backend/recording"
func init() {
	backend.Register(backend.EngineRecording, func() ngx.Engine {
		return New()
	})
}
