package widget

import (
	"github.com/atomicstack/uiscript/internal/logging"
	"github.com/atomicstack/uiscript/surface"
	"github.com/atomicstack/uiscript/world"
)

// Draw is the input handed to a cached computation unit when it runs as a
// widget: exclusive access to the current region's content surface, plus
// optional extra data supplied fresh at each call site.
type Draw struct {
	Surface *surface.Surface
	Extra   interface{}
}

// Cached adapts a cached computation unit into a widget. The unit is
// initialised on first draw and its handle reused across frames. The
// definition must be an empty struct; anything else is rejected here, while
// the build script is still being assembled.
func Cached(def world.SystemDef[*Draw, Response]) Widget {
	world.MustValidateDef(def)
	return cached{def: def}
}

// CachedWith is Cached with extra per-invocation input data. The extra value
// is not cached; each call site supplies its own.
func CachedWith(def world.SystemDef[*Draw, Response], extra interface{}) Widget {
	world.MustValidateDef(def)
	return cached{def: def, extra: extra}
}

type cached struct {
	def   world.SystemDef[*Draw, Response]
	extra interface{}
}

func (c cached) Draw(w *world.World, s *surface.Surface) Response {
	out, err := world.RunCached(w, c.def, &Draw{Surface: s, Extra: c.extra})
	if err != nil {
		logging.Error(err)
		return Response{}
	}
	return out
}
