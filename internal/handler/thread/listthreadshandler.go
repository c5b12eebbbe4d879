package thread

import (
	"net/http"

	"github.com/duetchat/duet/internal/httputil"
	"github.com/duetchat/duet/internal/logic/thread"
	"github.com/duetchat/duet/internal/svc"
)

// List all threads
func ListThreadsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := thread.NewListThreadsLogic(r.Context(), svcCtx)
		resp, err := l.ListThreads()
		if err != nil {
			httputil.Error(w, err)
		} else {
			httputil.OkJSON(w, resp)
		}
	}
}
