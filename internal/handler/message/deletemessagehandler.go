package message

import (
	"net/http"

	"github.com/duetchat/duet/internal/httputil"
	"github.com/duetchat/duet/internal/logic/message"
	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

// Delete a single message
func DeleteMessageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.DeleteMessageRequest
		if err := httputil.Parse(r, &req); err != nil {
			httputil.Error(w, err)
			return
		}

		l := message.NewDeleteMessageLogic(r.Context(), svcCtx)
		resp, err := l.DeleteMessage(&req)
		if err != nil {
			httputil.Error(w, err)
		} else {
			httputil.OkJSON(w, resp)
		}
	}
}
