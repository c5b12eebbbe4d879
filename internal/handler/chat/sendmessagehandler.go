package chat

import (
	"net/http"

	"github.com/duetchat/duet/internal/httputil"
	"github.com/duetchat/duet/internal/logic/chat"
	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

// Run one conversation turn (creates the thread if needed)
func SendMessageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		if err := httputil.Parse(r, &req); err != nil {
			httputil.Error(w, err)
			return
		}

		l := chat.NewSendMessageLogic(r.Context(), svcCtx)
		resp, err := l.SendMessage(&req)
		if err != nil {
			httputil.Error(w, err)
		} else {
			httputil.OkJSON(w, resp)
		}
	}
}
