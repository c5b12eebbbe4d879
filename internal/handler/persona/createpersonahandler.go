package persona

import (
	"net/http"

	"github.com/duetchat/duet/internal/httputil"
	"github.com/duetchat/duet/internal/logic/persona"
	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

// Create a persona
func CreatePersonaHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreatePersonaRequest
		if err := httputil.Parse(r, &req); err != nil {
			httputil.Error(w, err)
			return
		}

		l := persona.NewCreatePersonaLogic(r.Context(), svcCtx)
		resp, err := l.CreatePersona(&req)
		if err != nil {
			httputil.Error(w, err)
		} else {
			httputil.OkJSON(w, resp)
		}
	}
}
