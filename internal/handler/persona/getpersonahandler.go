package persona

import (
	"net/http"

	"github.com/duetchat/duet/internal/httputil"
	"github.com/duetchat/duet/internal/logic/persona"
	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

// Get a persona by id
func GetPersonaHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.GetPersonaRequest
		if err := httputil.Parse(r, &req); err != nil {
			httputil.Error(w, err)
			return
		}

		l := persona.NewGetPersonaLogic(r.Context(), svcCtx)
		resp, err := l.GetPersona(&req)
		if err != nil {
			httputil.Error(w, err)
		} else {
			httputil.OkJSON(w, resp)
		}
	}
}
