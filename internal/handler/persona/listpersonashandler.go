package persona

import (
	"net/http"

	"github.com/duetchat/duet/internal/httputil"
	"github.com/duetchat/duet/internal/logic/persona"
	"github.com/duetchat/duet/internal/svc"
)

// List all personas
func ListPersonasHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := persona.NewListPersonasLogic(r.Context(), svcCtx)
		resp, err := l.ListPersonas()
		if err != nil {
			httputil.Error(w, err)
		} else {
			httputil.OkJSON(w, resp)
		}
	}
}
