package persona

import (
	"context"

	"github.com/duetchat/duet/internal/db"
	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

type GetPersonaLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Get a persona by id
func NewGetPersonaLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetPersonaLogic {
	return &GetPersonaLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetPersonaLogic) GetPersona(req *types.GetPersonaRequest) (*db.Persona, error) {
	p, err := l.svcCtx.DB.GetPersona(l.ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
