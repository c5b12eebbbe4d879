package persona

import (
	"context"

	"github.com/duetchat/duet/internal/db"
	"github.com/duetchat/duet/internal/svc"
)

type ListPersonasLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// List all personas
func NewListPersonasLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListPersonasLogic {
	return &ListPersonasLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListPersonasLogic) ListPersonas() ([]db.Persona, error) {
	personas, err := l.svcCtx.DB.ListPersonas(l.ctx)
	if err != nil {
		return nil, err
	}
	if personas == nil {
		personas = []db.Persona{}
	}
	return personas, nil
}
