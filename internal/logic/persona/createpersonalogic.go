package persona

import (
	"context"
	"errors"

	"github.com/duetchat/duet/internal/db"
	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

type CreatePersonaLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Create a persona
func NewCreatePersonaLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreatePersonaLogic {
	return &CreatePersonaLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreatePersonaLogic) CreatePersona(req *types.CreatePersonaRequest) (*db.Persona, error) {
	if req.ID == "" {
		return nil, errors.New("id is required")
	}
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	p, err := l.svcCtx.DB.CreatePersona(l.ctx, db.Persona{
		ID:         req.ID,
		Name:       req.Name,
		Bio:        req.Bio,
		Style:      req.Style,
		Boundaries: req.Boundaries,
		Goals:      req.Goals,
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}
