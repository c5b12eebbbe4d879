package persona

import (
	"context"

	"github.com/duetchat/duet/internal/db"
	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

type UpdatePersonaLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Update a persona
func NewUpdatePersonaLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdatePersonaLogic {
	return &UpdatePersonaLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdatePersonaLogic) UpdatePersona(req *types.UpdatePersonaRequest) (*db.Persona, error) {
	// Missing fields fall back to the stored values so a partial update
	// does not blank the rest of the profile.
	cur, err := l.svcCtx.DB.GetPersona(l.ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		cur.Name = req.Name
	}
	if req.Bio != "" {
		cur.Bio = req.Bio
	}
	if req.Style != "" {
		cur.Style = req.Style
	}
	if req.Boundaries != "" {
		cur.Boundaries = req.Boundaries
	}
	if req.Goals != "" {
		cur.Goals = req.Goals
	}

	p, err := l.svcCtx.DB.UpdatePersona(l.ctx, cur)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
