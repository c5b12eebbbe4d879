package thread

import (
	"context"

	"github.com/duetchat/duet/internal/db"
	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

type GetThreadLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Get a thread by id
func NewGetThreadLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetThreadLogic {
	return &GetThreadLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetThreadLogic) GetThread(req *types.GetThreadRequest) (*db.Thread, error) {
	t, err := l.svcCtx.DB.GetThread(l.ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
