package thread

import (
	"context"

	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

type DeleteThreadLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Delete a thread and its messages
func NewDeleteThreadLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteThreadLogic {
	return &DeleteThreadLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteThreadLogic) DeleteThread(req *types.DeleteThreadRequest) (*types.OkResponse, error) {
	if err := l.svcCtx.DB.DeleteThread(l.ctx, req.ID); err != nil {
		return nil, err
	}
	return &types.OkResponse{Ok: true}, nil
}
