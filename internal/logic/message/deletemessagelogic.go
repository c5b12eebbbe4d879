package message

import (
	"context"

	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

type DeleteMessageLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Delete a single message
func NewDeleteMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteMessageLogic {
	return &DeleteMessageLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteMessageLogic) DeleteMessage(req *types.DeleteMessageRequest) (*types.OkResponse, error) {
	if err := l.svcCtx.DB.DeleteMessage(l.ctx, req.ID); err != nil {
		return nil, err
	}
	return &types.OkResponse{Ok: true}, nil
}
