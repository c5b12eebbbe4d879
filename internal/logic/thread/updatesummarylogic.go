package thread

import (
	"context"

	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

type UpdateSummaryLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Replace a thread's rolling summary
func NewUpdateSummaryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateSummaryLogic {
	return &UpdateSummaryLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateSummaryLogic) UpdateSummary(req *types.UpdateThreadSummaryRequest) (*types.OkResponse, error) {
	if err := l.svcCtx.DB.UpdateThreadSummary(l.ctx, req.ID, req.Summary); err != nil {
		return nil, err
	}
	return &types.OkResponse{Ok: true}, nil
}
