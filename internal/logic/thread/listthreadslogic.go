package thread

import (
	"context"

	"github.com/duetchat/duet/internal/db"
	"github.com/duetchat/duet/internal/svc"
)

type ListThreadsLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// List all threads
func NewListThreadsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListThreadsLogic {
	return &ListThreadsLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListThreadsLogic) ListThreads() ([]db.Thread, error) {
	threads, err := l.svcCtx.DB.ListThreads(l.ctx)
	if err != nil {
		return nil, err
	}
	if threads == nil {
		threads = []db.Thread{}
	}
	return threads, nil
}
