package thread

import (
	"context"

	"github.com/duetchat/duet/internal/db"
	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

type ThreadMessagesLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// List a thread's messages in order
func NewThreadMessagesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ThreadMessagesLogic {
	return &ThreadMessagesLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ThreadMessagesLogic) ThreadMessages(req *types.ThreadMessagesRequest) ([]db.Message, error) {
	// 404 on an unknown thread rather than an empty list.
	if _, err := l.svcCtx.DB.GetThread(l.ctx, req.ID); err != nil {
		return nil, err
	}

	msgs, err := l.svcCtx.DB.ListMessages(l.ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []db.Message{}
	}
	return msgs, nil
}
