package chat

import (
	"context"
	"errors"

	"github.com/duetchat/duet/internal/chat"
	"github.com/duetchat/duet/internal/logging"
	"github.com/duetchat/duet/internal/svc"
	"github.com/duetchat/duet/internal/types"
)

type SendMessageLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Run one conversation turn (creates the thread if needed)
func NewSendMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SendMessageLogic {
	return &SendMessageLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SendMessageLogic) SendMessage(req *types.ChatRequest) (*types.ChatResponse, error) {
	if req.PersonaID == "" {
		return nil, errors.New("personaId is required")
	}
	if req.Message == "" {
		return nil, errors.New("message is required")
	}

	providerSpec := req.ProviderSpec
	if providerSpec == "" {
		providerSpec = l.svcCtx.Config.Chat.DefaultProvider
	}

	result, err := l.svcCtx.Engine.HandleTurn(l.ctx, chat.TurnRequest{
		ThreadID:       req.ThreadID,
		PersonaID:      req.PersonaID,
		Message:        req.Message,
		ProviderSpec:   providerSpec,
		Temperature:    req.Temperature,
		SimulateTyping: req.SimulateTyping,
	})
	if err != nil {
		logging.Errorf("chat turn failed: %v", err)
		return nil, err
	}

	return &types.ChatResponse{
		Text:     result.Text,
		ThreadID: result.ThreadID,
	}, nil
}
