package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/mjpad/mjledger/db"
	"github.com/mjpad/mjledger/internal/web/api"
	"github.com/mjpad/mjledger/pkg/errutil"
	"github.com/mjpad/mjledger/pkg/whitelist"
	"github.com/mjpad/mjledger/protocol"
)

func authFilter(_ context.Context, r *http.Request) (context.Context, error) {
	parts := strings.Split(r.RemoteAddr, ":")
	if len(parts) < 2 {
		return context.Background(), errutil.ErrPermissionDenied
	}

	if parts[0] != "127.0.0.1" && !whitelist.VerifyIP(parts[0]) {
		return context.Background(), errutil.ErrPermissionDenied
	}

	return context.Background(), nil
}

// 活跃牌局: 内存中的桌数与库里未完结的桌数
func activeSessionsHandler() (interface{}, error) {
	total, err := db.ActiveSessionCount()
	if err != nil {
		return nil, err
	}
	return &protocol.CommonResponse{
		Data: map[string]interface{}{
			"alive": api.AliveSessionCount(),
			"total": total,
		},
	}, nil
}

func whiteListHandler() (interface{}, error) {
	return &protocol.CommonResponse{Data: whitelist.IPList()}, nil
}
