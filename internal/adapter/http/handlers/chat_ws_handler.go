package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"bond_quotation/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	chatWSPongWait  = 60 * time.Second
	chatWSPingEvery = 25 * time.Second
	chatWSWriteWait = 10 * time.Second
)

var chatWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type chatWSInbound struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type chatWSOutbound struct {
	Type    string                `json:"type"`
	Message *entities.ChatMessage `json:"message,omitempty"`
	Code    string                `json:"code,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// Stream serves a session over a websocket. Each inbound text frame is
// processed to completion and answered before the next one is read.
//
// Inbound frames are either JSON {"type":"message","text":"..."} or plain text.
func (h *ChatHandler) Stream(c *gin.Context) {
	sessionID := c.Param(paramSessionID)
	if _, err := h.usecase.GetSession(c.Request.Context(), sessionID); err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	conn, err := chatWSUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(chatWSPongWait)); err != nil {
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(chatWSPongWait))
	})

	writeCh := make(chan chatWSOutbound, 8)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(chatWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(chatWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(chatWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if msgType != websocket.TextMessage {
			continue
		}
		_ = conn.SetReadDeadline(time.Now().Add(chatWSPongWait))

		text := decodeChatWSText(data)
		reply, err := h.usecase.ProcessMessage(ctx, sessionID, text)
		if err != nil {
			appErr := mapChatError(err)
			pushChatWS(ctx, writeCh, chatWSOutbound{Type: "error", Code: appErr.Code, Error: appErr.Message})
			continue
		}
		pushChatWS(ctx, writeCh, chatWSOutbound{Type: "message", Message: &reply})
	}

	cancel()
	<-writerDone
}

func decodeChatWSText(data []byte) string {
	var in chatWSInbound
	if err := json.Unmarshal(data, &in); err == nil {
		return strings.TrimSpace(in.Text)
	}
	return strings.TrimSpace(string(data))
}

func pushChatWS(ctx context.Context, ch chan<- chatWSOutbound, out chatWSOutbound) {
	select {
	case ch <- out:
	case <-ctx.Done():
	}
}
