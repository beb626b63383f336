package socket

import (
	"encoding/json"
	"net/http"

	"github.com/boardwalk/monopoly-backend/app/models"
	"github.com/boardwalk/monopoly-backend/app/services"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

// Server wraps a socket.io server with one room per game id. It is the
// broadcast collaborator of the game service: every successful action
// fans out a gameUpdate and a gameAction to the room.
type Server struct {
	io  *socketio.Server
	svc *services.GameService
}

func NewServer(svc *services.GameService) (*Server, error) {
	io, err := socketio.NewServer(nil)
	if err != nil {
		return nil, err
	}
	s := &Server{io: io, svc: svc}
	s.registerHandlers()
	return s, nil
}

// Emit implements services.Emitter. Payloads go out as JSON strings.
func (s *Server) Emit(gameId string, event string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		logrus.WithError(err).WithField("game_id", gameId).Error("encoding broadcast payload")
		return
	}
	s.io.BroadcastToRoom("/", gameId, event, string(payload))
}

type clientMessage struct {
	GameId      string            `json:"game_id"`
	UserId      string            `json:"user_id"`
	Name        string            `json:"name"`
	Color       string            `json:"color"`
	SpectatorId string            `json:"spectator_id"`
	Action      *models.Action    `json:"action"`
	Extra       map[string]string `json:"extra,omitempty"`
}

func parseMessage(jsonStr string) (clientMessage, error) {
	var msg clientMessage
	err := json.Unmarshal([]byte(jsonStr), &msg)
	return msg, err
}

func (s *Server) registerHandlers() {
	s.io.OnConnect("/", func(c socketio.Conn) error {
		c.SetContext("")
		return nil
	})

	s.io.OnEvent("/", "join-game", func(c socketio.Conn, jsonStr string) {
		msg, err := parseMessage(jsonStr)
		if err != nil || msg.GameId == "" || msg.UserId == "" {
			c.Emit("error-message", "game_id and user_id are required")
			return
		}
		_, err = s.svc.AddPlayer(msg.GameId, models.PlayerSeed{
			Id:    msg.UserId,
			Name:  msg.Name,
			Color: msg.Color,
		})
		if err != nil {
			c.Emit("error-message", err.Error())
			return
		}
		c.Join(msg.GameId)
		c.Emit("joined-game", msg.GameId)
	})

	s.io.OnEvent("/", "spectate-game", func(c socketio.Conn, jsonStr string) {
		msg, err := parseMessage(jsonStr)
		if err != nil || msg.GameId == "" || msg.SpectatorId == "" {
			c.Emit("error-message", "game_id and spectator_id are required")
			return
		}
		state, err := s.svc.AddSpectator(msg.GameId, msg.SpectatorId)
		if err != nil {
			c.Emit("error-message", err.Error())
			return
		}
		c.Join(msg.GameId)
		payload, _ := json.Marshal(state)
		c.Emit("gameUpdate", string(payload))
	})

	s.io.OnEvent("/", "leave-game", func(c socketio.Conn, jsonStr string) {
		msg, err := parseMessage(jsonStr)
		if err != nil || msg.GameId == "" {
			return
		}
		c.Leave(msg.GameId)
		if msg.SpectatorId != "" {
			if _, err := s.svc.RemoveSpectator(msg.GameId, msg.SpectatorId); err != nil {
				logrus.WithError(err).WithField("game_id", msg.GameId).Warn("removing spectator")
			}
		}
	})

	s.io.OnEvent("/", "game-action", func(c socketio.Conn, jsonStr string) {
		msg, err := parseMessage(jsonStr)
		if err != nil || msg.GameId == "" || msg.Action == nil {
			c.Emit("error-message", "game_id and action are required")
			return
		}
		if _, err := s.svc.ProcessAction(msg.GameId, *msg.Action); err != nil {
			c.Emit("error-message", err.Error())
		}
	})

	s.io.OnEvent("/", "get-game", func(c socketio.Conn, jsonStr string) {
		msg, err := parseMessage(jsonStr)
		if err != nil || msg.GameId == "" {
			c.Emit("error-message", "game_id is required")
			return
		}
		state, err := s.svc.GetGame(msg.GameId)
		if err != nil {
			c.Emit("error-message", err.Error())
			return
		}
		payload, _ := json.Marshal(state)
		c.Emit("gameUpdate", string(payload))
	})

	s.io.OnError("/", func(c socketio.Conn, e error) {
		logrus.WithError(e).Warn("socket error")
	})

	s.io.OnDisconnect("/", func(c socketio.Conn, reason string) {
		c.LeaveAll()
	})
}

// ListenAndServe runs the socket.io endpoint on its own listener, CORS
// restricted to the configured origin, as the transport layer expects.
func (s *Server) ListenAndServe(addr, corsOrigin string) error {
	go s.io.Serve()
	defer s.io.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowCredentials: true,
	})
	mux := http.NewServeMux()
	mux.Handle("/socket.io/", s.io)
	logrus.WithField("addr", addr).Info("socket.io server listening")
	return http.ListenAndServe(addr, c.Handler(mux))
}
