package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/igm/sockjs-go/v3/sockjs"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-cmsfields/pkg/orchestrator"
	"github.com/goliatone/go-cmsfields/pkg/panel"
)

const (
	opOpen  = "open"
	opClick = "click"
	opState = "state"
)

var errNoPage = errors.New("no page open")

// conn is the part of a sockjs session the toggle protocol needs.
type conn interface {
	Recv() (string, error)
	Send(string) error
}

type sessionMessage struct {
	Op     string `json:"op"`
	Page   string `json:"page,omitempty"`
	Target string `json:"target,omitempty"`
}

type stateReply struct {
	Visible bool `json:"visible"`
	Fields  int  `json:"fields"`
}

type errorReply struct {
	Error string `json:"error"`
}

// toggleSession holds the controller for the page a client opened. Clicks are
// dispatched against it the same way the browser runtime would.
type toggleSession struct {
	server *Server
	log    logrus.FieldLogger
	ctrl   *panel.Controller
}

func (s *Server) handleSession(session sockjs.Session) {
	ts := &toggleSession{
		server: s,
		log:    s.logger.WithField("session", session.ID()),
	}
	ts.log.Debug("toggle session opened")
	ts.serve(context.Background(), session)
	ts.log.Debug("toggle session closed")
}

func (ts *toggleSession) serve(ctx context.Context, c conn) {
	for {
		raw, err := c.Recv()
		if err != nil {
			return
		}
		reply := ts.dispatch(ctx, raw)
		payload, err := json.Marshal(reply)
		if err != nil {
			ts.log.WithError(err).Error("encode reply")
			return
		}
		if err := c.Send(string(payload)); err != nil {
			ts.log.WithError(err).Debug("send reply")
			return
		}
	}
}

func (ts *toggleSession) dispatch(ctx context.Context, raw string) any {
	var msg sessionMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return errorReply{Error: fmt.Sprintf("invalid message: %v", err)}
	}

	switch msg.Op {
	case opOpen:
		if err := ts.open(ctx, msg.Page); err != nil {
			ts.log.WithError(err).WithField("page", msg.Page).Warn("open page")
			return errorReply{Error: err.Error()}
		}
	case opClick:
		if ts.ctrl == nil {
			return errorReply{Error: errNoPage.Error()}
		}
		ts.ctrl.Click(msg.Target)
	case opState:
		if ts.ctrl == nil {
			return errorReply{Error: errNoPage.Error()}
		}
	default:
		return errorReply{Error: fmt.Sprintf("unknown op %q", msg.Op)}
	}
	return stateReply{
		Visible: ts.ctrl.Visible(),
		Fields:  ts.ctrl.Fields().Len(),
	}
}

func (ts *toggleSession) open(ctx context.Context, name string) error {
	page, err := ts.server.readPage(name)
	if err != nil {
		return err
	}
	ctrl, err := ts.server.orch.Controller(ctx, orchestrator.Request{Page: &page})
	if err != nil {
		return err
	}
	ts.ctrl = ctrl
	return nil
}
