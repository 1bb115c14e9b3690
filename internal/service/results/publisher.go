package results

import (
	"context"
	"errors"
	"sync"

	"awards-board/internal/tournament"
	"awards-board/internal/ws"
	appErr "awards-board/pkg/errors"

	"go.uber.org/zap"
)

type Broadcaster interface {
	Broadcast(ev ws.Event) int
}

type Recorder interface {
	ObservePublish()
}

// Publisher makes a computed result durable and visible. Publishes are
// serialised so viewers see updates in upload order.
type Publisher struct {
	mu       sync.Mutex
	primary  Store
	backup   Store
	hub      Broadcaster
	fallback func() *tournament.Result
	recorder Recorder
	log      *zap.Logger
}

// NewPublisher accepts a nil backup.
func NewPublisher(primary, backup Store, hub Broadcaster, fallback func() *tournament.Result, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Publisher{
		primary:  primary,
		backup:   backup,
		hub:      hub,
		fallback: fallback,
		log:      log,
	}
}

func (p *Publisher) SetRecorder(r Recorder) {
	p.mu.Lock()
	p.recorder = r
	p.mu.Unlock()
}

// Publish stores entry, mirrors it to the backup and broadcasts it. A primary
// failure aborts before anything is broadcast; a backup failure is logged.
func (p *Publisher) Publish(ctx context.Context, entry Entry) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.primary.Save(ctx, entry); err != nil {
		return err
	}
	if p.backup != nil {
		if err := p.backup.Save(ctx, entry); err != nil {
			p.log.Warn("backup write failed",
				zap.String("uploadID", entry.UploadID),
				zap.Error(err))
		}
	}
	n := p.hub.Broadcast(ws.Event{Type: ws.EventUpdate, Data: entry.Result})
	if p.recorder != nil {
		p.recorder.ObservePublish()
	}
	p.log.Info("result published",
		zap.String("uploadID", entry.UploadID),
		zap.String("tournamentID", entry.Result.TournamentID),
		zap.Int("viewers", n))
	return nil
}

// Current never fails: primary, then backup, then the fallback result.
func (p *Publisher) Current(ctx context.Context) *tournament.Result {
	for _, s := range []Store{p.primary, p.backup} {
		if s == nil {
			continue
		}
		res, err := s.Latest(ctx)
		if err == nil {
			return res
		}
		if !errors.Is(err, appErr.ErrResultNotFound) {
			p.log.Warn("reading stored result failed", zap.Error(err))
		}
	}
	return p.fallback()
}
