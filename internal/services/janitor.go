package services

import (
	"log"
	"sync"
	"time"

	"github.com/iamtidu/Ats-Score-Checker-Using-Gemini/internal/repositories"
)

// SessionJanitor prunes idle sessions in the background. Sessions live in
// process memory only, so without pruning an abandoned client would hold its
// resume text and transcript until the server restarts.
type SessionJanitor interface {
	Start()
	Stop()
}

type sessionJanitor struct {
	sessionRepo repositories.SessionRepository
	ttl         time.Duration
	interval    time.Duration
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewSessionJanitor(
	sessionRepo repositories.SessionRepository,
	ttl time.Duration,
	interval time.Duration,
) SessionJanitor {
	return &sessionJanitor{
		sessionRepo: sessionRepo,
		ttl:         ttl,
		interval:    interval,
		stopChan:    make(chan struct{}),
	}
}

// Start implements SessionJanitor.
func (j *sessionJanitor) Start() {
	log.Printf("🚀 Starting session janitor (ttl=%s, interval=%s)\n", j.ttl, j.interval)

	j.wg.Add(1)
	go j.run()
}

// Stop implements SessionJanitor.
func (j *sessionJanitor) Stop() {
	log.Println("🛑 Stopping session janitor...")
	close(j.stopChan)
	j.wg.Wait()
	log.Println("✅ Session janitor stopped")
}

func (j *sessionJanitor) run() {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stopChan:
			return
		case <-ticker.C:
			if removed := j.sessionRepo.DeleteExpired(j.ttl); removed > 0 {
				log.Printf("🧹 Pruned %d expired session(s), %d remaining\n",
					removed, j.sessionRepo.Count())
			}
		}
	}
}
