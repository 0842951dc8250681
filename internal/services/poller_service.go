package services

import (
	"errors"
	"kpoller/internal/config"
	"kpoller/internal/models"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// BoxSource is the discovery collaborator: it produces the currently
// observable boxes. Implementations live outside this module.
type BoxSource interface {
	FetchBoxes() ([]models.ObservedBox, error)
}

// NewNopBoxSource returns a source that observes nothing. It keeps the
// daemon runnable until a real discovery collaborator is plugged in.
func NewNopBoxSource() BoxSource {
	return nopBoxSource{}
}

type nopBoxSource struct{}

func (nopBoxSource) FetchBoxes() ([]models.ObservedBox, error) {
	return nil, nil
}

type Poller struct {
	source        BoxSource
	ingestService IngestService
	logService    LogService
	configuration *config.Configuration
	polling       bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewPollerService(
	source BoxSource,
	ingestService IngestService,
	logService LogService,
	configuration *config.Configuration,
) *Poller {
	return &Poller{
		source:        source,
		ingestService: ingestService,
		logService:    logService,
		configuration: configuration,
		polling:       false,
		mutex:         sync.Mutex{},
		cron:          cron.New(),
	}
}

// ForceStartPollCycle runs one poll cycle outside the schedule.
func (p *Poller) ForceStartPollCycle() error {
	p.mutex.Lock()
	if p.polling {
		p.mutex.Unlock()
		return errors.New("polling is in progress")
	}
	p.polling = true
	p.mutex.Unlock()

	go func() {
		defer func() {
			p.mutex.Lock()
			p.polling = false
			p.mutex.Unlock()
		}()
		p.poll(true)
	}()

	return nil
}

func (p *Poller) StartPollCycle() {
	p.logService.Log.Debug("starting poll job")
	cronSchedule := p.configuration.Poller.Schedule
	_, err := p.cron.AddFunc(cronSchedule, func() {
		p.mutex.Lock()
		if p.polling {
			p.mutex.Unlock()
			return
		}
		p.polling = true
		p.mutex.Unlock()

		defer func() {
			p.mutex.Lock()
			p.polling = false
			p.mutex.Unlock()
		}()
		p.poll(false)
	})

	if err != nil {
		p.logService.Log.WithFields(logrus.Fields{
			"job":   "poll",
			"error": err.Error(),
		}).Error("Failed to start poll job")
	}
	p.cron.Start()
}

func (p *Poller) StopPoll() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.cron.Stop()
	p.polling = false
	p.logService.Log.WithFields(logrus.Fields{
		"job":    "poll",
		"status": "stopped",
	}).Info("Poller stopped")
}

func (p *Poller) IsPolling() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.polling
}

func (p *Poller) poll(forced bool) {
	var logFields logrus.Fields
	if !forced {
		logFields = logrus.Fields{
			"job":    "poll",
			"status": "start",
			"cron":   p.configuration.Poller.Schedule,
		}
	} else {
		logFields = logrus.Fields{
			"job":    "poll",
			"status": "forced",
		}
	}
	p.logService.Log.WithFields(logFields).Info("poll cycle started")

	observed, err := p.source.FetchBoxes()
	if err != nil {
		p.logService.Log.WithFields(logrus.Fields{
			"job":    "poll",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to fetch observed boxes")
		return
	}

	var newBoxes int
	for _, box := range observed {
		result, err := p.ingestService.Ingest(box)
		if err != nil {
			p.logService.Log.WithFields(logrus.Fields{
				"job":    "poll",
				"status": "error",
				"box":    box.Name,
				"month":  box.Month,
				"error":  err.Error(),
			}).Error("Failed to ingest box")
			continue
		}
		if result.Created {
			newBoxes++
		}
	}

	p.logService.Log.WithFields(logrus.Fields{
		"job":      "poll",
		"status":   "success",
		"observed": len(observed),
		"new":      newBoxes,
	}).Info("poll cycle finished")
}
