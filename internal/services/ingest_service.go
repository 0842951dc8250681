package services

import (
	"kpoller/internal/models"
	"kpoller/internal/repository"
	"sync"

	"github.com/sirupsen/logrus"
)

// Notifier is the delivery collaborator hook. It runs before a subscriber's
// notification pointer is advanced; delivery guarantees are its concern, not
// the ingestion flow's.
type Notifier interface {
	Notify(subscriber *models.Subscriber, box *models.Box) error
}

// IngestResult describes what one ingestion run did.
type IngestResult struct {
	Box      *models.Box
	Created  bool
	Notified int
}

type IngestService interface {
	Ingest(observed models.ObservedBox) (*IngestResult, error)
}

func NewIngestService(
	boxRepo repository.BoxRepository,
	subscriberRepo repository.SubscriberRepository,
	notifier Notifier,
	logService LogService,
) IngestService {
	return &ingestServiceImpl{
		boxRepo:        boxRepo,
		subscriberRepo: subscriberRepo,
		notifier:       notifier,
		logService:     logService,
	}
}

type ingestServiceImpl struct {
	boxRepo        repository.BoxRepository
	subscriberRepo repository.SubscriberRepository
	notifier       Notifier
	logService     LogService
	mutex          sync.Mutex
}

// Ingest runs one observed box end-to-end: convert, insert-if-absent on the
// (name, month) natural key, then notify and mark every subscriber whose
// pointer is not yet at the new box. A box that is already stored terminates
// the flow immediately. Runs are serialized by a mutex; the conditional
// insert makes the novelty check safe even without it.
func (s *ingestServiceImpl) Ingest(observed models.ObservedBox) (*IngestResult, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	box := models.NewBoxFromObserved(observed)
	created, err := s.boxRepo.CreateIfAbsent(box)
	if err != nil {
		return nil, err
	}
	if !created {
		s.logService.Log.WithFields(logrus.Fields{
			"job":   "ingest",
			"box":   observed.Name,
			"month": observed.Month,
		}).Debug("box already stored, nothing to do")
		return &IngestResult{Created: false}, nil
	}

	s.logService.Log.WithFields(logrus.Fields{
		"job":   "ingest",
		"box":   box.Name,
		"month": box.Month,
		"items": len(box.Items),
	}).Info("stored new box")

	subscribers, err := s.subscriberRepo.FindUnnotified(box)
	if err != nil {
		return nil, err
	}

	result := &IngestResult{Box: box, Created: true}
	for i := range subscribers {
		subscriber := &subscribers[i]
		if s.notifier != nil {
			if err := s.notifier.Notify(subscriber, box); err != nil {
				// Pointer stays put so the subscriber is still in the
				// unnotified set of this box.
				s.logService.Log.WithFields(logrus.Fields{
					"job":        "ingest",
					"subscriber": subscriber.Email,
					"error":      err.Error(),
				}).Error("notification delivery failed")
				continue
			}
		}
		if err := s.subscriberRepo.MarkNotified(subscriber, box); err != nil {
			return result, err
		}
		result.Notified++
	}

	s.logService.Log.WithFields(logrus.Fields{
		"job":      "ingest",
		"box":      box.Name,
		"month":    box.Month,
		"notified": result.Notified,
	}).Info("ingestion finished")
	return result, nil
}
