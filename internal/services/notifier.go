package services

import (
	"kpoller/internal/models"

	"github.com/sirupsen/logrus"
)

// NewLogNotifier returns a Notifier that only records the delivery in the
// log. It stands in for a real delivery collaborator (mail sender etc.)
// supplied by the embedding program.
func NewLogNotifier(logService LogService) Notifier {
	return &logNotifier{logService: logService}
}

type logNotifier struct {
	logService LogService
}

func (n *logNotifier) Notify(subscriber *models.Subscriber, box *models.Box) error {
	n.logService.Log.WithFields(logrus.Fields{
		"subscriber": subscriber.Email,
		"box":        box.Name,
		"month":      box.Month,
	}).Info("notifying subscriber")
	return nil
}
