package services

import (
	"errors"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"fstats/internal/events"
)

// sendOrLog delivers an event and logs, rather than returns, a failure. Sends
// only fail once the consumer has shut down.
func sendOrLog(sink events.Sink, event events.Event, logger logrus.FieldLogger) {
	if err := sink.Send(event); err != nil {
		logger.WithError(err).WithField("event", eventName(event)).Warn("dropping event")
	}
}

func eventName(event events.Event) string {
	switch event.(type) {
	case events.FolderProgress:
		return "folder-progress"
	case events.TickerProgress:
		return "ticker-progress"
	case events.PartialResults:
		return "partial-results"
	case events.ScanComplete:
		return "scan-complete"
	case events.Tick:
		return "tick"
	default:
		return "other"
	}
}

// folderKey renders the root-relative key for a folder given its path
// segments below the root. The root itself is "".
func folderKey(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	return "/" + strings.Join(segments, "/")
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func isPermissionErr(err error) bool {
	return errors.Is(err, os.ErrPermission)
}
