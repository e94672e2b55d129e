//go:build unix

package sandbox

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tscat/tscat/internal/fds"
)

// warmRuntime makes the runtime create the descriptors it would otherwise
// open lazily. The first timer initializes the network poller.
func warmRuntime() {
	time.AfterFunc(time.Hour, func() {}).Stop()
}

// closeDescriptors closes everything above stderr.
func closeDescriptors() error {
	closed, err := fds.CloseFrom(3)
	if len(closed) > 0 {
		logrus.Debugf("sandbox: closed descriptors %v", closed)
	}
	return err
}
