package capsicum

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

func (r Right) unix() uint64 {
	switch r {
	case Read:
		return unix.CAP_READ
	case Write:
		return unix.CAP_WRITE
	case Event:
		return unix.CAP_EVENT
	}
	return 0
}

func limit(d Limit) error {
	rights := make([]uint64, 0, len(d.Rights))
	for _, r := range d.Rights {
		rights = append(rights, r.unix())
	}
	set, err := unix.CapRightsInit(rights)
	if err != nil {
		return fmt.Errorf("%s: %w", d.Name, os.NewSyscallError("cap_rights_init", err))
	}
	if err := unix.CapRightsLimit(uintptr(d.Fd), set); err != nil {
		return fmt.Errorf("%s: %w", d.Name, os.NewSyscallError("cap_rights_limit", err))
	}
	return nil
}

// Apply limits the standard descriptors to their rights and enters
// capability mode. Every descriptor other than the three should be closed
// before.
func Apply() error {
	for _, d := range Descriptors {
		if err := limit(d); err != nil {
			return err
		}
		logrus.Debugf("capsicum: %s limited to %v", d.Name, d.Rights)
	}
	if err := unix.CapEnter(); err != nil {
		return os.NewSyscallError("cap_enter", err)
	}
	return nil
}
