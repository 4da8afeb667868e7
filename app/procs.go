package app

import "iberos/kernel"

type role uint8

const (
	roleKernel role = iota
	roleUser
	roleDriver
	roleCount
)

type demoProc struct {
	proc  *kernel.Process
	label string
}

// demoProcs are the processes registered at boot, indexed by role.
type demoProcs [roleCount]demoProc

var demoRoles = [roleCount]struct {
	name  string
	label string
}{
	roleKernel: {"kernel", "Kernel Process"},
	roleUser:   {"user_app", "User Process"},
	roleDriver: {"device_driver", "Device Driver"},
}

func spawnDemoProcs(k *kernel.System) demoProcs {
	var procs demoProcs
	for r, def := range demoRoles {
		p, ok := k.Spawn(def.name)
		if !ok {
			panic("process table full at boot")
		}
		procs[r] = demoProc{proc: p, label: def.label}
	}
	return procs
}

func (d *demoProcs) get(r role) demoProc { return d[r] }

func (d *demoProcs) all() []demoProc { return d[:] }

var demoMessages = []struct {
	from, to role
	kind     kernel.Kind
	data     string
}{
	{roleKernel, roleUser, kernel.KindCommand, "Hello from kernel!"},
	{roleUser, roleKernel, kernel.KindResponse, "Hello from user app!"},
	{roleDriver, roleUser, kernel.KindNotification, "Device status update"},
}
